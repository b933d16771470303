package handler

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// LambdaFunc is an API Gateway proxy handler for lambda.Start.
type LambdaFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// LambdaRegister adapts Register to API Gateway.
func (h *AuthHandler) LambdaRegister() LambdaFunc {
	return h.lambdaHandler(h.Register)
}

// LambdaLogin adapts Login to API Gateway.
func (h *AuthHandler) LambdaLogin() LambdaFunc {
	return h.lambdaHandler(h.Login)
}

// lambdaHandler never returns an error: every outcome is an HTTP response.
func (h *AuthHandler) lambdaHandler(fn func(context.Context, string) Response) LambdaFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		body := req.Body
		if req.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(body)
			if err != nil {
				h.logger.Warn("Failed to decode base64 request body", zap.Error(err))
				body = ""
			} else {
				body = string(decoded)
			}
		}

		resp := fn(ctx, body)
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       resp.Body,
		}, nil
	}
}
