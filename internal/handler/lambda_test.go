package handler_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"userapp/internal/handler"
	"userapp/internal/identity"
	"userapp/internal/mocks"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLambdaRegister(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	h := handler.NewAuthHandler(provider, nil, nil)
	provider.On("SignUp", mock.Anything, testCreds).
		Return(&identity.Error{Kind: identity.KindUsernameExists, Message: "User already exists"}).Once()

	resp, err := h.LambdaRegister()(context.Background(), events.APIGatewayProxyRequest{Body: validBody})

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, `{"message":"user already exists, try to login"}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestLambdaLogin_Base64Body(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	emitter := mocks.NewMockEmitter(t)
	h := handler.NewAuthHandler(provider, emitter, nil)
	provider.On("Authenticate", mock.Anything, testCreds).
		Return(nil, &identity.Error{Kind: identity.KindNotAuthorized, Message: "Incorrect username or password."}).Once()
	emitter.On("Emit", mock.Anything, mock.Anything).Once()

	resp, err := h.LambdaLogin()(context.Background(), events.APIGatewayProxyRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(validBody)),
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `{"message":"invalid credentials"}`, resp.Body)
}

func TestLambdaRegister_BadBase64(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	h := handler.NewAuthHandler(provider, nil, nil)

	resp, err := h.LambdaRegister()(context.Background(), events.APIGatewayProxyRequest{
		Body:            "%%% not base64",
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, missingFieldsBody, resp.Body)
}
