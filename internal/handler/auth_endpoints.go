package handler

import (
	"context"
	"net/http"

	"userapp/internal/identity"
	"userapp/internal/metrics"

	"go.uber.org/zap"
)

// Register validates the body and signs the user up with the provider.
//
//	201 {"message":"user registered"}
//	400 {"message":"email & password required"}
//	409 {"message":"user already exists, try to login"}
//	500 {"error":"<provider message>"}
func (h *AuthHandler) Register(ctx context.Context, body string) Response {
	creds, ok := parseCredentials(body)
	if !ok {
		return missingFieldsResponse()
	}

	if err := h.provider.SignUp(ctx, creds); err != nil {
		perr := identity.Classify(err)
		h.logProviderError("SignUp failed", perr)
		return registerErrorResponse(perr)
	}

	h.logger.Info("User registered")
	return messageResponse(http.StatusCreated, msgUserRegistered)
}

// Login validates the body, authenticates with the provider and emits one
// outcome counter per call.
//
//	200 {"message":"login successful","idToken":..,"accessToken":..,"refreshToken":..}
//	400 {"message":"email & password required"}
//	401 {"message":"invalid credentials"}
//	403 {"message":"user not confirmed"}
//	404 {"message":"user not found"}
//	500 {"error":"<provider message>"}
func (h *AuthHandler) Login(ctx context.Context, body string) Response {
	creds, ok := parseCredentials(body)
	if !ok {
		h.emitter.Emit(ctx, metrics.Counter(MetricLoginFailureMissingFields))
		return missingFieldsResponse()
	}
	email := metrics.Dimension{Name: emailDimension, Value: creds.Email}

	tokens, err := h.provider.Authenticate(ctx, creds)
	if err != nil {
		perr := identity.Classify(err)
		h.logProviderError("Authentication failed", perr)
		resp, metric := loginErrorResponse(perr)
		h.emitter.Emit(ctx, metrics.Counter(metric, email))
		return resp
	}
	if tokens == nil {
		tokens = &identity.Tokens{}
	}

	resp := jsonResponse(http.StatusOK, loginSuccessBody{
		Message:      msgLoginSuccessful,
		IDToken:      tokens.IDToken,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	h.emitter.Emit(ctx, metrics.Counter(MetricLoginSuccess, email))
	return resp
}

func (h *AuthHandler) logProviderError(msg string, err *identity.Error) {
	fields := []zap.Field{
		zap.Stringer("kind", err.Kind),
		zap.String("code", err.Name),
		zap.String("message", err.Message),
	}
	if err.Kind == identity.KindOther {
		h.logger.Error(msg, fields...)
		return
	}
	h.logger.Info(msg, fields...)
}
