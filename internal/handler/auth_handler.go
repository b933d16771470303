// Package handler turns registration and login requests into provider calls
// and provider outcomes into HTTP responses. The same handler functions back
// both the Lambda entrypoints and the local gin server.
package handler

import (
	"userapp/internal/identity"
	"userapp/internal/metrics"

	"go.uber.org/zap"
)

// AuthHandler holds the collaborators of both handlers. It keeps no
// per-request state and is safe for concurrent use.
type AuthHandler struct {
	provider identity.Provider
	emitter  metrics.Emitter
	logger   *zap.Logger
}

// NewAuthHandler wires the handler. A nil emitter discards metrics and a nil
// logger discards logs.
func NewAuthHandler(provider identity.Provider, emitter metrics.Emitter, logger *zap.Logger) *AuthHandler {
	if emitter == nil {
		emitter = metrics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		provider: provider,
		emitter:  emitter,
		logger:   logger,
	}
}
