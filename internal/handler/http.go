package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// RegisterRoutes mounts both handlers under /auth.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.ginHandler(h.Register))
		authGroup.POST("/login", h.ginHandler(h.Login))
	}
}

// ginHandler passes the raw body through so the local server answers with
// the same bytes as the Lambda functions.
func (h *AuthHandler) ginHandler(fn func(context.Context, string) Response) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
			if err != nil {
				_ = c.Error(err)
			} else {
				body = raw
			}
		}

		resp := fn(c.Request.Context(), string(body))
		c.Data(resp.StatusCode, "application/json; charset=utf-8", []byte(resp.Body))
	}
}
