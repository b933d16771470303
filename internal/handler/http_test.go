package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"userapp/internal/handler"
	"userapp/internal/identity"
	"userapp/internal/metrics"
	"userapp/internal/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(h *handler.AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func TestRoutes_Register(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	router := newTestRouter(handler.NewAuthHandler(provider, nil, nil))
	provider.On("SignUp", mock.Anything, testCreds).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(validBody))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"message":"user registered"}`, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestRoutes_LoginMatchesCoreHandler(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	h := handler.NewAuthHandler(provider, metrics.Nop{}, nil)
	router := newTestRouter(h)
	provider.On("Authenticate", mock.Anything, testCreds).
		Return(&identity.Tokens{IDToken: aws.String("t1"), AccessToken: aws.String("t2"), RefreshToken: aws.String("t3")}, nil).Twice()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(validBody)))

	direct := h.Login(context.Background(), validBody)
	assert.Equal(t, direct.StatusCode, w.Code)
	assert.Equal(t, direct.Body, w.Body.String())
}

func TestRoutes_LoginWithoutBody(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	emitter := mocks.NewMockEmitter(t)
	router := newTestRouter(handler.NewAuthHandler(provider, emitter, nil))
	emitter.On("Emit", mock.Anything, metrics.Counter(handler.MetricLoginFailureMissingFields)).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, missingFieldsBody, w.Body.String())
}

func TestRoutes_WrongMethod(t *testing.T) {
	router := newTestRouter(handler.NewAuthHandler(mocks.NewMockProvider(t), nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
