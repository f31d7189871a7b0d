package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goal-tracker/backend/internal/application/adapter"
	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct{}

func (stubTokenService) GenerateToken(context.Context, string) (string, time.Time, error) {
	return "good", time.Now().Add(time.Hour), nil
}

func (stubTokenService) ValidateToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	switch token {
	case "good":
		return &adapter.TokenClaims{Subject: "owner"}, nil
	case "old":
		return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken)
	default:
		return nil, domainerror.ErrInvalidToken
	}
}

func newAuthEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(NewAuthMiddleware(stubTokenService{}).Authenticate())
	engine.GET("/", func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		c.String(http.StatusOK, subject)
	})
	return engine
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeMissingToken)},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeInvalidToken)},
		{name: "empty token", header: "Bearer  ", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeMissingToken)},
		{name: "invalid token", header: "Bearer bad", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeInvalidToken)},
		{name: "expired token", header: "Bearer old", wantCode: http.StatusUnauthorized, wantBody: string(domainerror.ErrCodeExpiredToken)},
		{name: "valid token", header: "Bearer good", wantCode: http.StatusOK, wantBody: "owner"},
	}

	engine := newAuthEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiterWithConfig(2, time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	engine := gin.New()
	engine.Use(rl.Middleware())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, hit().Code)
	assert.Equal(t, http.StatusNoContent, hit().Code)

	limited := hit()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), string(domainerror.ErrCodeRateLimited))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusNoContent, hit().Code)

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	require.Empty(t, rl.entries)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, 0)
	engine := gin.New()
	engine.Use(rl.Middleware())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Empty(t, rl.entries)
}
