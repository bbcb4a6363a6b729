package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/internal/rest/middleware"
)

const secret = "super-secret"

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextUserID))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret))

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := middleware.NewAccessToken(secret, "user-123", "dicoding", time.Hour)
		require.NoError(t, err)

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rec := do("")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"Missing authentication"}`, rec.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := middleware.NewAccessToken("other", "user-123", "dicoding", time.Hour)
		require.NoError(t, err)

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"status":"fail","message":"Invalid token"}`, rec.Body.String())
	})

	t.Run("expired", func(t *testing.T) {
		token, err := middleware.NewAccessToken(secret, "user-123", "dicoding", -time.Minute)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"id": "user-123"}).SignedString([]byte(secret))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("no id claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "dicoding"}).SignedString([]byte(secret))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}

func TestSetRequestContextWithTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SetRequestContextWithTimeout(50 * time.Millisecond))

	var deadline time.Time
	var hasDeadline bool
	r.GET("/slow", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.True(t, hasDeadline)
	assert.False(t, deadline.IsZero())
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		r := newRouter(middleware.CORS([]string{"*"}))
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Origin", "http://forum.local")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin only", func(t *testing.T) {
		r := newRouter(middleware.CORS([]string{"http://forum.local"}))
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Origin", "http://evil.local")
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	r := newRouter(middleware.Metrics())
	r.GET("/metrics", middleware.MetricsHandler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `forum_http_requests_total{method="GET",path="/me",status="200"}`)
}
