package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperdesk/internal/infrastructure/auth"
	"paperdesk/internal/shared/authorization"
	"paperdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRig(t *testing.T) (*auth.JWTService, *AuthMiddleware) {
	t.Helper()
	jwtService := auth.NewJWTService("test-secret", 60)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return jwtService, NewAuthMiddleware(jwtService, log)
}

func performRequest(handler gin.HandlerFunc, chain ...gin.HandlerFunc) func(token string) *httptest.ResponseRecorder {
	return func(token string) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.GET("/protected", append(chain, handler)...)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		engine.ServeHTTP(w, req)
		return w
	}
}

func TestRequireAuth(t *testing.T) {
	jwtService, m := newAuthTestRig(t)

	var gotUserID uint
	run := performRequest(func(c *gin.Context) {
		gotUserID = UserID(c)
		c.Status(http.StatusOK)
	}, m.RequireAuth())

	t.Run("missing token", func(t *testing.T) {
		w := run("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := run("not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtService.Generate(42, authorization.RoleStudent)
		require.NoError(t, err)

		w := run(token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), gotUserID)
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService, m := newAuthTestRig(t)

	run := performRequest(func(c *gin.Context) {
		c.Status(http.StatusOK)
	}, m.RequireAuth(), m.RequireAdmin())

	t.Run("student rejected", func(t *testing.T) {
		token, err := jwtService.Generate(42, authorization.RoleStudent)
		require.NoError(t, err)

		w := run(token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := jwtService.Generate(1, authorization.RoleAdmin)
		require.NoError(t, err)

		w := run(token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	jwtService, m := newAuthTestRig(t)

	var gotUserID uint
	run := performRequest(func(c *gin.Context) {
		gotUserID = UserID(c)
		c.Status(http.StatusOK)
	}, m.OptionalAuth())

	t.Run("anonymous passes through", func(t *testing.T) {
		gotUserID = 99
		w := run("")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, gotUserID)
	})

	t.Run("identity resolved when present", func(t *testing.T) {
		token, err := jwtService.Generate(7, authorization.RoleStudent)
		require.NoError(t, err)

		w := run(token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotUserID)
	})
}
