// Package testutil provides helpers for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"paperdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// APIResponse mirrors the envelope every handler writes.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewTestContext builds a gin context carrying the given JSON body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

// ParseResponse decodes the recorded response envelope.
func ParseResponse(w *httptest.ResponseRecorder, out *APIResponse) error {
	return json.Unmarshal(w.Body.Bytes(), out)
}

// SetPathParam attaches a path parameter to the context.
func SetPathParam(c *gin.Context, name, value string) {
	c.Params = append(c.Params, gin.Param{Key: name, Value: value})
}

// SetUser stamps the authenticated user the way the auth middleware does.
func SetUser(c *gin.Context, userID uint, role string) {
	c.Set("user_id", userID)
	c.Set("user_role", role)
}

// NewMockLogger returns a logger that swallows everything.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
