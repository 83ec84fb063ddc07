package respond

import (
	"github.com/gin-gonic/gin"

	"cvgen-backend/internal/shared/telemetry"
)

// ErrorBody is the standardized failure payload: {ok:false, error:...}.
type ErrorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Debug any    `json:"debug,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string) {
	ErrorWithDebug(c, status, message, nil)
}

// ErrorWithDebug sends a standardized error response carrying a debug payload.
func ErrorWithDebug(c *gin.Context, status int, message string, debug any) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{
		OK:    false,
		Error: message,
		Debug: debug,
	})
}
