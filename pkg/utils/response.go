package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorDetail is the wire shape for all API failures.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponse sends a standardized error response. When err is non-nil its
// message is appended to the detail string.
func ErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	detail := message
	if err != nil {
		detail = message + ": " + err.Error()
	}

	logger := GetLogger()
	logger.WithFields(map[string]interface{}{
		"status_code": statusCode,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"detail":      detail,
	}).Error("API error response")

	c.JSON(statusCode, ErrorDetail{Detail: detail})
}
