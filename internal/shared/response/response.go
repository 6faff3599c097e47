package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the uniform response shape used on every endpoint.
type ApiEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	ErrorCode  string `json:"errorCode,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, ApiEnvelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func Error(c *gin.Context, status int, errorCode, message string) {
	c.JSON(status, ApiEnvelope{
		StatusCode: status,
		Data:       nil,
		Message:    message,
		Success:    false,
		ErrorCode:  errorCode,
	})
}
