package response

import (
	"github.com/gin-gonic/gin"
)

// MessageBody is the `{message}` shape used for confirmations and errors.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the whole response body, no envelope.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

// Error writes `{message}` and aborts the remaining handlers.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, MessageBody{Message: message})
}
