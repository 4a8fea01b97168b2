package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MessageSuccess = "success"

// Resp is the JSON envelope for every HTTP response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Resp{ErrorCode: http.StatusBadRequest, Message: msg})
}

// InternalError sends 500 with a generic message, never the raw error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "internal server error",
	})
}

// ServiceUnavailable sends 503 with the given message.
func ServiceUnavailable(c *gin.Context, msg string) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   msg,
	})
}
