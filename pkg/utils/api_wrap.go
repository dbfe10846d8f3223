package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError converts a tagged service error into an HTTP response.
// Every controller funnels its service errors through here so the status
// mapping lives in exactly one place.
func HandleServiceError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch KindOf(err) {
	case KindValidation:
		code = http.StatusBadRequest
	case KindUnauthenticated:
		code = http.StatusUnauthorized
	case KindAuthorization:
		code = http.StatusForbidden
	case KindNotFound:
		code = http.StatusNotFound
	}
	RespondError(c, code, MessageOf(err))
}
