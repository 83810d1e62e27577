package utils

import (
	"errors"
	"log"
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

func traceIDFrom(c *gin.Context) string {
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
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses.
// Every error is recoverable at this boundary: the client is informed and
// may try again, except for ErrUnsupportedOperation which means the
// deployment is simply not configured for the operation.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateTicket):
		RespondError(c, http.StatusConflict, "A survey for this ticket has already been submitted")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Survey record not found")
	case errors.Is(err, ErrInvalidPassword):
		RespondError(c, http.StatusUnauthorized, "Invalid admin password")
	case errors.Is(err, ErrUnsupportedOperation):
		RespondError(c, http.StatusNotImplemented, "The active store backend does not support this operation")
	case errors.Is(err, ErrConnection):
		log.Printf("Store connection error: %v", err)
		RespondError(c, http.StatusBadGateway, "Could not reach the survey store")
	case errors.Is(err, ErrWrite):
		log.Printf("Store write error: %v", err)
		RespondError(c, http.StatusInternalServerError, "The survey could not be saved")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
