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

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
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

// HandleServiceError translates service sentinel errors into HTTP responses.
// Ownership failures surface as plain not-found so the existence of another
// user's routes is never revealed.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		RespondError(c, http.StatusNotFound, "Route not found or does not belong to the user")
	case errors.Is(err, ErrPointNotFound):
		RespondError(c, http.StatusNotFound, "Point not found")
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "Invalid route status")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request parameters")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrEmbeddingFailed):
		RespondError(c, http.StatusBadGateway, "Embedding provider unavailable")
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusBadGateway, "Route generation unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
