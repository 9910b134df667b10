package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Pagination defaults. The limit is hard-capped: a larger value is
// silently clamped rather than rejected.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"` // per-field validation errors
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondConflict sends the conflict response used for uniqueness
// violations (duplicate email, duplicate favorite pair). The API
// contract reports these as 400.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondValidationError sends a 422 response with per-field details
// extracted from validator errors. Malformed JSON bodies get the raw
// binding error instead.
func respondValidationError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = "failed on '" + fe.Tag() + "' validation"
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
}

// respondFieldError sends a 422 response for a single named field.
func respondFieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: map[string]string{field: message},
	})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads the skip/limit query parameters shared by all
// list and search endpoints. Unparseable or negative values fall back
// to the defaults; limit is clamped to MaxLimit.
func parsePagination(c *gin.Context) (skip, limit int) {
	skip = 0
	limit = DefaultLimit

	if skipStr := c.Query("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil && s >= 0 {
			skip = s
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
