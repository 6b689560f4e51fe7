package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/katalog/internal/catalog"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

const codeNotFound = "not_found"

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message, code string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: code})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondCatalogError maps catalogue errors onto status codes:
// validation 400, missing book 404, anything else 500.
func respondCatalogError(c *gin.Context, err error, context string) {
	var validationErr *catalog.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondBadRequest(c, validationErr.Error(), string(validationErr.Rule))
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: codeNotFound})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName, "invalid_id")
		return 0, false
	}
	return uint(id), true
}
