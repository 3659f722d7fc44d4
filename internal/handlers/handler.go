package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/eventdesk/internal/models"
)

// statusFor maps the error taxonomy onto HTTP status codes: malformed or
// invalid input is a 400, a well-formed id with no matching document is a 404,
// anything else is treated as unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrMissingFilename),
		errors.Is(err, models.ErrUploadFailed),
		models.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the client-facing error response. Unexpected errors are
// recorded on the context for the logging middleware and downgraded to a
// generic message so internals never leak to the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse("internal server error"))
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}
