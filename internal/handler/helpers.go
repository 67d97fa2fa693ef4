package handler

import (
	"errors"
	"net/http"
	"strconv"

	"estatehub/internal/transport/httpdto"
	estate_errors "estatehub/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 and gets attached to the gin context so the
// error middleware logs it.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estate_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
	case errors.Is(err, estate_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(err.Error(), "UNAUTHORIZED"))
	case errors.Is(err, estate_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error(), "NOT_FOUND"))
	case errors.Is(err, estate_errors.ErrConflict):
		c.JSON(http.StatusConflict, httpdto.NewErrorResponse(err.Error(), "CONFLICT"))
	case errors.Is(err, estate_errors.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse(err.Error(), "RATE_LIMITED"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("internal server error", "INTERNAL_ERROR"))
	}
}

// parseID validates a numeric path parameter. A malformed id is the client's
// mistake, not ours.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, estate_errors.ErrInvalidInput
	}
	return uint(id), nil
}
