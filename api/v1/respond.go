package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/filmvault-api/utils"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP status of its
// category. Unrecognized errors become an opaque 500 so internals never
// leak to clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, utils.ErrMalformedRequest):
		status = http.StatusBadRequest
	case errors.Is(err, utils.ErrInvalidCredentials),
		errors.Is(err, utils.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, utils.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, utils.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, utils.ErrAlreadyExists),
		errors.Is(err, utils.ErrConflict):
		status = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondBindError reports a failed request binding as a 400.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "invalid request body",
		"error":   err.Error(),
	})
}

// idParam parses the :id path parameter. On failure it writes a 400 and
// returns false.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "invalid id parameter",
		})
		return 0, false
	}
	return uint(id), true
}
