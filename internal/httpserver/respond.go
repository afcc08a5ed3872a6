package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-jewelry-api/internal/domain"
)

// respondError maps domain errors onto HTTP statuses: missing records are
// 404, validation failures 400, a degraded store 503, anything else 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, domain.ErrModelImageMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrStoreUnavailable.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
