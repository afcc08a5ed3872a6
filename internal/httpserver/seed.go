package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-jewelry-api/internal/seed"
)

func initDataHandler(prov *seed.Provisioner) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := prov.Apply(c.Request.Context())
		if err != nil {
			respondError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
