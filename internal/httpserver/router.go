package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"luxe-jewelry-api/internal/db"
)

// buildRouter wires routes for the API under the /api prefix.
func buildRouter(logger *log.Logger, store *db.Store, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestMetrics())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/", healthHandler(store))

	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/featured", listFeaturedHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.POST("/products", createProductHandler(deps.ProductSvc))
	api.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	api.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

	api.POST("/contact", createContactHandler(deps.ContactSvc))
	api.GET("/contacts", listContactsHandler(deps.ContactSvc))

	api.POST("/init-data", initDataHandler(deps.Provisioner))

	return router
}

func healthHandler(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Premium Jewelry API is running",
			"store_status":  store.Status(),
			"database_name": store.DatabaseName(),
		})
	}
}
