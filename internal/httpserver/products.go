package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-jewelry-api/internal/domain"
	productsvc "luxe-jewelry-api/internal/service/product"
)

const productNotFoundMsg = "Product not found"

type createProductRequest struct {
	Name            string            `json:"name" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	Price           float64           `json:"price" binding:"min=0"`
	Category        string            `json:"category" binding:"required"`
	ImageURL        string            `json:"image_url"`
	ModelImageURL   string            `json:"model_image_url"`
	MaterialDetails map[string]string `json:"material_details"`
	IsFeatured      bool              `json:"is_featured"`
}

func listProductsHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func listFeaturedHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListFeatured(c.Request.Context())
		if err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), productsvc.CreateInput{
			Name:            req.Name,
			Description:     req.Description,
			Price:           req.Price,
			Category:        req.Category,
			ImageURL:        req.ImageURL,
			ModelImageURL:   req.ModelImageURL,
			MaterialDetails: req.MaterialDetails,
			IsFeatured:      req.IsFeatured,
		})
		if err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func updateProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, productNotFoundMsg)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
