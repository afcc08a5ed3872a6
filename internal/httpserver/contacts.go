package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-jewelry-api/internal/domain"
	contactsvc "luxe-jewelry-api/internal/service/contact"
)

type createContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func createContactHandler(svc *contactsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact, err := svc.Create(c.Request.Context(), contactsvc.CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			respondError(c, err, "Contact not found")
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

func listContactsHandler(svc *contactsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Contact not found")
			return
		}
		if contacts == nil {
			contacts = []domain.Contact{}
		}
		c.JSON(http.StatusOK, contacts)
	}
}
