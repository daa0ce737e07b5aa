package handlers

import (
	"log"
	"net/http"

	"vastra_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

//
// ✉️ POST /api/contact
//
func Contact(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et message obligatoires"})
		return
	}

	if err := utils.SendContactEmail(input.Name, input.Phone, input.Email, input.Message); err != nil {
		log.Printf("❌ Erreur envoi email de contact: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de l'envoi du message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message envoyé avec succès"})
}
