package payment

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"
	"vastra_back_end/internal/payment"

	"github.com/gin-gonic/gin"
)

// Gateway est injectée au démarrage (et remplacée par un stub en test)
var Gateway payment.OrderCreator

//
// 💳 POST /api/razorpay/create-order
//
func CreateOrder(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Rejeté avant tout appel à la passerelle
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Montant invalide"})
		return
	}

	if Gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Passerelle de paiement non configurée"})
		return
	}

	receipt := fmt.Sprintf("order_%d", time.Now().UnixMilli())

	orderID, err := Gateway.CreateOrder(input.Amount, receipt)
	if err != nil {
		log.Printf("❌ Erreur création commande passerelle: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur création commande"})
		return
	}

	// Trace locale best-effort ; la vérité du paiement reste chez Razorpay
	go recordOrder(orderID, c.GetString("user_id"), input.Amount, receipt)

	c.JSON(http.StatusOK, gin.H{"orderId": orderID})
}

func recordOrder(orderID, userID string, amount float64, receipt string) {
	if database.MongoDB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order := models.Order{
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount,
		Currency:  "INR",
		Receipt:   receipt,
		Status:    "created",
		CreatedAt: time.Now(),
	}

	if _, err := database.Orders().InsertOne(ctx, order); err != nil {
		log.Printf("⚠️ Erreur enregistrement commande %s: %v", orderID, err)
	}
}
