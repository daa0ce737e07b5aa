// Package payment encapsule la passerelle Razorpay : on ne lui demande
// qu'une chose, frapper un identifiant de commande pour un montant donné.
// L'encaissement lui-même se fait côté client via le widget Razorpay.
package payment

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrInvalidAmount = errors.New("montant invalide")

// toPaise convertit des roupies en paise, l'unité mineure attendue par
// l'API Orders de Razorpay.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// OrderCreator frappe un identifiant de commande chez la passerelle.
type OrderCreator interface {
	CreateOrder(amount float64, receipt string) (string, error)
}

// RazorpayGateway implémente OrderCreator sur l'API Orders de Razorpay.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway() (*RazorpayGateway, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, errors.New("clés Razorpay manquantes dans .env")
	}
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

// CreateOrder convertit le montant en paise (unité mineure Razorpay)
// et retourne l'identifiant de commande frappé par la passerelle.
func (g *RazorpayGateway) CreateOrder(amount float64, receipt string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	data := map[string]interface{}{
		"amount":   toPaise(amount),
		"currency": "INR",
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("❌ Erreur Razorpay: %v", err)
		return "", fmt.Errorf("création commande Razorpay: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", errors.New("réponse Razorpay sans identifiant de commande")
	}

	return orderID, nil
}
