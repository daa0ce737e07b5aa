package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order : trace locale de la commande créée chez la passerelle de paiement.
// La confirmation du paiement se fait côté client (widget Razorpay).
type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID   string             `json:"order_id" bson:"order_id"` // id Razorpay
	UserID    string             `json:"user_id" bson:"user_id"`
	Amount    float64            `json:"amount" bson:"amount"`
	Currency  string             `json:"currency" bson:"currency"`
	Receipt   string             `json:"receipt" bson:"receipt"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
