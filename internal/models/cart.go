package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart : un document par utilisateur, jamais supprimé (seulement vidé)
type Cart struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID string             `json:"user_id" bson:"userId"`
	Items  []CartItem         `json:"items" bson:"items"`
}

type CartItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
}

// CartLine : item du panier joint aux données produit actuelles
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount,omitempty"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Stock     string  `json:"stock"`
	Quantity  int     `json:"quantity"`
}
