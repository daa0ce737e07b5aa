package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StockIn  = "in stock"
	StockOut = "out of stock"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Discount    float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Image       string             `json:"image" bson:"image"`
	SubImages   []string           `json:"subImages" bson:"subImages"`
	Category    string             `json:"category" bson:"category"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	Stock       string             `json:"stock" bson:"stock"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
