package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Image              string             `json:"image" bson:"image"`
	Category           primitive.ObjectID `json:"category" bson:"category"`
	CategoryName       string             `json:"categoryName" bson:"categoryName"`
	Quantity           int                `json:"quantity" bson:"quantity"`
	IsProductAvailable bool               `json:"isProductAvailabe" bson:"isProductAvailabe"`
	Price              float64            `json:"price" bson:"price"`
	DiscountPrice      float64            `json:"discountPrice" bson:"discountPrice"`
	DiscountPercentage float64            `json:"discountPercentage" bson:"discountPercentage"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
