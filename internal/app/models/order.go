package models

import "time"

type OrderProduct struct {
	ProductID          string    `json:"_id" bson:"_id"`
	ProductName        string    `json:"productName" bson:"productName"`
	Image              string    `json:"image" bson:"image"`
	CategoryID         string    `json:"category" bson:"category"`
	CategoryName       string    `json:"categoryName" bson:"categoryName"`
	Quantity           int       `json:"quantity" bson:"quantity"`
	IsProductAvailable bool      `json:"isProductAvailabe" bson:"isProductAvailabe"`
	Price              float64   `json:"price" bson:"price"`
	DiscountedPrice    float64   `json:"discountedPrice" bson:"discountedPrice"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

type DeliveryAddress struct {
	ID           string `json:"_id" bson:"_id"`
	Type         string `json:"type" bson:"type"`
	AreaOrStreet string `json:"areaOrStreet" bson:"areaOrStreet"`
	Landmark     string `json:"landmark" bson:"landmark"`
	Pincode      int    `json:"pincode" bson:"pincode"`
	IsDefault    bool   `json:"isDefault" bson:"isDefault"`
	PhoneNumber  string `json:"phoneNumber" bson:"phoneNumber"`
}

type OrdersCart struct {
	ID                string         `json:"_id" bson:"_id"`
	PhoneNumber       string         `json:"phoneNumber" bson:"phoneNumber"`
	UpdatedAt         time.Time      `json:"updatedAt" bson:"updatedAt"`
	ProductsList      []OrderProduct `json:"productsList" bson:"productsList"`
	TotalItemsInCart  int            `json:"totalItemsInCart" bson:"totalItemsInCart"`
	CurrentTotalPrice float64        `json:"currentTotalPrice" bson:"currentTotalPrice"`
	DiscountedAmount  float64        `json:"discountedAmount" bson:"discountedAmount"`
	TotalPrice        float64        `json:"totalPrice" bson:"totalPrice"`
}

// Order uses a string _id (client-generated or uuid), mirroring how the
// mobile app submits carts.
type Order struct {
	ID              string          `json:"_id" bson:"_id"`
	OrdersCartDTO   OrdersCart      `json:"OrdersCartDTO" bson:"OrdersCartDTO"`
	DeliveryCharges float64         `json:"deliveryCharges" bson:"deliveryCharges"`
	TotalPayable    float64         `json:"totalPayable" bson:"totalPayable"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress" bson:"deliveryAddress"`
	PhoneNumber     string          `json:"phoneNumber" bson:"phoneNumber"`
	OrderStatus     string          `json:"orderStatus" bson:"orderStatus"`
	PaymentMethod   string          `json:"paymentMethod" bson:"paymentMethod"`
	TimeModel       `bson:",inline"`
}
