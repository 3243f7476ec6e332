package requests

import "time"

type OrderProduct struct {
	ProductID       string    `json:"_id" validate:"required"`
	ProductName     string    `json:"productName" validate:"required"`
	Image           string    `json:"image"`
	CategoryID      string    `json:"category"`
	CategoryName    string    `json:"categoryName"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	Price           float64   `json:"price" validate:"required,min=0"`
	DiscountedPrice float64   `json:"discountedPrice" validate:"min=0"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type DeliveryAddress struct {
	ID           string `json:"_id"`
	Type         string `json:"type"`
	AreaOrStreet string `json:"areaOrStreet" validate:"required"`
	Landmark     string `json:"landmark"`
	Pincode      int    `json:"pincode" validate:"required"`
	IsDefault    bool   `json:"isDefault"`
	PhoneNumber  string `json:"phoneNumber"`
}

type OrdersCart struct {
	ID                string         `json:"_id"`
	PhoneNumber       string         `json:"phoneNumber"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	ProductsList      []OrderProduct `json:"productsList" validate:"required,min=1,dive"`
	TotalItemsInCart  int            `json:"totalItemsInCart"`
	CurrentTotalPrice float64        `json:"currentTotalPrice"`
	DiscountedAmount  float64        `json:"discountedAmount"`
	TotalPrice        float64        `json:"totalPrice"`
}

type CreateOrder struct {
	OrdersCartDTO   OrdersCart      `json:"OrdersCartDTO" validate:"required"`
	DeliveryCharges float64         `json:"deliveryCharges" validate:"min=0"`
	TotalPayable    float64         `json:"totalPayable" validate:"required,min=0"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress" validate:"required"`
	PhoneNumber     string          `json:"phoneNumber" validate:"required,phone_number"`
	PaymentMethod   string          `json:"paymentMethod" validate:"omitempty,oneof=CASH_ON_DELIVERY ONLINE UPI"`
}

type UpdateOrderStatus struct {
	OrderStatus string `json:"orderStatus" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED EXPIRED"`
}
