package responses

type CreateOrder struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

type UpdateOrderStatus struct {
	OrderID        string `json:"orderId"`
	OrderStatus    string `json:"orderStatus"`
	PreviousStatus string `json:"previousStatus"`
}
