package requests

type SaveExpoToken struct {
	PhoneNumber   string `json:"phoneNumber" validate:"required,phone_number"`
	ExpoPushToken string `json:"expoPushToken" validate:"required"`
}

type PushNotification struct {
	To       string            `json:"to"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Sound    string            `json:"sound"`
	Priority string            `json:"priority"`
	Data     map[string]string `json:"data,omitempty"`
}
