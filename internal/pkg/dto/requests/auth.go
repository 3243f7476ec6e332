package requests

type SendOTP struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Username    string `json:"username" validate:"required,username"`
	LoginToken  string `json:"loginToken,omitempty"`
}

type VerifyOTP struct {
	Token   string `json:"token" validate:"required"`
	UserOTP string `json:"userOtp" validate:"required,min=4,max=8"`
}
