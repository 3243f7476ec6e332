package responses

// SendOTP carries exactly one of Token (a fresh OTP challenge) or
// LoginToken (the fast path echoed an already valid credential).
type SendOTP struct {
	Token           string `json:"token,omitempty"`
	LoginToken      string `json:"loginToken,omitempty"`
	AlreadyLoggedIn bool   `json:"alreadyLoggedIn,omitempty"`
}

type VerifyOTP struct {
	LoginToken string `json:"loginToken"`
	UserID     string `json:"userId"`
}
