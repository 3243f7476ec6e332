package constvars

const (
	RegexPhoneNumberE164 = `^\+[1-9]\d{9,14}$`
	RegexUsername        = `^[a-zA-Z0-9 ._-]{2,64}$`
)
