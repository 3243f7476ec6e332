package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters",
	"max":          "must be at most %s characters",
	"oneof":        "must be one of: %s",
	"phone_number": "Phone number must be in international format, e.g. +15550001111",
	"username":     "Username must be 2-64 characters of letters, digits, spaces, dots, hyphens or underscores",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
