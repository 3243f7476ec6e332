package utils

import (
	"strings"
	"vasavimart-service/internal/pkg/dto/requests"
)

func SanitizeSendOTPRequest(request *requests.SendOTP) {
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Username = strings.TrimSpace(request.Username)
	request.LoginToken = strings.TrimSpace(request.LoginToken)
}

func SanitizeVerifyOTPRequest(request *requests.VerifyOTP) {
	request.Token = strings.TrimSpace(request.Token)
	request.UserOTP = strings.TrimSpace(request.UserOTP)
}

func SanitizeSaveExpoTokenRequest(request *requests.SaveExpoToken) {
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.ExpoPushToken = strings.TrimSpace(request.ExpoPushToken)
}
