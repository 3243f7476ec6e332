package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateOrderID() string {
	return uuid.New().String()
}
