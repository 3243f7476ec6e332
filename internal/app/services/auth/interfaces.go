package auth

import (
	"context"
	"time"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error)
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.VerifyOTP, error)
}

type UserRepository interface {
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)
	FindByPhoneAndUsername(ctx context.Context, phoneNumber, username string) (*models.User, error)
	// CreateIfAbsent inserts the user, or returns the existing record for the
	// same phone number. The stored username converges to the requested one.
	CreateIfAbsent(ctx context.Context, user *models.User) (*models.User, error)
	EnsureIndexes(ctx context.Context, retention time.Duration) error
}
