package pushtokens

import (
	"context"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/dto/requests"
)

type ExpoTokenUsecase interface {
	SaveExpoToken(ctx context.Context, request *requests.SaveExpoToken) error
}

type ExpoTokenRepository interface {
	Upsert(ctx context.Context, phoneNumber, expoPushToken string) error
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.ExpoToken, error)
	EnsureIndexes(ctx context.Context) error
}
