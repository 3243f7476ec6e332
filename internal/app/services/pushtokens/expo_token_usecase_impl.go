package pushtokens

import (
	"context"
	"sync"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type expoTokenUsecase struct {
	ExpoTokenRepository ExpoTokenRepository
	Log                 *zap.Logger
}

var (
	expoTokenUsecaseInstance ExpoTokenUsecase
	onceExpoTokenUsecase     sync.Once
)

func NewExpoTokenUsecase(expoTokenRepository ExpoTokenRepository, logger *zap.Logger) ExpoTokenUsecase {
	onceExpoTokenUsecase.Do(func() {
		expoTokenUsecaseInstance = &expoTokenUsecase{
			ExpoTokenRepository: expoTokenRepository,
			Log:                 logger,
		}
	})
	return expoTokenUsecaseInstance
}

func (uc *expoTokenUsecase) SaveExpoToken(ctx context.Context, request *requests.SaveExpoToken) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.ExpoTokenRepository.Upsert(ctx, request.PhoneNumber, request.ExpoPushToken)
	if err != nil {
		return err
	}

	uc.Log.Info("expoTokenUsecase.SaveExpoToken saved token",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, request.PhoneNumber),
	)
	return nil
}
