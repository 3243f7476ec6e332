package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/app/services/shared/jwtmanager"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"
	"vasavimart-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  UserRepository
	RedisRepository contracts.RedisRepository
	OTPGateway      contracts.OTPGateway
	JWTManager      *jwtmanager.JWTManager
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository UserRepository,
	redisRepository contracts.RedisRepository,
	otpGateway contracts.OTPGateway,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			OTPGateway:      otpGateway,
			JWTManager:      jwtManager,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, request.PhoneNumber),
	)

	// Fast path: a valid login token for this exact identity skips the SMS
	// round trip entirely. Any failure here falls through to a fresh OTP.
	if request.LoginToken != "" {
		if response := uc.trySkipOTP(ctx, request); response != nil {
			return response, nil
		}
	}

	cooldownKey := constvars.RedisKeyOTPCooldownPrefix + request.PhoneNumber
	cooldown := time.Duration(uc.InternalConfig.App.OTPCooldownInSeconds) * time.Second
	if cooldown > 0 {
		acquired, err := uc.RedisRepository.SetNX(ctx, cooldownKey, 1, cooldown)
		if err != nil {
			uc.Log.Error("authUsecase.SendOTP cooldown check failed, proceeding without it",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !acquired {
			return nil, exceptions.ErrOTPRequestTooSoon(fmt.Errorf("cooldown active for %s", request.PhoneNumber))
		}
	}

	sessionID, err := uc.OTPGateway.RequestChallenge(ctx, request.PhoneNumber)
	if err != nil {
		// Release the cooldown so the user can retry immediately.
		if cooldown > 0 {
			_ = uc.RedisRepository.Delete(ctx, cooldownKey)
		}
		uc.Log.Error("authUsecase.SendOTP gateway dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrOTPGatewayDispatch(err)
	}

	token, err := uc.JWTManager.MintChallengeToken(&jwtmanager.ChallengeClaims{
		SessionID:   sessionID,
		PhoneNumber: request.PhoneNumber,
		Username:    request.Username,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.SendOTP{Token: token}, nil
}

// trySkipOTP reports whether the supplied login token still identifies this
// user. It never fails the request; a nil return means take the OTP path.
func (uc *authUsecase) trySkipOTP(ctx context.Context, request *requests.SendOTP) *responses.SendOTP {
	claims, err := uc.JWTManager.VerifyLoginToken(request.LoginToken)
	if err != nil {
		return nil
	}
	if claims.PhoneNumber != request.PhoneNumber || claims.Username != request.Username {
		return nil
	}

	user, err := uc.UserRepository.FindByPhoneAndUsername(ctx, request.PhoneNumber, request.Username)
	if err != nil || user == nil {
		return nil
	}

	return &responses.SendOTP{
		LoginToken:      request.LoginToken,
		AlreadyLoggedIn: true,
	}
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.VerifyOTP, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	claims, err := uc.JWTManager.VerifyChallengeToken(request.Token)
	if err != nil {
		return nil, exceptions.ErrOTPChallengeTokenInvalid(err)
	}

	matched, err := uc.OTPGateway.VerifyChallenge(ctx, claims.SessionID, request.UserOTP)
	if err != nil {
		uc.Log.Error("authUsecase.VerifyOTP gateway verify failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrOTPGatewayVerify(err)
	}
	if !matched {
		return nil, exceptions.ErrOTPMismatch(fmt.Errorf("code did not match for session %s", claims.SessionID))
	}

	user, err := uc.UserRepository.CreateIfAbsent(ctx, &models.User{
		PhoneNumber: claims.PhoneNumber,
		Username:    claims.Username,
	})
	if err != nil {
		return nil, err
	}

	loginToken, err := uc.JWTManager.MintLoginToken(&jwtmanager.LoginClaims{
		UserID:      user.ID,
		PhoneNumber: claims.PhoneNumber,
		Username:    claims.Username,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyOTPCooldownPrefix+claims.PhoneNumber)

	uc.Log.Info("authUsecase.VerifyOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, claims.PhoneNumber),
	)

	return &responses.VerifyOTP{
		LoginToken: loginToken,
		UserID:     user.ID,
	}, nil
}
