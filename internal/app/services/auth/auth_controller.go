package auth

import (
	"context"
	"net/http"
	"time"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/exceptions"
	"vasavimart-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         logger,
	}
}

func (ctrl *AuthController) SendOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendOTP)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSendOTPRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.SendOTP(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.OTPSentSuccess
	if response.AlreadyLoggedIn {
		message = constvars.UserAlreadyLoggedIn
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyOTP)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeVerifyOTPRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.VerifyOTP(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPVerifiedSuccess, response)
}
