package pushtokens

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

type ExpoTokenController struct {
	ExpoTokenUsecase ExpoTokenUsecase
	Log              *zap.Logger
}

func NewExpoTokenController(expoTokenUsecase ExpoTokenUsecase, logger *zap.Logger) *ExpoTokenController {
	return &ExpoTokenController{
		ExpoTokenUsecase: expoTokenUsecase,
		Log:              logger,
	}
}

func (ctrl *ExpoTokenController) SaveExpoToken(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveExpoToken)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSaveExpoTokenRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ExpoTokenUsecase.SaveExpoToken(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExpoTokenSavedSuccess, nil)
}
