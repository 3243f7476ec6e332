package bills

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BillController struct {
	BillUsecase BillUsecase
	Log         *zap.Logger
}

func NewBillController(billUsecase BillUsecase, logger *zap.Logger) *BillController {
	return &BillController{
		BillUsecase: billUsecase,
		Log:         logger,
	}
}

func (ctrl *BillController) GetBill(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	pdfBytes, err := ctrl.BillUsecase.RenderBill(ctx, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", orderID+".pdf"))
	w.WriteHeader(constvars.StatusOK)
	w.Write(pdfBytes)
}
