package bills

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/app/services/orders"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type billUsecase struct {
	OrderRepository orders.OrderRepository
	MinioStorage    contracts.Storage
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	billUsecaseInstance BillUsecase
	onceBillUsecase     sync.Once
)

func NewBillUsecase(
	orderRepository orders.OrderRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) BillUsecase {
	onceBillUsecase.Do(func() {
		billUsecaseInstance = &billUsecase{
			OrderRepository: orderRepository,
			MinioStorage:    minioStorage,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return billUsecaseInstance
}

func (uc *billUsecase) RenderBill(ctx context.Context, orderID string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(fmt.Errorf("no order with id %s", orderID))
	}

	// The QR carries the order id so the delivery agent's scanner can pull
	// up the status update screen.
	qrPNG, err := qrcode.Encode(order.ID, qrcode.Medium, 256)
	if err != nil {
		return nil, exceptions.ErrPDFRender(err)
	}

	pdfBytes, err := renderBillPDF(order, qrPNG)
	if err != nil {
		return nil, exceptions.ErrPDFRender(err)
	}

	uc.archiveBill(order.ID, pdfBytes)

	uc.Log.Info("billUsecase.RenderBill rendered receipt",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.Int("pdf_bytes", len(pdfBytes)),
	)

	return pdfBytes, nil
}

// archiveBill keeps a copy in object storage. Failures are logged only; the
// caller already has the bytes to serve.
func (uc *billUsecase) archiveBill(orderID string, pdfBytes []byte) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		objectName := fmt.Sprintf("bills/%s.pdf", orderID)
		_, err := uc.MinioStorage.UploadObject(ctx, uc.InternalConfig.Minio.BucketName, objectName, pdfBytes, constvars.MIMEApplicationPDF)
		if err != nil {
			uc.Log.Error("billUsecase.archiveBill upload failed",
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(err),
			)
		}
	}()
}
