package bills

import "context"

type BillUsecase interface {
	// RenderBill produces the printable receipt PDF for an order.
	RenderBill(ctx context.Context, orderID string) ([]byte, error)
}
