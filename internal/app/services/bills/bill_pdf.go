package bills

import (
	"bytes"
	"fmt"
	"vasavimart-service/internal/app/models"

	"github.com/jung-kurt/gofpdf"
)

// Receipt dimensions in points, sized for thermal printer rolls.
const (
	billPageWidth  = 300
	billPageHeight = 750
	billMargin     = 14
	qrSize         = 96
)

func renderBillPDF(order *models.Order, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: billPageWidth, Ht: billPageHeight},
	})
	pdf.SetMargins(billMargin, billMargin, billMargin)
	pdf.SetAutoPageBreak(false, billMargin)
	pdf.AddPage()

	contentWidth := float64(billPageWidth - 2*billMargin)

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 20, "Sri Vasavi Mart", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentWidth, 12, "Order Receipt", "", 1, "C", false, 0, "")
	drawDivider(pdf)

	// Order info
	pdf.SetFont("Helvetica", "", 9)
	infoRow(pdf, contentWidth, "Order ID", order.ID)
	infoRow(pdf, contentWidth, "Date", order.CreatedAt.Format("02 Jan 2006 15:04"))
	infoRow(pdf, contentWidth, "Phone", order.PhoneNumber)
	infoRow(pdf, contentWidth, "Payment", order.PaymentMethod)
	infoRow(pdf, contentWidth, "Status", order.OrderStatus)
	drawDivider(pdf)

	// Scan-to-update QR
	pdf.RegisterImageOptionsReader("order-qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("order-qr", (billPageWidth-qrSize)/2, pdf.GetY()+4, qrSize, qrSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentWidth, 10, "Scan to update order status", "", 1, "C", false, 0, "")
	drawDivider(pdf)

	// Delivery address
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentWidth, 12, "Deliver To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	address := order.DeliveryAddress
	pdf.MultiCell(contentWidth, 11, fmt.Sprintf("%s\n%s\nPincode: %d", address.AreaOrStreet, address.Landmark, address.Pincode), "", "L", false)
	drawDivider(pdf)

	// Product table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentWidth*0.55, 12, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.15, 12, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(contentWidth*0.30, 12, "Price", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, product := range order.OrdersCartDTO.ProductsList {
		pdf.CellFormat(contentWidth*0.55, 12, truncate(product.ProductName, 28), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth*0.15, 12, fmt.Sprintf("%d", product.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(contentWidth*0.30, 12, formatAmount(product.DiscountedPrice*float64(product.Quantity)), "", 1, "R", false, 0, "")
	}
	drawDivider(pdf)

	// Totals
	totalRow(pdf, contentWidth, "Subtotal", order.OrdersCartDTO.CurrentTotalPrice, false)
	totalRow(pdf, contentWidth, "Discount", -order.OrdersCartDTO.DiscountedAmount, false)
	totalRow(pdf, contentWidth, "Delivery", order.DeliveryCharges, false)
	totalRow(pdf, contentWidth, "Total Payable", order.TotalPayable, true)
	drawDivider(pdf)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentWidth, 12, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func drawDivider(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 4
	pdf.Line(billMargin, y, billPageWidth-billMargin, y)
	pdf.SetY(y + 4)
}

func infoRow(pdf *gofpdf.Fpdf, width float64, label, value string) {
	pdf.CellFormat(width*0.35, 12, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(width*0.65, 12, value, "", 1, "R", false, 0, "")
}

func totalRow(pdf *gofpdf.Fpdf, width float64, label string, amount float64, emphasize bool) {
	if emphasize {
		pdf.SetFont("Helvetica", "B", 10)
	}
	pdf.CellFormat(width*0.55, 13, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(width*0.45, 13, formatAmount(amount), "", 1, "R", false, 0, "")
	if emphasize {
		pdf.SetFont("Helvetica", "", 9)
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("Rs. %.2f", amount)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
