package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"milovat/db"
	"milovat/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if s := os.Getenv("RECEIPT_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("milovat-receipt-secret")
}

// signReceipt returns "paymentID|unit|paidAt|signature" for later gate/desk
// verification of a printed receipt.
func signReceipt(p models.Payment) string {
	data := fmt.Sprintf("%s|%s|%d", p.ID, p.Unit, p.PaidAt)
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/pagos/:id/receipt
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	paymentID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var p models.Payment
	if err := db.PaymentsCollection.FindOne(ctx, bson.M{"id": paymentID}).Decode(&p); err != nil {
		http.Error(w, "payment not found", http.StatusNotFound)
		return
	}
	if p.Status != "paid" {
		http.Error(w, "receipt available only for paid payments", http.StatusConflict)
		return
	}

	qrPNG, err := qrcode.Encode(signReceipt(p), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Comprobante de pago")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Recibo: %s", p.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Unidad: %s", p.Unit))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Concepto: %s", p.Concept))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Importe: %.2f", float64(p.Amount)/100))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Pagado: %s (%s)", time.Unix(p.PaidAt, 0).Format("2006-01-02 15:04"), p.Method))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=recibo-"+p.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
