package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"parlour/models"
	"parlour/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if s := os.Getenv("RECEIPT_HMAC_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("parlour_receipt_secret")
}

// PrintReceipt handles GET /bookings/:id/receipt.
// Only the booking's owner can print, and only once it is paid. The QR
// payload is HMAC-signed so the front desk can verify a printed receipt
// without a database round trip.
func (s *Service) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var booking models.Booking
	err := s.store.Bookings.FindOne(r.Context(), bson.M{"bookingid": id}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if booking.Email != utils.GetEmailFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}
	if !booking.Paid {
		utils.RespondWithError(w, http.StatusBadRequest, "Booking is not paid yet")
		return
	}

	receiptData := fmt.Sprintf("%s|%s", booking.BookingID, booking.TransactionID)
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(receiptData))
	signature := base64.StdEncoding.EncodeToString(h.Sum(nil))

	qrPayload := fmt.Sprintf("%s|%s", receiptData, signature)

	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Treatment: %s", booking.Treatment))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s  Slot: %s", booking.SelectedDate, booking.Slot))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Amount: %.2f", booking.Price))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Transaction: %s", booking.TransactionID))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 10, pdf.GetY(), 50, 50, false, imageOpts, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", booking.BookingID))
	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render receipt")
	}
}
