package payments

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"os"
	"time"

	"parlour/db"
	"parlour/models"
	"parlour/mq"
	"parlour/stripe"
	"parlour/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Service records payments into the ledger and reconciles bookings.
type Service struct {
	store  *db.Store
	stripe *stripe.Client
}

func NewService(store *db.Store) *Service {
	return &Service{
		store:  store,
		stripe: stripe.New(os.Getenv("STRIPE_SECRET_KEY")),
	}
}

// NewServiceWithClient is used by tests to swap in a fake Stripe backend.
func NewServiceWithClient(store *db.Store, sc *stripe.Client) *Service {
	return &Service{store: store, stripe: sc}
}

// toMinorUnits converts a decimal price to the currency's minor units.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent handles POST /create-payment-intent.
// Thin pass-through: no retry, no idempotency key — the processor is
// expected to dedupe client-side retries.
func (s *Service) CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	intent, err := s.stripe.CreatePaymentIntent(r.Context(), toMinorUnits(body.Price), "usd")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

// RecordPayment handles POST /payments.
//
// The referenced booking is resolved first: a payment naming a missing
// booking is rejected with 404 instead of landing as an orphaned ledger
// entry. A second payment for the same booking rewrites the same fields.
func (s *Service) RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment data")
		return
	}
	if payment.BookingID == "" || payment.TransactionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "bookingId and transactionId are required")
		return
	}

	var booking models.Booking
	err := s.store.Bookings.FindOne(ctx, bson.M{"bookingid": payment.BookingID}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	payment.PaymentID = utils.GetUUID()
	payment.CreatedAt = time.Now()
	if payment.Currency == "" {
		payment.Currency = "usd"
	}

	if _, err := s.store.Payments.InsertOne(ctx, payment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	_, err = s.store.Bookings.UpdateOne(ctx,
		bson.M{"bookingid": payment.BookingID},
		bson.M{"$set": bson.M{"paid": true, "transactionId": payment.TransactionID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	go mq.Emit(context.Background(), "payment-recorded", models.Event{
		EntityType: "payment",
		EntityID:   payment.PaymentID,
		Action:     "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"acknowledged": true,
		"paymentid":    payment.PaymentID,
	})
}
