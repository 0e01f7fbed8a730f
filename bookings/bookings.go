package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parlour/db"
	"parlour/models"
	"parlour/mq"
	"parlour/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	store *db.Store
}

func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

// admissionKey is the uniqueness filter over (date, customer, treatment).
// The same triple backs the unique index created at startup.
func admissionKey(b models.Booking) bson.M {
	return bson.M{
		"selectedDate": b.SelectedDate,
		"email":        b.Email,
		"treatment":    b.Treatment,
	}
}

func duplicateMessage(date string) string {
	return fmt.Sprintf("You already have a booking on %s", date)
}

func validateRequest(b models.Booking) error {
	if b.Email == "" || b.Treatment == "" || b.SelectedDate == "" || b.Slot == "" {
		return fmt.Errorf("email, treatment, selectedDate and slot are required")
	}
	return nil
}

// CreateBooking handles POST /bookings.
//
// Admission is a check-then-insert: the pre-check produces the friendly
// duplicate message without a write, and the unique index closes the race
// window between two concurrent requests for the same key — an insert that
// loses the race surfaces as a duplicate-key error and maps to 409.
func (s *Service) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking data")
		return
	}
	if err := validateRequest(booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := s.store.Bookings.CountDocuments(ctx, admissionKey(booking))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check existing bookings")
		return
	}
	if count > 0 {
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"acknowledged": false,
			"message":      duplicateMessage(booking.SelectedDate),
		})
		return
	}

	booking.BookingID = utils.GetUUID()
	booking.Paid = false
	booking.TransactionID = ""
	booking.CreatedAt = time.Now().Unix()

	if _, err := s.store.Bookings.InsertOne(ctx, booking); err != nil {
		if db.IsDuplicateKeyError(err) {
			utils.RespondWithJSON(w, http.StatusConflict, utils.M{
				"acknowledged": false,
				"message":      duplicateMessage(booking.SelectedDate),
			})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert booking")
		return
	}

	go mq.Emit(context.Background(), "booking-created", models.Event{
		EntityType: "booking",
		EntityID:   booking.BookingID,
		Action:     "POST",
		Date:       booking.SelectedDate,
	})
	broadcastUpdate(booking.SelectedDate)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"acknowledged": true,
		"bookingid":    booking.BookingID,
	})
}

// ListBookings handles GET /bookings?email=...
// The queried email must match the authenticated caller's.
func (s *Service) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" || email != utils.GetEmailFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.store.Bookings.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	var result []models.Booking
	if err := cursor.All(ctx, &result); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing bookings")
		return
	}
	if result == nil {
		result = []models.Booking{}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetBooking handles GET /bookings/:id.
func (s *Service) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var booking models.Booking
	err := s.store.Bookings.FindOne(r.Context(), bson.M{"bookingid": id}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
