package models

// Booking reserves one slot of one treatment for one customer on one date.
// (SelectedDate, Email, Treatment) is unique across bookings, backed by a
// compound index created at startup.
type Booking struct {
	BookingID     string  `json:"bookingid" bson:"bookingid"`
	Email         string  `json:"email" bson:"email"`
	Name          string  `json:"name,omitempty" bson:"name,omitempty"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Treatment     string  `json:"treatment" bson:"treatment"`
	SelectedDate  string  `json:"selectedDate" bson:"selectedDate"`
	Slot          string  `json:"slot" bson:"slot"`
	Price         float64 `json:"price" bson:"price"`
	Paid          bool    `json:"paid" bson:"paid"`
	TransactionID string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt     int64   `json:"createdAt" bson:"createdAt"`
}
