package models

import "time"

// Payment is a ledger entry, written once per successful payment.
type Payment struct {
	PaymentID     string    `json:"paymentid" bson:"paymentid"`
	BookingID     string    `json:"bookingId" bson:"bookingId"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Amount        float64   `json:"amount" bson:"amount"`
	Currency      string    `json:"currency,omitempty" bson:"currency,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// IdempotencyRecord backs the opt-in Idempotency-Key middleware on the
// payments endpoint. Expired records are reaped by a TTL index.
type IdempotencyRecord struct {
	Key         string                 `bson:"key"`
	Method      string                 `bson:"method"`
	Path        string                 `bson:"path"`
	RequestHash string                 `bson:"request_hash"`
	Response    map[string]interface{} `bson:"response,omitempty"`
	CreatedAt   time.Time              `bson:"created_at"`
	ExpiresAt   time.Time              `bson:"expires_at"`
}
