package models

// Service is a bookable treatment with its offered time slots.
// Slots returned from the availability endpoint are a per-request view
// with consumed labels removed; the stored document is never rewritten.
type Service struct {
	ServiceID   string   `json:"serviceid" bson:"serviceid"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price" bson:"price"`
	Slots       []string `json:"slots" bson:"slots"`
	CreatedAt   int64    `json:"createdAt" bson:"createdAt"`
}

// CatalogEntry is an admin-managed service catalog record, kept in its
// own collection separate from the public services listing.
type CatalogEntry struct {
	EntryID     string  `json:"entryid" bson:"entryid"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"img,omitempty" bson:"img,omitempty"`
	CreatedAt   int64   `json:"createdAt" bson:"createdAt"`
}
