package models

import "time"

// Review is append-only; there is no update or delete path.
type Review struct {
	ReviewID  string    `json:"reviewid" bson:"reviewid"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
