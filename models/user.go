package models

import "time"

// Role is the closed set of privilege levels. Anything outside these two
// values is rejected at the write boundary.
type Role string

const (
	RoleStandard Role = ""
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Role      Role      `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
