package utils

import (
	"net/http"

	"parlour/globals"
)

// GetEmailFromRequest returns the authenticated caller's email, or ""
// when the request never went through middleware.Authenticate.
func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
