package middleware

import (
	"net/http"

	"parlour/db"
	"parlour/globals"
	"parlour/models"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Gate is the second-stage authorization check. It trusts the email that
// Authenticate placed in the context and performs no signature work of
// its own, so it must always be chained after Authenticate.
type Gate struct {
	store *db.Store
}

func NewGate(store *db.Store) *Gate {
	return &Gate{store: store}
}

// RequireAdmin permits continuation only when the authenticated caller's
// user record carries the admin role.
func (g *Gate) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, ok := r.Context().Value(globals.EmailKey).(string)
		if !ok || email == "" {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		var user models.User
		err := g.store.Users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
		if err != nil || user.Role != models.RoleAdmin {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		next(w, r, ps)
	}
}
