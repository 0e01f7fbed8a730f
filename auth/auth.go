package auth

import (
	"log"
	"net/http"
	"time"

	"parlour/db"
	"parlour/globals"
	"parlour/middleware"
	"parlour/models"
	"parlour/rdx"
	"parlour/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const accessTokenTTL = time.Hour

// Service issues bearer tokens. Issuance is gated on the prior existence
// of a user record: registration happens through POST /users before a
// token can ever be minted for that email.
type Service struct {
	store *db.Store
}

func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

// IssueToken handles GET /jwt?email=...
func (s *Service) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	var user models.User
	err := s.store.Users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, "forbidden access")
		return
	}

	// hand back the cached token while it still has life left
	if cached, err := rdx.RdxHget("tokki", email); err == nil && tokenUsable(cached, email) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"accessToken": cached})
		return
	}

	tokenString, err := NewToken(email, accessTokenTTL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// best effort: keep the latest issued token per user in Redis
	if err := rdx.RdxHset("tokki", email, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"accessToken": tokenString})
}

// tokenUsable reports whether a previously issued token can still be
// handed out: it must verify, belong to the same email, and not be
// about to expire under the caller.
func tokenUsable(tokenString, email string) bool {
	claims, err := middleware.ValidateJWT("Bearer " + tokenString)
	if err != nil || claims.Email != email {
		return false
	}
	return claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) > 5*time.Minute
}

// NewToken signs a short-lived access token carrying the email claim.
func NewToken(email string, ttl time.Duration) (string, error) {
	claims := &middleware.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
