package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"parlour/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware wraps an httprouter handler.
type Middleware func(httprouter.Handle) httprouter.Handle

// Chain composes middlewares left to right: the first one listed is the
// outermost wrapper.
func Chain(mws ...Middleware) Middleware {
	return func(final httprouter.Handle) httprouter.Handle {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Authenticate verifies the bearer token and stores the email claim in the
// request context. A missing header is 401; a header that fails
// verification is 403.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// ValidateJWT verifies a full Authorization header value ("Bearer <token>")
// and returns its claims.
func ValidateJWT(tokenString string) (*Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(tokenString, prefix) {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(strings.TrimPrefix(tokenString, prefix), claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}
