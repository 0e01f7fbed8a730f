package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parlour/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthenticateMissingHeader(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run without a credential")
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run with a bad credential")
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run with an expired credential")
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "a@x.com", -time.Minute))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthenticatePutsEmailInContext(t *testing.T) {
	var gotEmail string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotEmail, _ = r.Context().Value(globals.EmailKey).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "a@x.com", time.Hour))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "a@x.com" {
		t.Fatalf("expected email in context, got %q", gotEmail)
	}
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signToken(t, "b@x.com", time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "b@x.com" {
		t.Fatalf("expected b@x.com, got %q", claims.Email)
	}

	if _, err := ValidateJWT(""); err == nil {
		t.Fatal("empty token must fail")
	}
	// a raw token without the Bearer prefix must be rejected, not truncated
	if _, err := ValidateJWT(signToken(t, "b@x.com", time.Hour)); err == nil {
		t.Fatal("unprefixed token must fail")
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
				order = append(order, name)
				next(w, r, ps)
			}
		}
	}

	handler := Chain(mw("outer"), mw("inner"))(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		order = append(order, "handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler(httptest.NewRecorder(), req, nil)

	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Fatalf("unexpected execution order: %v", order)
	}
}
