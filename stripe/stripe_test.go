package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if user, _, ok := r.BasicAuth(); !ok || user != "sk_test_123" {
			t.Errorf("missing or wrong basic auth user %q", user)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "1999" {
			t.Errorf("amount = %q, want 1999", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q, want usd", got)
		}
		if got := r.PostForm.Get("payment_method_types[]"); got != "card" {
			t.Errorf("payment_method_types[] = %q, want card", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_x","amount":1999,"currency":"usd","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("sk_test_123", srv.URL)
	intent, err := client.CreatePaymentIntent(context.Background(), 1999, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.ClientSecret != "pi_1_secret_x" {
		t.Fatalf("client secret = %q", intent.ClientSecret)
	}
	if intent.Amount != 1999 {
		t.Fatalf("amount = %d", intent.Amount)
	}
}

func TestCreatePaymentIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("sk_test_123", srv.URL)
	_, err := client.CreatePaymentIntent(context.Background(), 1000, "usd")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Error(); got != "stripe: Your card was declined." {
		t.Fatalf("unexpected error message: %q", got)
	}
}
