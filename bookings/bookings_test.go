package bookings

import (
	"strings"
	"testing"

	"parlour/models"
)

func TestAdmissionKeyUsesExactTriple(t *testing.T) {
	b := models.Booking{
		Email:        "a@x.com",
		Treatment:    "Facial",
		SelectedDate: "2024-05-01",
		Slot:         "11:00",
		Price:        49.99,
	}

	key := admissionKey(b)

	if len(key) != 3 {
		t.Fatalf("admission key must have exactly 3 fields, got %v", key)
	}
	if key["selectedDate"] != "2024-05-01" || key["email"] != "a@x.com" || key["treatment"] != "Facial" {
		t.Fatalf("unexpected key: %v", key)
	}
	if _, ok := key["slot"]; ok {
		t.Fatal("slot must not be part of the admission key")
	}
}

func TestDuplicateMessageContainsDate(t *testing.T) {
	msg := duplicateMessage("2024-05-01")
	if !strings.Contains(msg, "2024-05-01") {
		t.Fatalf("message must contain the date: %q", msg)
	}
}

func TestValidateRequest(t *testing.T) {
	valid := models.Booking{
		Email:        "a@x.com",
		Treatment:    "Facial",
		SelectedDate: "2024-05-01",
		Slot:         "11:00",
	}
	if err := validateRequest(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []models.Booking{
		{Treatment: "Facial", SelectedDate: "2024-05-01", Slot: "11:00"},
		{Email: "a@x.com", SelectedDate: "2024-05-01", Slot: "11:00"},
		{Email: "a@x.com", Treatment: "Facial", Slot: "11:00"},
		{Email: "a@x.com", Treatment: "Facial", SelectedDate: "2024-05-01"},
	}
	for i, c := range cases {
		if err := validateRequest(c); err == nil {
			t.Errorf("case %d: incomplete request accepted", i)
		}
	}
}
