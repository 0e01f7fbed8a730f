package payments

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{10, 1000},
		{19.99, 1999},
		{0.5, 50},
		{49.999, 5000},
		{0, 0},
	}
	for _, c := range cases {
		if got := toMinorUnits(c.price); got != c.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestComputeRequestHash(t *testing.T) {
	r1 := httptest.NewRequest(http.MethodPost, "/payments", nil)
	r2 := httptest.NewRequest(http.MethodPost, "/payments", nil)

	body := []byte(`{"bookingId":"b1"}`)
	if computeRequestHash(r1, body) != computeRequestHash(r2, body) {
		t.Fatal("identical requests must hash identically")
	}
	if computeRequestHash(r1, body) == computeRequestHash(r1, []byte(`{"bookingId":"b2"}`)) {
		t.Fatal("different bodies must hash differently")
	}

	r3 := httptest.NewRequest(http.MethodPost, "/other", nil)
	if computeRequestHash(r1, body) == computeRequestHash(r3, body) {
		t.Fatal("different paths must hash differently")
	}
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
	}{
		{int32(201), 201},
		{int64(404), 404},
		{float64(409), 409},
		{200, 200},
		{"nope", 0},
		{nil, 0},
	}
	for _, c := range cases {
		if got := asInt(c.in); got != c.want {
			t.Errorf("asInt(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCaptureResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	crw := NewCaptureResponseWriter(rec)

	crw.WriteHeader(http.StatusCreated)
	crw.WriteHeader(http.StatusInternalServerError) // second call must be ignored
	crw.Write([]byte(`{"ok":true}`))

	if crw.Status() != http.StatusCreated {
		t.Fatalf("expected 201, got %d", crw.Status())
	}
	if string(crw.BodyBytes()) != `{"ok":true}` {
		t.Fatalf("unexpected captured body: %s", crw.BodyBytes())
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("underlying writer got %d", rec.Code)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Fatalf("underlying writer body: %s", rec.Body.String())
	}
}
