package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"parlour/db"
	"parlour/globals"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRequireAdminWithoutIdentity(t *testing.T) {
	gate := NewGate(nil)
	handler := gate.RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run without an authenticated identity")
	})

	// no email in context: the request never went through Authenticate
	req := httptest.NewRequest(http.MethodGet, "/service", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdminRoleLookup(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	withEmail := func(req *http.Request, email string) *http.Request {
		return req.WithContext(context.WithValue(req.Context(), globals.EmailKey, email))
	}

	mt.Run("admin passes through", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "email", Value: "a@x.com"},
			{Key: "role", Value: "admin"},
		}))

		gate := NewGate(&db.Store{Users: mt.Coll})
		called := false
		handler := gate.RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			called = true
		})

		req := withEmail(httptest.NewRequest(http.MethodGet, "/service", nil), "a@x.com")
		rec := httptest.NewRecorder()
		handler(rec, req, nil)

		if !called {
			mt.Fatal("admin caller must reach the handler")
		}
		if rec.Code != http.StatusOK {
			mt.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	mt.Run("standard user is forbidden", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "email", Value: "b@x.com"},
		}))

		gate := NewGate(&db.Store{Users: mt.Coll})
		handler := gate.RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			mt.Fatal("non-admin caller must not reach the handler")
		})

		req := withEmail(httptest.NewRequest(http.MethodGet, "/service", nil), "b@x.com")
		rec := httptest.NewRecorder()
		handler(rec, req, nil)

		if rec.Code != http.StatusForbidden {
			mt.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
