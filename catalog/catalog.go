package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"parlour/db"
	"parlour/models"
	"parlour/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Service struct {
	store *db.Store
}

func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

// ListServices handles GET /services?date=...
// It reads the full services listing and the bookings for the requested
// date, then filters each service's slots through the availability
// calculator. The two reads are separate points in time; a booking that
// lands between them may or may not be reflected.
func (s *Service) ListServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	date := r.URL.Query().Get("date")

	cursor, err := s.store.Services.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing services")
		return
	}

	var booked []models.Booking
	if date != "" {
		cur, err := s.store.Bookings.Find(ctx, bson.M{"selectedDate": date})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
			return
		}
		if err := cur.All(ctx, &booked); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error processing bookings")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, WithAvailability(date, services, booked))
}

// GetCatalog handles GET /service (admin).
func (s *Service) GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := s.store.Catalog.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve catalog")
		return
	}
	var entries []models.CatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing catalog")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// AddCatalogEntry handles POST /service (admin).
func (s *Service) AddCatalogEntry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var entry models.CatalogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service data")
		return
	}

	entry.EntryID = utils.GetUUID()
	entry.CreatedAt = time.Now().Unix()

	if _, err := s.store.Catalog.InsertOne(r.Context(), entry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert service")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"acknowledged": true, "entryid": entry.EntryID})
}

// DeleteCatalogEntry handles DELETE /service/:id.
func (s *Service) DeleteCatalogEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := s.store.Catalog.DeleteOne(r.Context(), bson.M{"entryid": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true, "deletedCount": res.DeletedCount})
}
