package reviews

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	store *db.Store
}

func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

// GetReviews handles GET /review.
func (s *Service) GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.store.Reviews.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	var result []models.Review
	if err := cursor.All(ctx, &result); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing reviews")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// AddReview handles POST /review. Reviews are append-only; the author
// is the authenticated caller.
func (s *Service) AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := utils.GetEmailFromRequest(r)
	if email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 || review.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	review.ReviewID = utils.GenerateRandomString(16)
	review.Email = email
	review.CreatedAt = time.Now()

	if _, err := s.store.Reviews.InsertOne(r.Context(), review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert review")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"acknowledged": true, "reviewid": review.ReviewID})
}
