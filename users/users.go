package users

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

// ListUsers handles GET /users.
func (s *Service) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := s.store.Users.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	var result []models.User
	if err := cursor.All(ctx, &result); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// CheckAdmin handles GET /users/admin/:email.
func (s *Service) CheckAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	var user models.User
	err := s.store.Users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
	isAdmin := err == nil && user.Role == models.RoleAdmin

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"isAdmin": isAdmin})
}

// CreateUser handles POST /users (first sign-in). The role field is a
// closed enum checked here at the write boundary; arbitrary strings are
// rejected rather than stored.
func (s *Service) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	if !user.Role.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	user.UserID = utils.GetUUID()
	user.CreatedAt = time.Now()

	if _, err := s.store.Users.InsertOne(r.Context(), user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert user")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"acknowledged": true, "userid": user.UserID})
}

// PromoteAdmin handles PUT /users/admin/:id. Admin gated by the router
// chain; upsert semantics preserved from the original behavior.
func (s *Service) PromoteAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	opts := options.Update().SetUpsert(true)
	res, err := s.store.Users.UpdateOne(r.Context(),
		bson.M{"userid": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
		opts,
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true, "modifiedCount": res.ModifiedCount})
}

// DeleteUser handles DELETE /users/admin/:id.
func (s *Service) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := s.store.Users.DeleteOne(r.Context(), bson.M{"userid": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"acknowledged": true, "deletedCount": res.DeletedCount})
}
