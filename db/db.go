package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the collection handles for the whole application. It is
// built once at startup and threaded through every component; nothing
// reaches collections through package globals.
type Store struct {
	Client *mongo.Client

	Services    *mongo.Collection
	Catalog     *mongo.Collection
	Bookings    *mongo.Collection
	Users       *mongo.Collection
	Reviews     *mongo.Collection
	Payments    *mongo.Collection
	Idempotency *mongo.Collection
}

// Connect dials MongoDB and binds the salon collections.
func Connect(ctx context.Context, uri string) (*Store, error) {
	if uri == "" {
		uri = os.Getenv("MONGODB_URI")
	}
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	d := client.Database("parlour")
	return &Store{
		Client:      client,
		Services:    d.Collection("services"),
		Catalog:     d.Collection("addservice"),
		Bookings:    d.Collection("bookings"),
		Users:       d.Collection("users"),
		Reviews:     d.Collection("review"),
		Payments:    d.Collection("payment"),
		Idempotency: d.Collection("idempotency"),
	}, nil
}

// EnsureIndexes creates the indexes the booking and payment paths rely on:
// the unique (selectedDate, email, treatment) constraint that backs booking
// admission, and the idempotency unique-key + TTL pair.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "selectedDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("unique_booking_key"),
	})
	if err != nil {
		return err
	}

	idxs := []mongo.IndexModel{
		{
			Keys:    bson.M{"key": 1},
			Options: options.Index().SetUnique(true).SetName("unique_key"),
		},
		{
			Keys:    bson.M{"expires_at": 1},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at"),
		},
	}
	_, err = s.Idempotency.Indexes().CreateMany(ctx, idxs)
	return err
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Client.Disconnect(ctx)
}

// IsDuplicateKeyError reports whether a Mongo write failed on a unique
// index (error code 11000).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
