package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/internal/domain/repository"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightCacheRepository implements FlightCacheRepository
type MongoFlightCacheRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
	logger     logger.Logger
}

// NewMongoFlightCacheRepository creates a new flight cache repository
func NewMongoFlightCacheRepository(db *mongo.Database, clk clock.Clock, logger logger.Logger) repository.FlightCacheRepository {
	collection := db.Collection("flight_cache")

	// Index for the most-recent-under-TTL read
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "flightIata", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoFlightCacheRepository{
		collection: collection,
		clock:      clk,
		logger:     logger,
	}
}

// Read selects the most recent entry for the flight that is still inside
// the TTL window. A payload that no longer deserializes counts as a miss,
// never as an error.
func (r *MongoFlightCacheRepository) Read(ctx context.Context, flightIata string, ttl time.Duration) (*entity.FlightStatus, error) {
	cutoff := r.clock.Now().Add(-ttl)
	filter := bson.M{
		"flightIata": flightIata,
		"createdAt":  bson.M{"$gte": cutoff},
	}
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var entry entity.CacheEntry
	err := r.collection.FindOne(ctx, filter, opts).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flight cache: %w", err)
	}

	var status entity.FlightStatus
	if err := json.Unmarshal([]byte(entry.Payload), &status); err != nil {
		r.logger.Warn("Discarding undecodable cache entry",
			"flightIata", flightIata,
			"entryId", entry.ID,
			"error", err)
		return nil, nil
	}

	return &status, nil
}

// Write appends a new cache entry. Older rows for the same flight are left
// in place; the read path supersedes them by creation time.
func (r *MongoFlightCacheRepository) Write(ctx context.Context, flightIata string, status *entity.FlightStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload: %w", err)
	}

	entry := entity.CacheEntry{
		ID:         primitive.NewObjectID().Hex(),
		FlightIata: flightIata,
		Payload:    string(payload),
		CreatedAt:  r.clock.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to write flight cache: %w", err)
	}
	return nil
}
