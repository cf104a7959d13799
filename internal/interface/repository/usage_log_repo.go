package repository

import (
	"context"
	"fmt"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/internal/domain/repository"
	"flighttrack-service/pkg/clock"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUsageLogRepository implements UsageLogRepository
type MongoUsageLogRepository struct {
	collection *mongo.Collection
	clock      clock.Clock
}

// NewMongoUsageLogRepository creates a new usage ledger repository
func NewMongoUsageLogRepository(db *mongo.Database, clk clock.Clock) repository.UsageLogRepository {
	collection := db.Collection("flight_usage_log")

	// Index for the per-day quota count
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"queryDate": 1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoUsageLogRepository{
		collection: collection,
		clock:      clk,
	}
}

// CountForDate counts provider calls recorded for one civil date
func (r *MongoUsageLogRepository) CountForDate(ctx context.Context, queryDate string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"queryDate": queryDate})
	if err != nil {
		return 0, fmt.Errorf("failed to count usage records: %w", err)
	}
	return count, nil
}

// Record appends one usage row for the current civil day
func (r *MongoUsageLogRepository) Record(ctx context.Context, flightIata string) error {
	record := entity.UsageRecord{
		ID:             primitive.NewObjectID().Hex(),
		FlightIata:     flightIata,
		QueryDate:      r.clock.Today().Format(entity.QueryDateLayout),
		QueryTimestamp: r.clock.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to record provider usage: %w", err)
	}
	return nil
}
