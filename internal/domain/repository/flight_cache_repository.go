package repository

import (
	"context"
	"time"

	"flighttrack-service/internal/domain/entity"
)

// FlightCacheRepository defines the interface for the flight status cache.
// Read returns (nil, nil) when no row younger than the TTL exists or when
// the stored payload no longer deserializes; stale rows are simply ignored.
type FlightCacheRepository interface {
	Read(ctx context.Context, flightIata string, ttl time.Duration) (*entity.FlightStatus, error)
	Write(ctx context.Context, flightIata string, status *entity.FlightStatus) error
}
