package repository

import (
	"context"
	"time"

	"flighttrack-service/internal/domain/entity"
)

// PackageRepository defines the interface for package volume evidence
type PackageRepository interface {
	VolumeByFlightSince(ctx context.Context, since time.Time) ([]entity.FlightPackageVolume, error)
}
