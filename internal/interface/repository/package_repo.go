package repository

import (
	"context"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPackageRepository implements the PackageRepository interface
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GORM package repository
func NewGormPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &GormPackageRepository{
		db: db,
	}
}

// Packages GORM model for database mapping. The table itself is owned by
// the CRUD side of the platform; this subsystem only reads it.
type Packages struct {
	gorm.Model
	ID           uint           `gorm:"primaryKey"`
	TrackingCode string         `gorm:"column:tracking_code;unique"`
	FlightIata   string         `gorm:"column:flight_iata;index"`
	Status       string         `gorm:"column:status"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Packages) TableName() string {
	return "t_packages"
}

// VolumeByFlightSince groups packages created at or after the given instant
// by flight and returns the per-flight counts
func (r *GormPackageRepository) VolumeByFlightSince(ctx context.Context, since time.Time) ([]entity.FlightPackageVolume, error) {
	var volumes []entity.FlightPackageVolume
	result := r.db.WithContext(ctx).
		Model(&Packages{}).
		Select("flight_iata, count(*) as package_count").
		Where("created_at >= ?", since).
		Group("flight_iata").
		Scan(&volumes)

	if result.Error != nil {
		return nil, result.Error
	}
	return volumes, nil
}
