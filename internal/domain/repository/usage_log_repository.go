package repository

import (
	"context"
)

// UsageLogRepository defines the interface for the provider usage ledger
type UsageLogRepository interface {
	CountForDate(ctx context.Context, queryDate string) (int64, error)
	Record(ctx context.Context, flightIata string) error
}
