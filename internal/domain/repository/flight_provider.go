package repository

import (
	"context"

	"flighttrack-service/internal/domain/entity"
)

// FlightProvider defines the interface for the external flight status API.
// Fetch performs exactly one outbound call and hands back the parsed body
// verbatim, provider-signalled errors included.
type FlightProvider interface {
	Configured() bool
	Fetch(ctx context.Context, flightIata string) (*entity.ProviderResponse, error)
}
