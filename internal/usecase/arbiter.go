package usecase

import (
	"context"

	"flighttrack-service/internal/domain/repository"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"
)

const (
	// Lookups at or above this priority are never deferred
	priorityBypassThreshold = 3

	// A flight with this many same-day packages is evidence of a pending
	// higher-value lookup
	packageVolumeThreshold = 3
)

// PriorityArbiter decides whether a lookup should yield its provider call
// to likely higher-value lookups. It is an admission gate, not a queue:
// nothing is reordered, the current call either proceeds or falls back.
type PriorityArbiter struct {
	packageRepo repository.PackageRepository
	clock       clock.Clock
	logger      logger.Logger
}

// NewPriorityArbiter creates a new priority arbiter
func NewPriorityArbiter(packageRepo repository.PackageRepository, clk clock.Clock, logger logger.Logger) *PriorityArbiter {
	return &PriorityArbiter{
		packageRepo: packageRepo,
		clock:       clk,
		logger:      logger,
	}
}

// ShouldDefer reports whether the current lookup should yield. When the
// package-volume evidence cannot be obtained it fails open: attempting the
// real call beats silently starving it.
func (a *PriorityArbiter) ShouldDefer(ctx context.Context, priority int) bool {
	if priority >= priorityBypassThreshold {
		return false
	}

	volumes, err := a.packageRepo.VolumeByFlightSince(ctx, a.clock.Today())
	if err != nil {
		a.logger.Warn("Package volume query failed, not deferring", "error", err)
		return false
	}

	for _, v := range volumes {
		if v.PackageCount >= packageVolumeThreshold {
			a.logger.Info("Deferring low-priority lookup",
				"priority", priority,
				"busyFlight", v.FlightIata,
				"packageCount", v.PackageCount)
			return true
		}
	}

	return false
}
