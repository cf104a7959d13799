package usecase

import (
	"context"
	"strings"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/internal/domain/repository"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"
	"flighttrack-service/pkg/metrics"
	"flighttrack-service/pkg/utils"
)

// FlightStatusService sequences the lookup pipeline: cache, date
// eligibility, quota, priority, provider, normalize, cache write. Every
// branch terminates in a FlightStatus; a caller can never receive an
// error, only real or synthetic data tagged with its provenance.
type FlightStatusService struct {
	cacheRepo   repository.FlightCacheRepository
	usageRepo   repository.UsageLogRepository
	airlineRepo repository.AirlineRepository
	provider    repository.FlightProvider
	arbiter     *PriorityArbiter
	fallback    *FallbackSynthesizer
	normalizer  *utils.FlightNormalizer
	clock       clock.Clock
	logger      logger.Logger
	metrics     *metrics.Metrics
	cacheTTL    time.Duration
	dailyQuota  int64
}

// NewFlightStatusService creates a new flight status service. Metrics may
// be nil in tests.
func NewFlightStatusService(
	cacheRepo repository.FlightCacheRepository,
	usageRepo repository.UsageLogRepository,
	airlineRepo repository.AirlineRepository,
	provider repository.FlightProvider,
	arbiter *PriorityArbiter,
	fallback *FallbackSynthesizer,
	normalizer *utils.FlightNormalizer,
	clk clock.Clock,
	logger logger.Logger,
	m *metrics.Metrics,
	cacheTTL time.Duration,
	dailyQuota int64,
) *FlightStatusService {
	return &FlightStatusService{
		cacheRepo:   cacheRepo,
		usageRepo:   usageRepo,
		airlineRepo: airlineRepo,
		provider:    provider,
		arbiter:     arbiter,
		fallback:    fallback,
		normalizer:  normalizer,
		clock:       clk,
		logger:      logger,
		metrics:     m,
		cacheTTL:    cacheTTL,
		dailyQuota:  dailyQuota,
	}
}

// GetFlightStatus answers one lookup. At most one provider call is made
// per invocation and a call that errors still consumes quota, since the
// external API was hit either way.
func (s *FlightStatusService) GetFlightStatus(ctx context.Context, query *entity.FlightQuery) *entity.FlightStatus {
	start := time.Now()
	log := s.logger.With("flightIata", query.FlightIata, "priority", query.Priority)

	if s.metrics != nil {
		s.metrics.LookupsServed.Inc()
		defer func() {
			s.metrics.LookupDuration.Observe(time.Since(start).Seconds())
		}()
	}

	cached, err := s.cacheRepo.Read(ctx, query.FlightIata, s.cacheTTL)
	if err != nil {
		log.Warn("Cache read failed, continuing without cache", "error", err)
	}
	if cached != nil {
		log.Info("Serving flight status from cache")
		if s.metrics != nil {
			s.metrics.CacheHits.Inc()
		}
		return cached
	}

	today := s.clock.Today()

	// Quota is only worth spending on flights moving today
	if !civilDay(query.ScheduledDate).Equal(today) {
		return s.serveFallback(ctx, query, entity.ReasonDateBased, log)
	}

	used, err := s.usageRepo.CountForDate(ctx, today.Format(entity.QueryDateLayout))
	if err != nil {
		log.Warn("Usage count failed, treating quota as exhausted", "error", err)
		return s.serveFallback(ctx, query, entity.ReasonQuotaExhausted, log)
	}
	if used >= s.dailyQuota {
		log.Info("Daily provider quota exhausted", "used", used, "quota", s.dailyQuota)
		return s.serveFallback(ctx, query, entity.ReasonQuotaExhausted, log)
	}

	if s.arbiter.ShouldDefer(ctx, query.Priority) {
		return s.serveFallback(ctx, query, entity.ReasonDeferred, log)
	}

	if !s.provider.Configured() {
		log.Warn("No provider API key configured")
		return s.serveFallback(ctx, query, entity.ReasonNoProvider, log)
	}

	resp, fetchErr := s.provider.Fetch(ctx, query.FlightIata)

	// The external API was hit regardless of the outcome
	if err := s.usageRepo.Record(ctx, query.FlightIata); err != nil {
		log.Error("Failed to record provider usage", "error", err)
	}
	if s.metrics != nil {
		s.metrics.ProviderCalls.Inc()
	}

	if fetchErr != nil {
		log.Error("Provider call failed", "error", fetchErr)
		return s.serveFallback(ctx, query, entity.ReasonAPIError, log)
	}
	if resp.Error != nil {
		log.Error("Provider signalled an error",
			"code", resp.Error.Code,
			"message", resp.Error.Message)
		return s.serveFallback(ctx, query, entity.ReasonAPIError, log)
	}
	if len(resp.Data) == 0 {
		log.Info("Provider returned no data for flight")
		return s.serveFallback(ctx, query, entity.ReasonNoData, log)
	}

	normalized := s.normalizer.Normalize(&resp.Data[0])
	if normalized.FlightIata == "" {
		normalized.FlightIata = query.FlightIata
	}

	if err := s.cacheRepo.Write(ctx, query.FlightIata, normalized); err != nil {
		log.Warn("Cache write failed", "error", err)
	}

	log.Info("Serving live flight status")
	return normalized
}

// serveFallback synthesizes a status, best-effort enriches the airline
// name from the reference table, and counts the outcome
func (s *FlightStatusService) serveFallback(ctx context.Context, query *entity.FlightQuery, reason entity.FallbackReason, log logger.Logger) *entity.FlightStatus {
	if s.metrics != nil {
		s.metrics.Fallbacks.WithLabelValues(string(reason)).Inc()
	}

	status := s.fallback.Synthesize(query.FlightIata, query.ScheduledDate, reason)
	s.enrichAirline(ctx, status, query.FlightIata)

	log.Info("Serving synthetic flight status", "reason", reason)
	return status
}

// enrichAirline resolves the flight code's IATA prefix against the airline
// reference table. On any failure the placeholder name stands.
func (s *FlightStatusService) enrichAirline(ctx context.Context, status *entity.FlightStatus, flightIata string) {
	if s.airlineRepo == nil || len(flightIata) < 2 {
		return
	}

	code := strings.ToUpper(flightIata[:2])
	airline, err := s.airlineRepo.GetByCode(ctx, code)
	if err != nil || airline == nil {
		return
	}

	status.AirlineName = &airline.Name
	status.AirlineIata = &code
}
