package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"

	"github.com/google/uuid"
)

// FlightStatusGetter answers flight status lookups. It is total: every
// well-formed query resolves to a status, real or synthetic.
type FlightStatusGetter interface {
	GetFlightStatus(ctx context.Context, query *entity.FlightQuery) *entity.FlightStatus
}

// FlightStatusHandler exposes the lookup pipeline over HTTP. Fallbacks are
// not errors: the endpoint answers 200 with `_fallback`/`_reason` in the
// body so UI callers never branch on transport status.
type FlightStatusHandler struct {
	service FlightStatusGetter
	clock   clock.Clock
	logger  logger.Logger
}

// NewFlightStatusHandler creates a new flight status handler
func NewFlightStatusHandler(service FlightStatusGetter, clk clock.Clock, logger logger.Logger) *FlightStatusHandler {
	return &FlightStatusHandler{
		service: service,
		clock:   clk,
		logger:  logger,
	}
}

type flightStatusRequest struct {
	FlightIata    string `json:"flightIata"`
	ScheduledDate string `json:"scheduledDate"`
	Priority      int    `json:"priority"`
}

// Lookup handles POST /api/v1/flights/status
func (h *FlightStatusHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	requestID := uuid.NewString()
	log := h.logger.With("requestId", requestID)
	w.Header().Set("X-Request-Id", requestID)

	var req flightStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Rejecting unparsable request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flightIata := strings.ToUpper(strings.TrimSpace(req.FlightIata))
	if flightIata == "" {
		log.Warn("Rejecting request without flight code")
		writeError(w, http.StatusBadRequest, "flightIata is required")
		return
	}

	scheduledDate := h.clock.Today()
	if req.ScheduledDate != "" {
		parsed, err := time.ParseInLocation(entity.QueryDateLayout, req.ScheduledDate, clock.Location())
		if err != nil {
			log.Warn("Unparsable scheduledDate, defaulting to today",
				"scheduledDate", req.ScheduledDate)
		} else {
			scheduledDate = parsed
		}
	}

	priority := req.Priority
	if priority < 1 {
		priority = 1
	}

	query := &entity.FlightQuery{
		FlightIata:    flightIata,
		ScheduledDate: scheduledDate,
		Priority:      priority,
	}

	status := h.service.GetFlightStatus(r.Context(), query)

	log.Info("Answered flight status lookup",
		"flightIata", flightIata,
		"fallback", status.IsFallback)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
