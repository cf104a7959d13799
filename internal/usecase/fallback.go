package usecase

import (
	"strconv"
	"strings"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"
)

const (
	// Synthetic flights are assumed to take two hours gate to gate
	fallbackFlightDuration = 2 * time.Hour

	fallbackAirportCode = "N/A"
	fallbackAirlineName = "Unknown Airline"
)

var fallbackMinutes = [4]int{0, 15, 30, 45}

// FallbackSynthesizer derives a plausible flight status without touching
// the provider. The schedule is a pure function of the flight code's
// digits, so repeated lookups for the same flight stay consistent with
// each other.
type FallbackSynthesizer struct {
	clock  clock.Clock
	logger logger.Logger
}

// NewFallbackSynthesizer creates a new synthesizer
func NewFallbackSynthesizer(clk clock.Clock, logger logger.Logger) *FallbackSynthesizer {
	return &FallbackSynthesizer{
		clock:  clk,
		logger: logger,
	}
}

// Synthesize builds a synthetic status for the flight on the given civil
// date, tagged with the reason the pipeline could not serve real data
func (s *FallbackSynthesizer) Synthesize(flightIata string, scheduledDate time.Time, reason entity.FallbackReason) *entity.FlightStatus {
	digits := numericDigits(flightIata)
	hour := 6 + digits%12
	minute := fallbackMinutes[digits%4]

	day := civilDay(scheduledDate)
	scheduledDep := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	scheduledArr := scheduledDep.Add(fallbackFlightDuration)

	today := s.clock.Today()
	now := s.clock.Now()

	flightStatus := entity.StatusScheduled
	var actualDep, actualArr *time.Time

	switch {
	case day.Before(today):
		// Past flights are assumed to have flown on time
		flightStatus = entity.StatusLanded
		actualDep = &scheduledDep
		actualArr = &scheduledArr
	case day.Equal(today):
		// A flight arriving exactly now counts as landed, so an on-the-dot
		// lookup never reports a flight still "scheduled" in the past
		if !now.Before(scheduledArr) {
			flightStatus = entity.StatusLanded
			actualDep = &scheduledDep
			actualArr = &scheduledArr
		} else if !now.Before(scheduledDep) {
			flightStatus = entity.StatusActive
			actualDep = &scheduledDep
		}
	}

	s.logger.Debug("Synthesized flight status",
		"flightIata", flightIata,
		"status", flightStatus,
		"reason", reason,
		"scheduledDeparture", scheduledDep)

	flightDate := day.Format(entity.QueryDateLayout)
	departureCode := fallbackAirportCode
	arrivalCode := fallbackAirportCode
	airlineName := fallbackAirlineName

	return &entity.FlightStatus{
		FlightIata:         flightIata,
		FlightDate:         &flightDate,
		Status:             &flightStatus,
		AirlineName:        &airlineName,
		DepartureIata:      &departureCode,
		ScheduledDeparture: &scheduledDep,
		ActualDeparture:    actualDep,
		ArrivalIata:        &arrivalCode,
		ScheduledArrival:   &scheduledArr,
		ActualArrival:      actualArr,
		IsFallback:         true,
		FallbackReason:     &reason,
	}
}

// numericDigits concatenates the digits of a flight code into one number,
// keeping at most the last nine so the value always fits an int
func numericDigits(flightIata string) int {
	var b strings.Builder
	for _, r := range flightIata {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	s := b.String()
	if len(s) > 9 {
		s = s[len(s)-9:]
	}
	n, _ := strconv.Atoi(s)
	return n
}

// civilDay truncates an instant to midnight of its day in the platform
// timezone
func civilDay(t time.Time) time.Time {
	t = t.In(clock.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, clock.Location())
}
