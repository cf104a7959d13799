package entity

import (
	"time"
)

// Flight status values as reported by the provider and by the synthesizer
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusLanded    = "landed"
)

// FallbackReason explains why a synthetic status was served
type FallbackReason string

const (
	ReasonDateBased      FallbackReason = "date-based"
	ReasonQuotaExhausted FallbackReason = "quota-exhausted"
	ReasonDeferred       FallbackReason = "deferred-for-priority"
	ReasonAPIError       FallbackReason = "api-error"
	ReasonNoData         FallbackReason = "no-data"
	ReasonNoProvider     FallbackReason = "no-provider"
)

// FlightStatus is the flat schema consumed by the rest of the platform.
// Every field the provider did not supply is an explicit JSON null, never
// an omitted key, so callers never have to probe for key presence.
type FlightStatus struct {
	FlightIata   string  `json:"flightIata"`
	FlightIcao   *string `json:"flightIcao"`
	FlightNumber *string `json:"flightNumber"`
	FlightDate   *string `json:"flightDate"`
	Status       *string `json:"status"`

	AirlineName *string `json:"airlineName"`
	AirlineIata *string `json:"airlineIata"`
	AirlineIcao *string `json:"airlineIcao"`

	DepartureAirport   *string    `json:"departureAirport"`
	DepartureIata      *string    `json:"departureIata"`
	DepartureIcao      *string    `json:"departureIcao"`
	DepartureTerminal  *string    `json:"departureTerminal"`
	DepartureGate      *string    `json:"departureGate"`
	DepartureCity      *string    `json:"departureCity"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture"`
	ActualDeparture    *time.Time `json:"actualDeparture"`

	ArrivalAirport   *string    `json:"arrivalAirport"`
	ArrivalIata      *string    `json:"arrivalIata"`
	ArrivalIcao      *string    `json:"arrivalIcao"`
	ArrivalTerminal  *string    `json:"arrivalTerminal"`
	ArrivalGate      *string    `json:"arrivalGate"`
	ArrivalCity      *string    `json:"arrivalCity"`
	ScheduledArrival *time.Time `json:"scheduledArrival"`
	ActualArrival    *time.Time `json:"actualArrival"`

	AircraftRegistration *string `json:"aircraftRegistration"`
	AircraftIata         *string `json:"aircraftIata"`
	AircraftIcao         *string `json:"aircraftIcao"`

	// Raw keeps a trimmed copy of the original provider record for
	// downstream debugging. Nil for synthetic statuses.
	Raw map[string]interface{} `json:"raw"`

	IsFallback     bool            `json:"_fallback"`
	FallbackReason *FallbackReason `json:"_reason"`
}
