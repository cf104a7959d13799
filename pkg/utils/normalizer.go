package utils

import (
	"encoding/json"
	"time"

	"flighttrack-service/internal/domain/entity"
)

// FlightNormalizer flattens nested provider flight records into the stable
// schema the rest of the platform consumes. It is a pure mapping: no I/O,
// and absent nesting means all-null fields, never a panic or an error.
type FlightNormalizer struct{}

// NewFlightNormalizer creates a new normalizer
func NewFlightNormalizer() *FlightNormalizer {
	return &FlightNormalizer{}
}

// Normalize maps one provider record to a FlightStatus with
// isFallback=false. Every field the record does not carry stays nil.
func (n *FlightNormalizer) Normalize(record *entity.ProviderFlight) *entity.FlightStatus {
	status := &entity.FlightStatus{
		IsFallback:     false,
		FallbackReason: nil,
	}
	if record == nil {
		return status
	}

	status.FlightDate = strPtr(record.FlightDate)
	status.Status = strPtr(record.FlightStatus)

	if f := record.Flight; f != nil {
		status.FlightIata = f.Iata
		status.FlightIcao = strPtr(f.Icao)
		status.FlightNumber = strPtr(f.Number)
	}

	if a := record.Airline; a != nil {
		status.AirlineName = strPtr(a.Name)
		status.AirlineIata = strPtr(a.Iata)
		status.AirlineIcao = strPtr(a.Icao)
	}

	if d := record.Departure; d != nil {
		status.DepartureAirport = strPtr(d.Airport)
		status.DepartureIata = strPtr(d.Iata)
		status.DepartureIcao = strPtr(d.Icao)
		status.DepartureTerminal = strPtr(d.Terminal)
		status.DepartureGate = strPtr(d.Gate)
		status.DepartureCity = strPtr(d.City)
		status.ScheduledDeparture = timePtr(d.Scheduled)
		status.ActualDeparture = timePtr(d.Actual)
	}

	if a := record.Arrival; a != nil {
		status.ArrivalAirport = strPtr(a.Airport)
		status.ArrivalIata = strPtr(a.Iata)
		status.ArrivalIcao = strPtr(a.Icao)
		status.ArrivalTerminal = strPtr(a.Terminal)
		status.ArrivalGate = strPtr(a.Gate)
		status.ArrivalCity = strPtr(a.City)
		status.ScheduledArrival = timePtr(a.Scheduled)
		status.ActualArrival = timePtr(a.Actual)
	}

	if ac := record.Aircraft; ac != nil {
		status.AircraftRegistration = strPtr(ac.Registration)
		status.AircraftIata = strPtr(ac.Iata)
		status.AircraftIcao = strPtr(ac.Icao)
	}

	status.Raw = rawCopy(record)

	return status
}

// strPtr maps empty provider strings to nil so absent fields serialize as
// JSON null
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// timePtr parses the provider's timestamp formats; nil when the field is
// absent or unparsable
func timePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// rawCopy keeps a trimmed copy of the original record for downstream
// debugging. The live tracking object is dropped: it is bulky and never
// consumed by the UI.
func rawCopy(record *entity.ProviderFlight) map[string]interface{} {
	trimmed := *record
	trimmed.Live = nil

	data, err := json.Marshal(&trimmed)
	if err != nil {
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	delete(raw, "live")
	return raw
}
