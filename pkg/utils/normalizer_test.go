package utils

import (
	"encoding/json"
	"testing"
	"time"

	"flighttrack-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() *entity.ProviderFlight {
	return &entity.ProviderFlight{
		FlightDate:   "2025-03-10",
		FlightStatus: "active",
		Flight:       &entity.ProviderFlightNo{Number: "122", Iata: "GA122", Icao: "GIA122"},
		Airline:      &entity.ProviderAirline{Name: "Garuda Indonesia", Iata: "GA", Icao: "GIA"},
		Departure: &entity.ProviderLeg{
			Airport:   "Soekarno-Hatta International",
			City:      "Jakarta",
			Iata:      "CGK",
			Icao:      "WIII",
			Terminal:  "3",
			Gate:      "D5",
			Scheduled: "2025-03-10T08:30:00+07:00",
			Actual:    "2025-03-10T08:41:00+07:00",
		},
		Arrival: &entity.ProviderLeg{
			Airport:   "Ngurah Rai International",
			City:      "Denpasar",
			Iata:      "DPS",
			Icao:      "WADD",
			Scheduled: "2025-03-10T11:20:00+08:00",
		},
		Aircraft: &entity.ProviderAircraft{Registration: "PK-GFN", Iata: "B738", Icao: "B738"},
		Live:     &entity.ProviderLive{Latitude: -6.8, Longitude: 107.1, IsGround: false},
	}
}

func TestNormalize_MapsNestedObjectsFlat(t *testing.T) {
	status := NewFlightNormalizer().Normalize(fullRecord())

	assert.Equal(t, "GA122", status.FlightIata)
	require.NotNil(t, status.AirlineName)
	assert.Equal(t, "Garuda Indonesia", *status.AirlineName)
	require.NotNil(t, status.DepartureTerminal)
	assert.Equal(t, "3", *status.DepartureTerminal)
	require.NotNil(t, status.DepartureGate)
	assert.Equal(t, "D5", *status.DepartureGate)
	require.NotNil(t, status.ArrivalCity)
	assert.Equal(t, "Denpasar", *status.ArrivalCity)
	require.NotNil(t, status.AircraftRegistration)
	assert.Equal(t, "PK-GFN", *status.AircraftRegistration)

	require.NotNil(t, status.ScheduledDeparture)
	assert.Equal(t, 8, status.ScheduledDeparture.Hour())
	require.NotNil(t, status.ActualDeparture)
	require.NotNil(t, status.ScheduledArrival)
	assert.Nil(t, status.ActualArrival)

	assert.False(t, status.IsFallback)
	assert.Nil(t, status.FallbackReason)
}

func TestNormalize_MissingNestedObjectsYieldNulls(t *testing.T) {
	record := &entity.ProviderFlight{FlightStatus: "scheduled"}

	status := NewFlightNormalizer().Normalize(record)

	assert.Nil(t, status.DepartureTerminal)
	assert.Nil(t, status.ArrivalIata)
	assert.Nil(t, status.AirlineName)
	assert.Nil(t, status.AircraftRegistration)
	assert.Nil(t, status.ScheduledDeparture)
	require.NotNil(t, status.Status)
	assert.Equal(t, "scheduled", *status.Status)
}

func TestNormalize_NilRecordIsSafe(t *testing.T) {
	status := NewFlightNormalizer().Normalize(nil)

	assert.False(t, status.IsFallback)
	assert.Nil(t, status.Status)
	assert.Nil(t, status.Raw)
}

func TestNormalize_MissingFieldsSerializeAsNullKeys(t *testing.T) {
	record := fullRecord()
	record.Departure.Terminal = ""

	status := NewFlightNormalizer().Normalize(record)

	data, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The key must exist and carry an explicit null
	value, present := decoded["departureTerminal"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestNormalize_RawExcludesLiveTracking(t *testing.T) {
	status := NewFlightNormalizer().Normalize(fullRecord())

	require.NotNil(t, status.Raw)
	assert.Contains(t, status.Raw, "flight")
	assert.Contains(t, status.Raw, "departure")

	assert.NotContains(t, status.Raw, "live")
}

func TestTimePtr_Formats(t *testing.T) {
	rfc := timePtr("2025-03-10T08:30:00+07:00")
	require.NotNil(t, rfc)
	assert.Equal(t, 8, rfc.Hour())

	bare := timePtr("2025-03-10T08:30:00")
	require.NotNil(t, bare)
	assert.Equal(t, time.March, bare.Month())

	assert.Nil(t, timePtr(""))
	assert.Nil(t, timePtr("not-a-timestamp"))
}
