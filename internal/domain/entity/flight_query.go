package entity

import (
	"time"
)

// FlightQuery is the input for a single flight status lookup. It is built
// per request and never persisted.
type FlightQuery struct {
	FlightIata    string
	ScheduledDate time.Time
	Priority      int
}
