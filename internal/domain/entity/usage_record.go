package entity

import (
	"time"
)

// QueryDateLayout is the civil-date bucket key for the daily quota
const QueryDateLayout = "2006-01-02"

// UsageRecord is one provider call in the append-only usage ledger.
// Only the per-queryDate count is ever read back.
type UsageRecord struct {
	ID             string    `bson:"_id,omitempty"`
	FlightIata     string    `bson:"flightIata"`
	QueryDate      string    `bson:"queryDate"`
	QueryTimestamp time.Time `bson:"queryTimestamp"`
}
