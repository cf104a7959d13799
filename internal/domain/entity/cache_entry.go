package entity

import (
	"time"
)

// CacheEntry is one cached provider answer. Rows are append-only: a fresh
// answer supersedes older rows for the same flight by being newer, and the
// TTL is enforced on the read path only.
type CacheEntry struct {
	ID         string    `bson:"_id,omitempty"`
	FlightIata string    `bson:"flightIata"`
	Payload    string    `bson:"payload"` // JSON-serialized FlightStatus
	CreatedAt  time.Time `bson:"createdAt"`
}
