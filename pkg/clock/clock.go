package clock

import "time"

// The whole pipeline runs on a single civil timezone so that date-equality
// checks and the daily quota bucket agree with each other no matter where
// the server happens to run. The platform operates out of Jakarta.
var wib = time.FixedZone("WIB", 7*60*60)

// Clock provides wall-clock time in the platform's civil timezone
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// WIBClock implements Clock against the system clock
type WIBClock struct{}

// New creates the production clock
func New() Clock {
	return &WIBClock{}
}

// Location returns the fixed civil timezone
func Location() *time.Location {
	return wib
}

// Now returns the current instant in WIB
func (c *WIBClock) Now() time.Time {
	return time.Now().In(wib)
}

// Today returns civil midnight of the current WIB day
func (c *WIBClock) Today() time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, wib)
}
