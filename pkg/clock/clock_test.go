package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow_ReturnsWIB(t *testing.T) {
	c := New()
	now := c.Now()

	name, offset := now.Zone()
	assert.Equal(t, "WIB", name)
	assert.Equal(t, 7*60*60, offset)
}

func TestToday_IsCivilMidnight(t *testing.T) {
	c := New()
	today := c.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
	assert.Equal(t, 0, today.Nanosecond())

	name, _ := today.Zone()
	assert.Equal(t, "WIB", name)
}

func TestToday_MatchesNowDate(t *testing.T) {
	c := New()
	now := c.Now()
	today := c.Today()

	require.Equal(t, now.Year(), today.Year())
	require.Equal(t, now.Month(), today.Month())
	require.Equal(t, now.Day(), today.Day())
}

func TestNow_IndependentOfHostZone(t *testing.T) {
	c := New()
	utc := time.Now().UTC()
	now := c.Now()

	// Same instant regardless of representation
	assert.WithinDuration(t, utc, now, 2*time.Second)
}
