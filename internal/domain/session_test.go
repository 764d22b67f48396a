package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayUTCCrossesMidnightInLocalTime(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)

	// 01:30 KST is still the previous day in UTC
	at := time.Date(2025, 6, 2, 1, 30, 0, 0, kst)
	assert.Equal(t, "2025-06-01", DayUTC(at))

	assert.Equal(t, "2025-06-02", DayUTC(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)))
}

func TestSessionClosed(t *testing.T) {
	s := &Session{ID: "s1"}
	assert.False(t, s.Closed())

	end := int64(1717243200000)
	s.EndEpochMs = &end
	assert.True(t, s.Closed())
}

func TestWatchedAppIsNone(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.False(t, YouTube.IsNone())
	assert.False(t, WatchedApp{Pkg: "x"}.IsNone())
}
