package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_PinKeepsOffset(t *testing.T) {
	var c Clock
	assert.False(t, c.Pinned())

	at := time.Date(2025, 12, 8, 7, 0, 0, 0, time.FixedZone("+11", 11*60*60))
	c.Pin(at)
	assert.True(t, c.Pinned())
	assert.Equal(t, at, c.Now())
	assert.Equal(t, 8, c.Now().Day())
}

func TestClock_UnpinnedUsesLocalTime(t *testing.T) {
	var c Clock
	assert.Equal(t, time.Local, c.Now().Location())

	var nilClock *Clock
	assert.WithinDuration(t, time.Now(), nilClock.Now(), time.Minute)
}
