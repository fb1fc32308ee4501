package app

import "time"

// Clock reports "now" to the use cases. A pinned clock always returns the
// same instant, which is how the front end honours a --now override.
type Clock struct {
	pinned *time.Time
}

// Now returns the pinned instant, or the current local time. The location
// is kept: the calendar day of the result is the user's "today".
func (c *Clock) Now() time.Time {
	if c != nil && c.pinned != nil {
		return *c.pinned
	}
	return time.Now()
}

// Pin fixes the clock at t, keeping t's offset.
func (c *Clock) Pin(t time.Time) {
	c.pinned = &t
}

// Pinned reports whether Pin has been called.
func (c *Clock) Pinned() bool {
	return c != nil && c.pinned != nil
}
