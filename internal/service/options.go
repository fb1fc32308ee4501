package service

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

// Options configures the lifecycle services. Zero values fall back to
// defaults.
type Options struct {
	// Now supplies "today" as an instant in the user's location. Defaults to
	// the local wall clock.
	Now func() time.Time
	// Lifecycle holds the reminder window and default checkup interval.
	Lifecycle lifecycle.Options
	// Policy derives a pregnancy's health status from its checkups.
	Policy domain.HealthPolicy
	// Logger receives derived reminders such as deworming dates.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now() }
	}
	def := lifecycle.DefaultOptions()
	if o.Lifecycle.DueSoonDays <= 0 {
		o.Lifecycle.DueSoonDays = def.DueSoonDays
	}
	if o.Lifecycle.CheckupIntervalDays <= 0 {
		o.Lifecycle.CheckupIntervalDays = def.CheckupIntervalDays
	}
	if o.Policy == nil {
		o.Policy = domain.LastWriteWins
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
