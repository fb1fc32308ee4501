package lifecycle

import (
	"fmt"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// DefaultDueSoonDays is the look-ahead window for every reminder kind.
const DefaultDueSoonDays = 7

// Alert classifies one dated obligation relative to now.
type Alert struct {
	Kind       domain.ReminderKind
	SubjectID  string
	Subject    string
	DueDate    time.Time
	OffsetDays int
	Level      domain.AlertLevel
}

// DeriveAlert classifies due against now at calendar-day granularity.
// OffsetDays is positive while the obligation lies ahead and negative once it
// has passed. A window <= 0 falls back to DefaultDueSoonDays.
func DeriveAlert(kind domain.ReminderKind, due, now time.Time, window int) Alert {
	if window <= 0 {
		window = DefaultDueSoonDays
	}
	due = domain.DateOnly(due)
	offset := DaysUntil(due, domain.DateOnly(now))

	level := domain.AlertOnTrack
	switch {
	case offset < 0:
		level = domain.AlertOverdue
	case offset <= window:
		level = domain.AlertDueSoon
	}

	return Alert{
		Kind:       kind,
		DueDate:    due,
		OffsetDays: offset,
		Level:      level,
	}
}

// OffsetText renders the offset for people: "due today", "in 6 days",
// "3 days overdue".
func (a Alert) OffsetText() string {
	switch {
	case a.OffsetDays == 0:
		return "due today"
	case a.OffsetDays == 1:
		return "in 1 day"
	case a.OffsetDays > 1:
		return fmt.Sprintf("in %d days", a.OffsetDays)
	case a.OffsetDays == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -a.OffsetDays)
	}
}

func (a Alert) about(id, subject string) Alert {
	a.SubjectID = id
	a.Subject = subject
	return a
}
