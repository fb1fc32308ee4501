package lifecycle

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// Options tunes the derived views.
type Options struct {
	DueSoonDays         int
	CheckupIntervalDays int
}

// DefaultOptions returns the built-in reminder settings.
func DefaultOptions() Options {
	return Options{
		DueSoonDays:         DefaultDueSoonDays,
		CheckupIntervalDays: domain.DefaultCheckupIntervalDays,
	}
}

// PregnancyView is the pregnancy as of a given "now". None of its derived
// fields are stored; build a fresh view whenever now moves.
type PregnancyView struct {
	Pregnancy       *domain.PregnancyRecord
	GestationDays   int
	ElapsedDays     int
	DueDate         time.Time
	DaysUntilDue    int
	Progress        float64
	DisplayProgress int
	Stage           domain.Stage
	NextCheckup     *time.Time
	Alerts          []Alert
}

// Snapshot derives the view of p at now. For a closed pregnancy the clock
// stops at the birth date and only deworming reminders remain.
func Snapshot(p *domain.PregnancyRecord, now time.Time, opts Options) (*PregnancyView, error) {
	gestation, err := domain.GestationDays(p.Species)
	if err != nil {
		return nil, err
	}

	end := domain.DateOnly(now)
	if !p.IsOpen() && p.BirthDate != nil {
		end = *p.BirthDate
	}
	elapsed, err := ElapsedDays(p.ConceptionDate, end)
	if err != nil {
		return nil, fmt.Errorf("pregnancy %s: %w", p.ID, err)
	}
	due, err := DueDate(p.ConceptionDate, p.Species)
	if err != nil {
		return nil, err
	}
	progress, err := ProgressPercent(elapsed, p.Species)
	if err != nil {
		return nil, err
	}

	v := &PregnancyView{
		Pregnancy:       p,
		GestationDays:   gestation,
		ElapsedDays:     elapsed,
		DueDate:         due,
		DaysUntilDue:    DaysUntil(due, domain.DateOnly(now)),
		Progress:        progress,
		DisplayProgress: DisplayPercent(progress),
		Stage:           ClassifyStage(progress),
		Alerts:          PregnancyAlerts(p, now, opts),
	}
	if p.IsOpen() {
		next := p.NextCheckupDue(opts.CheckupIntervalDays)
		v.NextCheckup = &next
	}
	return v, nil
}

// PregnancyAlerts lists the reminders a pregnancy currently carries: the
// next checkup and expected birth while open, deworming per newborn once
// closed. Unknown species produce no alerts.
func PregnancyAlerts(p *domain.PregnancyRecord, now time.Time, opts Options) []Alert {
	if !p.IsOpen() {
		alerts := make([]Alert, 0, len(p.Offspring))
		if p.BirthDate == nil {
			return alerts
		}
		due := domain.DewormingDue(*p.BirthDate)
		for _, o := range p.Offspring {
			a := DeriveAlert(domain.ReminderDeworming, due, now, opts.DueSoonDays)
			alerts = append(alerts, a.about(p.ID, o.TagID))
		}
		return alerts
	}

	var alerts []Alert
	checkup := DeriveAlert(domain.ReminderPregnancyCheckup, p.NextCheckupDue(opts.CheckupIntervalDays), now, opts.DueSoonDays)
	alerts = append(alerts, checkup.about(p.ID, p.DamID))
	if due, err := DueDate(p.ConceptionDate, p.Species); err == nil {
		birth := DeriveAlert(domain.ReminderExpectedBirth, due, now, opts.DueSoonDays)
		alerts = append(alerts, birth.about(p.ID, p.DamID))
	}
	return alerts
}

// BreedingAlert returns the confirmation-check reminder for an unconfirmed
// breeding. Decided breedings carry no reminder.
func BreedingAlert(b *domain.BreedingEvent, now time.Time, opts Options) (Alert, bool) {
	if b.Status != domain.BreedingUnconfirmed {
		return Alert{}, false
	}
	a := DeriveAlert(domain.ReminderBreedingCheck, BreedingCheckDate(b.BreedingDate), now, opts.DueSoonDays)
	return a.about(b.ID, b.DamID), true
}

// SortAlerts orders alerts most urgent first: by offset, then kind, then subject.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].OffsetDays != alerts[j].OffsetDays {
			return alerts[i].OffsetDays < alerts[j].OffsetDays
		}
		if alerts[i].Kind != alerts[j].Kind {
			return alerts[i].Kind < alerts[j].Kind
		}
		return alerts[i].Subject < alerts[j].Subject
	})
}
