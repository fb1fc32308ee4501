package lifecycle

import (
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// Stage band lower bounds, in percent of gestation. Each bound belongs to the
// band it opens: 33.0 is mid, 66.0 is late, 100.0 is overdue.
const (
	MidStagePct     = 33.0
	LateStagePct    = 66.0
	OverdueStagePct = 100.0
)

// BreedingCheckDays is the wait between breeding and the confirmation check.
const BreedingCheckDays = 90

// ClassifyStage maps a progress percentage onto a pregnancy stage.
func ClassifyStage(progress float64) domain.Stage {
	switch {
	case progress >= OverdueStagePct:
		return domain.StageOverdue
	case progress >= LateStagePct:
		return domain.StageLate
	case progress >= MidStagePct:
		return domain.StageMid
	default:
		return domain.StageEarly
	}
}

// BreedingCheck is the state of the 90-day confirmation check for a breeding.
type BreedingCheck struct {
	CheckDate time.Time
	DaysUntil int
	Status    domain.BreedingCheckStatus
}

// ClassifyBreedingCheck classifies the confirmation check for a breeding on
// breedingDate using the default due-soon window.
func ClassifyBreedingCheck(breedingDate, now time.Time) BreedingCheck {
	checkDate := BreedingCheckDate(breedingDate)
	alert := DeriveAlert(domain.ReminderBreedingCheck, checkDate, now, DefaultDueSoonDays)

	status := domain.CheckNotYetDue
	switch alert.Level {
	case domain.AlertOverdue:
		status = domain.CheckOverdue
	case domain.AlertDueSoon:
		status = domain.CheckDueSoon
	}
	return BreedingCheck{CheckDate: checkDate, DaysUntil: alert.OffsetDays, Status: status}
}

// BreedingCheckDate returns the date the confirmation check falls due.
func BreedingCheckDate(breedingDate time.Time) time.Time {
	return domain.DateOnly(breedingDate).AddDate(0, 0, BreedingCheckDays)
}
