package domain

import (
	"fmt"
	"strings"
	"time"
)

// BreedingEvent records one mating or insemination of a dam. Only Status and
// DecidedAt change after creation.
type BreedingEvent struct {
	ID           string
	DamID        string
	SireID       string
	Species      Species
	BreedingDate time.Time
	Method       BreedingMethod
	Status       BreedingStatus
	Notes        string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields a newly logged breeding must carry.
func (b *BreedingEvent) Validate(now time.Time) error {
	if strings.TrimSpace(b.DamID) == "" {
		return missingField("dam_id", "dam is required")
	}
	if strings.TrimSpace(b.SireID) == "" {
		return missingField("sire_id", "sire is required")
	}
	if _, err := GestationDays(b.Species); err != nil {
		return err
	}
	if b.BreedingDate.IsZero() {
		return missingField("breeding_date", "breeding date is required")
	}
	if DateOnly(b.BreedingDate).After(DateOnly(now)) {
		return dateOrder("breeding_date", fmt.Sprintf("breeding date %s is after today", b.BreedingDate.Format(DateLayout)))
	}
	if !ValidBreedingMethods[b.Method] {
		return missingField("method", fmt.Sprintf("unknown breeding method %q", b.Method))
	}
	return nil
}

// IsTerminal reports whether the breeding has been confirmed or found open.
func (b *BreedingEvent) IsTerminal() bool {
	return b.Status == BreedingConfirmed || b.Status == BreedingOpen
}

// Confirm marks the breeding as a confirmed pregnancy.
func (b *BreedingEvent) Confirm(now time.Time) error {
	return b.decide(BreedingConfirmed, now)
}

// Reject marks the breeding as open (the dam did not conceive).
func (b *BreedingEvent) Reject(now time.Time) error {
	return b.decide(BreedingOpen, now)
}

func (b *BreedingEvent) decide(to BreedingStatus, now time.Time) error {
	if b.Status != BreedingUnconfirmed {
		return fmt.Errorf("breeding %s is %s, cannot become %s: %w", b.ID, b.Status, to, ErrInvalidTransition)
	}
	b.Status = to
	b.DecidedAt = &now
	b.UpdatedAt = now
	return nil
}
