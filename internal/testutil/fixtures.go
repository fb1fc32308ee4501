package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/google/uuid"
)

var testDamCounter atomic.Int64

// Date parses a YYYY-MM-DD literal and panics on malformed input.
func Date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NextDamID returns a dam tag unique within the test binary.
func NextDamID() string {
	return fmt.Sprintf("DAM-%03d", testDamCounter.Add(1))
}

// Breeding options
type BreedingOption func(*domain.BreedingEvent)

func WithDam(id string) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.DamID = id
	}
}

func WithSire(id string) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.SireID = id
	}
}

func WithSpecies(s domain.Species) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.Species = s
	}
}

func WithMethod(m domain.BreedingMethod) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.Method = m
	}
}

func WithBreedingStatus(s domain.BreedingStatus) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.Status = s
	}
}

func WithBreedingNotes(n string) BreedingOption {
	return func(b *domain.BreedingEvent) {
		b.Notes = n
	}
}

// NewTestBreeding builds an unconfirmed natural goat breeding on date for a
// fresh dam.
func NewTestBreeding(date time.Time, opts ...BreedingOption) *domain.BreedingEvent {
	now := time.Now().UTC().Truncate(time.Second)
	b := &domain.BreedingEvent{
		ID:           uuid.New().String(),
		DamID:        NextDamID(),
		SireID:       "BUCK-01",
		Species:      domain.SpeciesGoat,
		BreedingDate: domain.DateOnly(date),
		Method:       domain.MethodNatural,
		Status:       domain.BreedingUnconfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Pregnancy options
type PregnancyOption func(*domain.PregnancyRecord)

func WithPregnancyDam(id string) PregnancyOption {
	return func(p *domain.PregnancyRecord) {
		p.DamID = id
	}
}

func WithPregnancySpecies(s domain.Species) PregnancyOption {
	return func(p *domain.PregnancyRecord) {
		p.Species = s
	}
}

func WithBreedingID(id string) PregnancyOption {
	return func(p *domain.PregnancyRecord) {
		p.BreedingID = id
	}
}

func WithHealth(h domain.HealthStatus) PregnancyOption {
	return func(p *domain.PregnancyRecord) {
		p.HealthStatus = h
	}
}

// NewTestPregnancy builds an open goat pregnancy conceived on conception.
// It has no breeding link unless WithBreedingID is given.
func NewTestPregnancy(conception time.Time, opts ...PregnancyOption) *domain.PregnancyRecord {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.PregnancyRecord{
		ID:             uuid.New().String(),
		DamID:          NextDamID(),
		Species:        domain.SpeciesGoat,
		ConceptionDate: domain.DateOnly(conception),
		HealthStatus:   domain.HealthGood,
		BirthStatus:    domain.BirthPregnant,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestCheckup builds a healthy checkup on date. The ID is fresh; the
// pregnancy fills in sequence and owner when it is appended.
func NewTestCheckup(date time.Time, bcs, weightKg float64) domain.CheckupRecord {
	return domain.CheckupRecord{
		ID:           uuid.New().String(),
		Date:         date,
		BCS:          bcs,
		WeightKg:     weightKg,
		HealthStatus: domain.HealthGood,
	}
}

// NewTestOffspring builds a healthy newborn entry for a birth form.
func NewTestOffspring(sex domain.Sex, weightKg float64, vigor domain.Vigor) domain.OffspringInput {
	return domain.OffspringInput{
		Sex:           sex,
		BirthWeightKg: weightKg,
		Condition:     "normal",
		Vigor:         vigor,
	}
}
