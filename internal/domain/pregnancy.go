package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// MinBCS and MaxBCS bound the five-point body condition scale.
	MinBCS = 1.0
	MaxBCS = 5.0

	// DefaultCheckupIntervalDays is how long after conception the first
	// pregnancy checkup falls due when no checkup has been recorded yet.
	DefaultCheckupIntervalDays = 30
)

// ValidBCS reports whether v lies on the body condition scale. NaN is not.
func ValidBCS(v float64) bool {
	return v >= MinBCS && v <= MaxBCS
}

// PositiveFinite reports whether v is a usable measurement such as a
// weight: greater than zero and neither NaN nor infinite.
func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// PregnancyRecord is opened when a breeding is confirmed. It owns its checkup,
// BCS and offspring ledgers. Elapsed days, progress and stage are derived
// from "now" by the lifecycle package and never stored here.
type PregnancyRecord struct {
	ID             string
	BreedingID     string
	DamID          string
	Species        Species
	ConceptionDate time.Time
	HealthStatus   HealthStatus
	BirthStatus    BirthStatus
	LastCheckupAt  *time.Time

	Checkups   []CheckupRecord
	BCSEntries []BCSEntry

	// Set by RecordBirth.
	BirthDate     *time.Time
	BirthRecordID string
	Calving       CalvingMeta
	Offspring     []OffspringRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckupRecord is one veterinary or husbandry check during pregnancy.
type CheckupRecord struct {
	ID              string
	PregnancyID     string
	Seq             int
	Date            time.Time
	BCS             float64
	WeightKg        float64
	Findings        string
	HealthStatus    HealthStatus
	NextCheckupDate *time.Time
	CreatedAt       time.Time
}

// BCSEntry is one body condition score reading.
type BCSEntry struct {
	ID          string
	PregnancyID string
	Seq         int
	Date        time.Time
	MonthLabel  string
	Score       float64
	Notes       string
	CreatedAt   time.Time
}

// NewPregnancy opens a pregnancy for a confirmed breeding. Conception is
// taken to be the breeding date.
func NewPregnancy(id string, b *BreedingEvent, now time.Time) (*PregnancyRecord, error) {
	if b.Status != BreedingConfirmed {
		return nil, fmt.Errorf("breeding %s is %s: %w", b.ID, b.Status, ErrInvalidTransition)
	}
	if _, err := GestationDays(b.Species); err != nil {
		return nil, err
	}
	return &PregnancyRecord{
		ID:             id,
		BreedingID:     b.ID,
		DamID:          b.DamID,
		Species:        b.Species,
		ConceptionDate: DateOnly(b.BreedingDate),
		HealthStatus:   HealthGood,
		BirthStatus:    BirthPregnant,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsOpen reports whether the dam is still carrying.
func (p *PregnancyRecord) IsOpen() bool {
	return p.BirthStatus == BirthPregnant
}

// LastCheckup returns the most recent checkup, or nil when none exist.
func (p *PregnancyRecord) LastCheckup() *CheckupRecord {
	if len(p.Checkups) == 0 {
		return nil
	}
	return &p.Checkups[len(p.Checkups)-1]
}

// NextCheckupDue returns the date the next checkup falls due. Once a checkup
// exists its own next-checkup date wins; otherwise the interval is counted
// from the latest checkup or from conception.
func (p *PregnancyRecord) NextCheckupDue(intervalDays int) time.Time {
	if intervalDays <= 0 {
		intervalDays = DefaultCheckupIntervalDays
	}
	last := p.LastCheckup()
	if last == nil {
		return p.ConceptionDate.AddDate(0, 0, intervalDays)
	}
	if last.NextCheckupDate != nil {
		return *last.NextCheckupDate
	}
	return last.Date.AddDate(0, 0, intervalDays)
}

// AppendCheckup validates c, appends it to the ledger and updates the
// pregnancy's last-checkup time and health status via policy.
func (p *PregnancyRecord) AppendCheckup(c CheckupRecord, now time.Time, policy HealthPolicy) (*CheckupRecord, error) {
	if !p.IsOpen() {
		return nil, fmt.Errorf("pregnancy %s: %w", p.ID, ErrAlreadyBorn)
	}
	if err := p.validateCheckup(&c, now); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = LastWriteWins
	}

	c.PregnancyID = p.ID
	c.Seq = len(p.Checkups) + 1
	c.Date = DateOnly(c.Date)
	c.Findings = strings.TrimSpace(c.Findings)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}

	history := p.Checkups
	p.HealthStatus = policy(p.HealthStatus, history, c)
	p.Checkups = append(p.Checkups, c)
	p.LastCheckupAt = &now
	p.UpdatedAt = now
	return &p.Checkups[len(p.Checkups)-1], nil
}

func (p *PregnancyRecord) validateCheckup(c *CheckupRecord, now time.Time) error {
	if c.Date.IsZero() {
		return missingField("date", "checkup date is required")
	}
	if c.BCS == 0 {
		return missingField("bcs", "body condition score is required")
	}
	if !ValidBCS(c.BCS) {
		return missingField("bcs", fmt.Sprintf("body condition score %.1f outside %.0f-%.0f", c.BCS, MinBCS, MaxBCS))
	}
	if !PositiveFinite(c.WeightKg) {
		return missingField("weight", "weight must be a positive number of kilograms")
	}
	if !ValidHealthStatuses[c.HealthStatus] {
		return missingField("health_status", fmt.Sprintf("unknown health status %q", c.HealthStatus))
	}

	date := DateOnly(c.Date)
	if date.Before(p.ConceptionDate) {
		return dateOrder("date", "checkup date precedes conception")
	}
	if date.After(DateOnly(now)) {
		return dateOrder("date", "checkup date is after today")
	}
	if last := p.LastCheckup(); last != nil && date.Before(last.Date) {
		return dateOrder("date", fmt.Sprintf("checkup date precedes last checkup on %s", last.Date.Format(DateLayout)))
	}
	if c.NextCheckupDate != nil && !c.NextCheckupDate.After(date) {
		return dateOrder("next_checkup_date", "next checkup must fall after the checkup date")
	}
	return nil
}

// AppendBCS validates e and appends it to the BCS ledger, labelling it with
// the calendar month of gestation at the entry date.
func (p *PregnancyRecord) AppendBCS(e BCSEntry, now time.Time) (*BCSEntry, error) {
	if !p.IsOpen() {
		return nil, fmt.Errorf("pregnancy %s: %w", p.ID, ErrAlreadyBorn)
	}
	if e.Score == 0 {
		return nil, missingField("score", "body condition score is required")
	}
	if !ValidBCS(e.Score) {
		return nil, missingField("score", fmt.Sprintf("body condition score %.1f outside %.0f-%.0f", e.Score, MinBCS, MaxBCS))
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Date = DateOnly(e.Date)
	if e.Date.Before(p.ConceptionDate) {
		return nil, dateOrder("date", "BCS date precedes conception")
	}
	if e.Date.After(DateOnly(now)) {
		return nil, dateOrder("date", "BCS date is after today")
	}

	e.PregnancyID = p.ID
	e.Seq = len(p.BCSEntries) + 1
	e.MonthLabel = fmt.Sprintf("Month %d", GestationMonth(p.ConceptionDate, e.Date))
	e.Notes = strings.TrimSpace(e.Notes)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}

	p.BCSEntries = append(p.BCSEntries, e)
	p.UpdatedAt = now
	return &p.BCSEntries[len(p.BCSEntries)-1], nil
}

// GestationMonth returns the 1-based calendar month of gestation on date.
// The conception day up to the day before its monthly anniversary is Month 1.
func GestationMonth(conception, date time.Time) int {
	cy, cm, cd := conception.Date()
	y, m, d := date.Date()
	months := (y-cy)*12 + int(m-cm)
	if d < cd {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months + 1
}
