package domain

import (
	"fmt"
	"strings"
	"time"
)

// DewormingDelayMonths is how long after birth newborns are due for deworming.
const DewormingDelayMonths = 2

// CalvingMeta describes birth complications for the dam.
type CalvingMeta struct {
	Problem CalvingProblem
	Notes   string
}

// OffspringInput is one newborn as entered on the birth form.
type OffspringInput struct {
	Sex           Sex
	BirthWeightKg float64
	Condition     string
	Vigor         Vigor
	Notes         string
}

// OffspringRecord is a newborn attached to exactly one pregnancy.
type OffspringRecord struct {
	ID            string
	PregnancyID   string
	Seq           int
	TagID         string
	Sex           Sex
	BirthWeightKg float64
	Condition     string
	Vigor         Vigor
	Notes         string
	CreatedAt     time.Time
}

// BirthInput is the submitted birth form. RecordID identifies the birth
// transaction and seeds the offspring tags.
type BirthInput struct {
	RecordID  string
	BirthDate time.Time
	Offspring []OffspringInput
	Calving   CalvingMeta
}

// DewormingReminder is emitted once per newborn and never stored.
type DewormingReminder struct {
	OffspringTag string
	DueDate      time.Time
}

// BirthOutcome summarises a recorded birth.
type BirthOutcome struct {
	Offspring  []OffspringRecord
	Deworming  []DewormingReminder
	Monitoring []OffspringRecord
}

// RecordBirth closes the pregnancy. All input is validated before anything
// is mutated, so a rejected call leaves the record untouched.
func (p *PregnancyRecord) RecordBirth(in BirthInput, now time.Time) (*BirthOutcome, error) {
	if !p.IsOpen() {
		return nil, fmt.Errorf("pregnancy %s: %w", p.ID, ErrAlreadyBorn)
	}
	if err := p.validateBirth(&in, now); err != nil {
		return nil, err
	}

	birthDate := DateOnly(in.BirthDate)
	problem := in.Calving.Problem
	if problem == "" {
		problem = CalvingNone
	}

	outcome := &BirthOutcome{}
	offspring := make([]OffspringRecord, 0, len(in.Offspring))
	for i, o := range in.Offspring {
		seq := i + 1
		rec := OffspringRecord{
			ID:            fmt.Sprintf("%s-%d", in.RecordID, seq),
			PregnancyID:   p.ID,
			Seq:           seq,
			TagID:         OffspringTag(p.Species, in.RecordID, seq),
			Sex:           o.Sex,
			BirthWeightKg: o.BirthWeightKg,
			Condition:     strings.TrimSpace(o.Condition),
			Vigor:         o.Vigor,
			Notes:         strings.TrimSpace(o.Notes),
			CreatedAt:     now,
		}
		offspring = append(offspring, rec)
		outcome.Deworming = append(outcome.Deworming, DewormingReminder{
			OffspringTag: rec.TagID,
			DueDate:      DewormingDue(birthDate),
		})
		if rec.Vigor.NeedsMonitoring() {
			outcome.Monitoring = append(outcome.Monitoring, rec)
		}
	}

	p.BirthStatus = BirthGivenBirth
	p.BirthDate = &birthDate
	p.BirthRecordID = in.RecordID
	p.Calving = CalvingMeta{Problem: problem, Notes: strings.TrimSpace(in.Calving.Notes)}
	p.Offspring = offspring
	p.UpdatedAt = now

	outcome.Offspring = offspring
	return outcome, nil
}

func (p *PregnancyRecord) validateBirth(in *BirthInput, now time.Time) error {
	if strings.TrimSpace(in.RecordID) == "" {
		return missingField("record_id", "birth record ID is required")
	}
	if in.BirthDate.IsZero() {
		return missingField("birth_date", "birth date is required")
	}
	date := DateOnly(in.BirthDate)
	if date.Before(p.ConceptionDate) {
		return dateOrder("birth_date", "birth date precedes conception")
	}
	if date.After(DateOnly(now)) {
		return dateOrder("birth_date", "birth date is after today")
	}
	if in.Calving.Problem != "" && !ValidCalvingProblems[in.Calving.Problem] {
		return missingField("calving_problem", fmt.Sprintf("unknown calving problem %q", in.Calving.Problem))
	}
	if len(in.Offspring) == 0 {
		return missingField("offspring", "at least one offspring is required")
	}
	for i, o := range in.Offspring {
		field := fmt.Sprintf("offspring[%d]", i+1)
		if o.Sex != SexMale && o.Sex != SexFemale {
			return missingField(field+".sex", "sex must be male or female")
		}
		if !PositiveFinite(o.BirthWeightKg) {
			return missingField(field+".weight", "birth weight must be a positive number of kilograms")
		}
		if !ValidVigors[o.Vigor] {
			return missingField(field+".vigor", fmt.Sprintf("unknown vigor %q", o.Vigor))
		}
	}
	return nil
}

// OffspringTag builds the external tag for the seq-th newborn of a birth
// record. Tags within one record differ by seq.
func OffspringTag(species Species, recordID string, seq int) string {
	short := strings.ToUpper(strings.ReplaceAll(recordID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s-%02d", species.OffspringPrefix(), short, seq)
}

// DewormingDue returns the deworming date for an animal born on birthDate.
func DewormingDue(birthDate time.Time) time.Time {
	return DateOnly(birthDate).AddDate(0, DewormingDelayMonths, 0)
}
