package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/google/uuid"
)

// HerdSnapshot holds the domain objects produced from a herd file, ready for
// persistence.
type HerdSnapshot struct {
	Breedings   []*domain.BreedingEvent
	Pregnancies []*domain.PregnancyRecord
}

// Convert transforms a validated HerdSchema into domain objects. Ledgers are
// rebuilt through the pregnancy's own append operations so imported records
// obey the same rules as recorded ones. Call ValidateHerdSchema first.
func Convert(schema *HerdSchema, now time.Time) (*HerdSnapshot, error) {
	snap := &HerdSnapshot{}
	refMap := make(map[string]*domain.BreedingEvent)

	for _, bi := range schema.Breedings {
		b, err := convertBreeding(bi, now)
		if err != nil {
			return nil, fmt.Errorf("breeding %q: %w", bi.Ref, err)
		}
		refMap[bi.Ref] = b
		snap.Breedings = append(snap.Breedings, b)
	}

	for _, pi := range schema.Pregnancies {
		var source *domain.BreedingEvent
		if pi.BreedingRef != nil && *pi.BreedingRef != "" {
			b, ok := refMap[*pi.BreedingRef]
			if !ok {
				return nil, fmt.Errorf("breeding_ref %q not found for pregnancy %q", *pi.BreedingRef, pi.Ref)
			}
			source = b
		}
		p, err := convertPregnancy(pi, source, now)
		if err != nil {
			return nil, fmt.Errorf("pregnancy %q: %w", pi.Ref, err)
		}
		snap.Pregnancies = append(snap.Pregnancies, p)
	}

	return snap, nil
}

func convertBreeding(bi BreedingImport, now time.Time) (*domain.BreedingEvent, error) {
	species, err := domain.ParseSpecies(bi.Species)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(bi.BreedingDate)
	if err != nil {
		return nil, err
	}
	status := domain.BreedingStatus(bi.Status)
	if status == "" {
		status = domain.BreedingUnconfirmed
	}

	b := &domain.BreedingEvent{
		ID:           uuid.New().String(),
		DamID:        bi.DamID,
		SireID:       bi.SireID,
		Species:      species,
		BreedingDate: date,
		Method:       domain.BreedingMethod(bi.Method),
		Status:       status,
		Notes:        bi.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status != domain.BreedingUnconfirmed {
		b.DecidedAt = &now
	}
	if err := b.Validate(now); err != nil {
		return nil, err
	}
	return b, nil
}

func convertPregnancy(pi PregnancyImport, source *domain.BreedingEvent, now time.Time) (*domain.PregnancyRecord, error) {
	species, err := domain.ParseSpecies(pi.Species)
	if err != nil {
		return nil, err
	}
	conception, err := domain.ParseDate(pi.ConceptionDate)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	var p *domain.PregnancyRecord
	if source != nil {
		if p, err = domain.NewPregnancy(id, source, now); err != nil {
			return nil, err
		}
	} else {
		p = &domain.PregnancyRecord{
			ID:             id,
			DamID:          pi.DamID,
			Species:        species,
			ConceptionDate: conception,
			HealthStatus:   domain.HealthGood,
			BirthStatus:    domain.BirthPregnant,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}
	for i, ci := range pi.Checkups {
		c, err := convertCheckup(ci)
		if err != nil {
			return nil, fmt.Errorf("checkups[%d]: %w", i, err)
		}
		if _, err := p.AppendCheckup(c, now, domain.LastWriteWins); err != nil {
			return nil, fmt.Errorf("checkups[%d]: %w", i, err)
		}
	}
	// The replay stamps the import time; the herd's last checkup is the
	// latest recorded one.
	if last := p.LastCheckup(); last != nil {
		at := last.Date
		p.LastCheckupAt = &at
	}
	for i, ei := range pi.BCS {
		date, err := domain.ParseDate(ei.Date)
		if err != nil {
			return nil, fmt.Errorf("bcs[%d]: %w", i, err)
		}
		entry := domain.BCSEntry{ID: uuid.New().String(), Date: date, Score: ei.Score, Notes: ei.Notes}
		if _, err := p.AppendBCS(entry, now); err != nil {
			return nil, fmt.Errorf("bcs[%d]: %w", i, err)
		}
	}

	// Checkups carry health forward; an explicit snapshot value wins.
	if pi.HealthStatus != "" {
		p.HealthStatus = domain.HealthStatus(pi.HealthStatus)
	}
	return p, nil
}

func convertCheckup(ci CheckupImport) (domain.CheckupRecord, error) {
	date, err := domain.ParseDate(ci.Date)
	if err != nil {
		return domain.CheckupRecord{}, err
	}
	c := domain.CheckupRecord{
		ID:           uuid.New().String(),
		Date:         date,
		BCS:          ci.BCS,
		WeightKg:     ci.WeightKg,
		Findings:     ci.Findings,
		HealthStatus: domain.HealthStatus(ci.HealthStatus),
	}
	if ci.NextCheckupDate != nil {
		next, err := domain.ParseDate(*ci.NextCheckupDate)
		if err != nil {
			return domain.CheckupRecord{}, err
		}
		c.NextCheckupDate = &next
	}
	return c, nil
}
