package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// ValidateHerdSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateHerdSchema(schema *HerdSchema, now time.Time) []error {
	var errs []error

	breedings := make(map[string]BreedingImport)
	errs = append(errs, validateBreedings(schema.Breedings, breedings, now)...)
	errs = append(errs, validatePregnancies(schema.Pregnancies, breedings, now)...)

	return errs
}

func validateBreedings(items []BreedingImport, refs map[string]BreedingImport, now time.Time) []error {
	var errs []error

	for i, b := range items {
		prefix := fmt.Sprintf("breedings[%d]", i)

		if b.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if _, dup := refs[b.Ref]; dup {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, b.Ref))
		} else {
			refs[b.Ref] = b
		}

		if b.DamID == "" {
			errs = append(errs, fmt.Errorf("%s.dam_id is required", prefix))
		}
		if b.SireID == "" {
			errs = append(errs, fmt.Errorf("%s.sire_id is required", prefix))
		}
		errs = append(errs, validateSpecies(prefix+".species", b.Species)...)
		errs = append(errs, validatePastDate(prefix+".breeding_date", b.BreedingDate, now)...)

		if b.Method == "" {
			errs = append(errs, fmt.Errorf("%s.method is required", prefix))
		} else if !domain.ValidBreedingMethods[domain.BreedingMethod(b.Method)] {
			errs = append(errs, fmt.Errorf("%s.method: invalid value %q", prefix, b.Method))
		}
		if b.Status != "" && !validBreedingStatuses[domain.BreedingStatus(b.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, b.Status))
		}
	}

	return errs
}

var validBreedingStatuses = map[domain.BreedingStatus]bool{
	domain.BreedingUnconfirmed: true,
	domain.BreedingConfirmed:   true,
	domain.BreedingOpen:        true,
}

func validatePregnancies(items []PregnancyImport, breedings map[string]BreedingImport, now time.Time) []error {
	var errs []error
	refs := make(map[string]bool)
	openDams := make(map[string]string)
	linked := make(map[string]string)

	for i, p := range items {
		prefix := fmt.Sprintf("pregnancies[%d]", i)

		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, p.Ref))
		} else {
			refs[p.Ref] = true
		}

		if p.DamID == "" {
			errs = append(errs, fmt.Errorf("%s.dam_id is required", prefix))
		} else if other, ok := openDams[p.DamID]; ok {
			errs = append(errs, fmt.Errorf("%s.dam_id: dam %q already has open pregnancy %q", prefix, p.DamID, other))
		} else {
			openDams[p.DamID] = p.Ref
		}

		errs = append(errs, validateSpecies(prefix+".species", p.Species)...)
		conceptionErrs := validatePastDate(prefix+".conception_date", p.ConceptionDate, now)
		errs = append(errs, conceptionErrs...)

		if p.HealthStatus != "" && !domain.ValidHealthStatuses[domain.HealthStatus(p.HealthStatus)] {
			errs = append(errs, fmt.Errorf("%s.health_status: invalid value %q", prefix, p.HealthStatus))
		}

		if p.BreedingRef != nil && *p.BreedingRef != "" {
			errs = append(errs, validateBreedingLink(prefix, p, breedings, linked)...)
		}

		if len(conceptionErrs) == 0 {
			conception, _ := domain.ParseDate(p.ConceptionDate)
			errs = append(errs, validateCheckups(prefix, p.Checkups, conception, now)...)
			errs = append(errs, validateBCS(prefix, p.BCS, conception, now)...)
		}
	}

	return errs
}

func validateBreedingLink(prefix string, p PregnancyImport, breedings map[string]BreedingImport, linked map[string]string) []error {
	ref := *p.BreedingRef
	b, ok := breedings[ref]
	if !ok {
		return []error{fmt.Errorf("%s.breeding_ref: ref %q not found in breedings", prefix, ref)}
	}

	var errs []error
	if other, taken := linked[ref]; taken {
		errs = append(errs, fmt.Errorf("%s.breeding_ref: breeding %q already opened pregnancy %q", prefix, ref, other))
	} else {
		linked[ref] = p.Ref
	}
	if domain.BreedingStatus(b.Status) != domain.BreedingConfirmed {
		errs = append(errs, fmt.Errorf("%s.breeding_ref: breeding %q must have status confirmed", prefix, ref))
	}
	if b.DamID != p.DamID {
		errs = append(errs, fmt.Errorf("%s.dam_id %q does not match breeding %q dam %q", prefix, p.DamID, ref, b.DamID))
	}
	if !strings.EqualFold(b.Species, p.Species) {
		errs = append(errs, fmt.Errorf("%s.species %q does not match breeding %q species %q", prefix, p.Species, ref, b.Species))
	}
	if b.BreedingDate != p.ConceptionDate {
		errs = append(errs, fmt.Errorf("%s.conception_date %q must equal breeding %q date %q", prefix, p.ConceptionDate, ref, b.BreedingDate))
	}
	return errs
}

func validateCheckups(prefix string, checkups []CheckupImport, conception, now time.Time) []error {
	var errs []error
	var last time.Time

	for i, c := range checkups {
		cp := fmt.Sprintf("%s.checkups[%d]", prefix, i)

		dateErrs := validatePastDate(cp+".date", c.Date, now)
		errs = append(errs, dateErrs...)
		if len(dateErrs) == 0 {
			date, _ := domain.ParseDate(c.Date)
			if date.Before(conception) {
				errs = append(errs, fmt.Errorf("%s.date %q precedes conception", cp, c.Date))
			}
			if date.Before(last) {
				errs = append(errs, fmt.Errorf("%s.date %q precedes the previous checkup", cp, c.Date))
			}
			last = date
			if c.NextCheckupDate != nil {
				next, err := domain.ParseDate(*c.NextCheckupDate)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s.next_checkup_date: invalid date format %q (expected YYYY-MM-DD)", cp, *c.NextCheckupDate))
				} else if !next.After(date) {
					errs = append(errs, fmt.Errorf("%s.next_checkup_date %q must fall after the checkup date", cp, *c.NextCheckupDate))
				}
			}
		}

		errs = append(errs, validateScore(cp+".bcs", c.BCS)...)
		if !domain.PositiveFinite(c.WeightKg) {
			errs = append(errs, fmt.Errorf("%s.weight_kg must be positive", cp))
		}
		if c.HealthStatus == "" {
			errs = append(errs, fmt.Errorf("%s.health_status is required", cp))
		} else if !domain.ValidHealthStatuses[domain.HealthStatus(c.HealthStatus)] {
			errs = append(errs, fmt.Errorf("%s.health_status: invalid value %q", cp, c.HealthStatus))
		}
	}

	return errs
}

func validateBCS(prefix string, entries []BCSImport, conception, now time.Time) []error {
	var errs []error

	for i, e := range entries {
		ep := fmt.Sprintf("%s.bcs[%d]", prefix, i)

		dateErrs := validatePastDate(ep+".date", e.Date, now)
		errs = append(errs, dateErrs...)
		if len(dateErrs) == 0 {
			if date, _ := domain.ParseDate(e.Date); date.Before(conception) {
				errs = append(errs, fmt.Errorf("%s.date %q precedes conception", ep, e.Date))
			}
		}
		errs = append(errs, validateScore(ep+".score", e.Score)...)
	}

	return errs
}

func validateSpecies(field, s string) []error {
	if s == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := domain.ParseSpecies(s); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}

func validateScore(field string, score float64) []error {
	if !domain.ValidBCS(score) {
		return []error{fmt.Errorf("%s: %.1f outside %.0f-%.0f", field, score, domain.MinBCS, domain.MaxBCS)}
	}
	return nil
}

// validatePastDate requires a YYYY-MM-DD date that is not after now.
func validatePastDate(field, s string, now time.Time) []error {
	if s == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)}
	}
	if d.After(domain.DateOnly(now)) {
		return []error{fmt.Errorf("%s %q is after today: %w", field, s, domain.ErrInvalidDateOrder)}
	}
	return nil
}
