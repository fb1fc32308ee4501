package formatter

import (
	"testing"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestFormatBreedingList(t *testing.T) {
	now := date("2025-12-08")
	pending := &domain.BreedingEvent{ID: "b-0000001", DamID: "DOE-A", SireID: "BUCK-1", Species: domain.SpeciesGoat,
		BreedingDate: date("2025-09-15"), Method: domain.MethodArtificialInsemination, Status: domain.BreedingUnconfirmed}
	decided := &domain.BreedingEvent{ID: "b-0000002", DamID: "DOE-B", SireID: "BUCK-1", Species: domain.SpeciesGoat,
		BreedingDate: date("2025-08-01"), Method: domain.MethodNatural, Status: domain.BreedingOpen}

	checks := map[string]lifecycle.BreedingCheck{
		pending.ID: lifecycle.ClassifyBreedingCheck(pending.BreedingDate, now),
		decided.ID: lifecycle.ClassifyBreedingCheck(decided.BreedingDate, now),
	}
	out := stripANSI(FormatBreedingList([]*domain.BreedingEvent{pending, decided}, checks))

	assert.Contains(t, out, "BREEDINGS")
	assert.Contains(t, out, "artificial insemination")
	assert.Contains(t, out, "2025-12-14 In 6d")
	assert.Contains(t, out, "✖ Open")
	assert.NotContains(t, out, "39d ago", "decided breedings show no check")
}

func TestFormatBreedingCheck(t *testing.T) {
	b := &domain.BreedingEvent{DamID: "DOE-C", BreedingDate: date("2025-10-05"), Method: domain.MethodNatural, Status: domain.BreedingUnconfirmed}
	out := stripANSI(FormatBreedingCheck(b, lifecycle.ClassifyBreedingCheck(b.BreedingDate, date("2025-12-08"))))

	assert.Contains(t, out, "Check date  2026-01-03")
	assert.Contains(t, out, "● NOT YET DUE (in 26 days)")
}
