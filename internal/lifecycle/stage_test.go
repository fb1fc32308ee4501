package lifecycle

import (
	"testing"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStage_Bands(t *testing.T) {
	cases := []struct {
		progress float64
		stage    domain.Stage
	}{
		{-5, domain.StageEarly},
		{0, domain.StageEarly},
		{32.99, domain.StageEarly},
		{33, domain.StageMid},
		{65.9, domain.StageMid},
		{66, domain.StageLate},
		{94.67, domain.StageLate},
		{99.99, domain.StageLate},
		{100, domain.StageOverdue},
		{140, domain.StageOverdue},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.stage, ClassifyStage(tc.progress), "progress=%v", tc.progress)
	}
}

func TestClassifyStage_Idempotent(t *testing.T) {
	for _, p := range []float64{0, 33, 50, 66, 100, 120} {
		assert.Equal(t, ClassifyStage(p), ClassifyStage(p))
	}
}

func TestClassifyBreedingCheck_Boundaries(t *testing.T) {
	breeding := date(2025, 9, 15)
	check := date(2025, 12, 14)

	cases := []struct {
		name      string
		now       time.Time
		daysUntil int
		status    domain.BreedingCheckStatus
	}{
		{"eight days out", check.AddDate(0, 0, -8), 8, domain.CheckNotYetDue},
		{"seven days out", check.AddDate(0, 0, -7), 7, domain.CheckDueSoon},
		{"check day", check, 0, domain.CheckDueSoon},
		{"check day afternoon", check.Add(15 * time.Hour), 0, domain.CheckDueSoon},
		{"one day past", check.AddDate(0, 0, 1), -1, domain.CheckOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyBreedingCheck(breeding, tc.now)
			assert.Equal(t, check, got.CheckDate)
			assert.Equal(t, tc.daysUntil, got.DaysUntil)
			assert.Equal(t, tc.status, got.Status)
		})
	}
}

func TestClassifyBreedingCheck_ScenarioB(t *testing.T) {
	got := ClassifyBreedingCheck(date(2025, 9, 15), date(2025, 12, 8))
	assert.Equal(t, date(2025, 12, 14), got.CheckDate)
	assert.Equal(t, 6, got.DaysUntil)
	assert.Equal(t, domain.CheckDueSoon, got.Status)
}

func TestClassifyBreedingCheck_ScenarioC(t *testing.T) {
	now := date(2025, 12, 8)

	upcoming := ClassifyBreedingCheck(date(2025, 10, 5), now)
	assert.Equal(t, date(2026, 1, 3), upcoming.CheckDate)
	assert.Equal(t, 26, upcoming.DaysUntil)
	assert.Equal(t, domain.CheckNotYetDue, upcoming.Status)

	passed := ClassifyBreedingCheck(date(2025, 8, 1), now)
	assert.Equal(t, date(2025, 10, 30), passed.CheckDate)
	assert.Equal(t, -39, passed.DaysUntil, "negative offset equals days past the check")
	assert.Equal(t, domain.CheckOverdue, passed.Status)
}
