package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestPregnancy(t *testing.T) *PregnancyRecord {
	t.Helper()
	b := newTestBreeding()
	require.NoError(t, b.Confirm(testNow))
	p, err := NewPregnancy("p1", b, testNow)
	require.NoError(t, err)
	return p
}

func checkupOn(d time.Time, status HealthStatus) CheckupRecord {
	return CheckupRecord{
		ID:           "c-" + d.Format(DateLayout),
		Date:         d,
		BCS:          3.5,
		WeightKg:     58.2,
		Findings:     "routine",
		HealthStatus: status,
	}
}

func TestNewPregnancy_FromConfirmedBreeding(t *testing.T) {
	p := newTestPregnancy(t)
	assert.Equal(t, "b1", p.BreedingID)
	assert.Equal(t, "G-014", p.DamID)
	assert.Equal(t, SpeciesGoat, p.Species)
	assert.Equal(t, date(2025, 9, 15), p.ConceptionDate)
	assert.Equal(t, HealthGood, p.HealthStatus)
	assert.Equal(t, BirthPregnant, p.BirthStatus)
	assert.True(t, p.IsOpen())
}

func TestNewPregnancy_RequiresConfirmedBreeding(t *testing.T) {
	_, err := NewPregnancy("p1", newTestBreeding(), testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAppendCheckup_UpdatesLedgerAndStatus(t *testing.T) {
	p := newTestPregnancy(t)

	c1, err := p.AppendCheckup(checkupOn(date(2025, 10, 20), HealthGood), testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c1.Seq)
	assert.Equal(t, "p1", c1.PregnancyID)

	later := testNow.Add(time.Hour)
	_, err = p.AppendCheckup(checkupOn(date(2025, 11, 20), HealthAttentionNeeded), later, nil)
	require.NoError(t, err)

	require.Len(t, p.Checkups, 2)
	assert.Equal(t, HealthAttentionNeeded, p.HealthStatus)
	require.NotNil(t, p.LastCheckupAt)
	assert.Equal(t, later, *p.LastCheckupAt)
	assert.Equal(t, date(2025, 11, 20), p.LastCheckup().Date)
}

func TestAppendCheckup_LastWriteWinsIgnoresHistory(t *testing.T) {
	p := newTestPregnancy(t)
	_, err := p.AppendCheckup(checkupOn(date(2025, 10, 1), HealthCritical), testNow, nil)
	require.NoError(t, err)
	_, err = p.AppendCheckup(checkupOn(date(2025, 10, 2), HealthGood), testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, HealthGood, p.HealthStatus)
}

func TestAppendCheckup_CustomPolicy(t *testing.T) {
	worst := func(current HealthStatus, _ []CheckupRecord, latest CheckupRecord) HealthStatus {
		if current == HealthCritical {
			return current
		}
		return latest.HealthStatus
	}
	p := newTestPregnancy(t)
	_, err := p.AppendCheckup(checkupOn(date(2025, 10, 1), HealthCritical), testNow, worst)
	require.NoError(t, err)
	_, err = p.AppendCheckup(checkupOn(date(2025, 10, 2), HealthGood), testNow, worst)
	require.NoError(t, err)
	assert.Equal(t, HealthCritical, p.HealthStatus)
}

func TestAppendCheckup_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *CheckupRecord)
		target error
	}{
		{"missing bcs", func(c *CheckupRecord) { c.BCS = 0 }, ErrMissingRequiredField},
		{"bcs out of range", func(c *CheckupRecord) { c.BCS = 6 }, ErrMissingRequiredField},
		{"non-positive weight", func(c *CheckupRecord) { c.WeightKg = -1 }, ErrMissingRequiredField},
		{"NaN bcs", func(c *CheckupRecord) { c.BCS = math.NaN() }, ErrMissingRequiredField},
		{"infinite bcs", func(c *CheckupRecord) { c.BCS = math.Inf(1) }, ErrMissingRequiredField},
		{"NaN weight", func(c *CheckupRecord) { c.WeightKg = math.NaN() }, ErrMissingRequiredField},
		{"+Inf weight", func(c *CheckupRecord) { c.WeightKg = math.Inf(1) }, ErrMissingRequiredField},
		{"-Inf weight", func(c *CheckupRecord) { c.WeightKg = math.Inf(-1) }, ErrMissingRequiredField},
		{"unknown health", func(c *CheckupRecord) { c.HealthStatus = "fine" }, ErrMissingRequiredField},
		{"missing date", func(c *CheckupRecord) { c.Date = time.Time{} }, ErrMissingRequiredField},
		{"before conception", func(c *CheckupRecord) { c.Date = date(2025, 9, 1) }, ErrInvalidDateOrder},
		{"after today", func(c *CheckupRecord) { c.Date = date(2025, 12, 9) }, ErrInvalidDateOrder},
		{"next before date", func(c *CheckupRecord) { d := date(2025, 10, 1); c.NextCheckupDate = &d }, ErrInvalidDateOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPregnancy(t)
			c := checkupOn(date(2025, 10, 10), HealthGood)
			tc.mutate(&c)
			_, err := p.AppendCheckup(c, testNow, nil)
			assert.ErrorIs(t, err, tc.target)
			assert.Empty(t, p.Checkups)
			assert.Nil(t, p.LastCheckupAt)
		})
	}
}

func TestAppendCheckup_RejectsOutOfOrderDate(t *testing.T) {
	p := newTestPregnancy(t)
	_, err := p.AppendCheckup(checkupOn(date(2025, 11, 1), HealthGood), testNow, nil)
	require.NoError(t, err)

	_, err = p.AppendCheckup(checkupOn(date(2025, 10, 1), HealthCritical), testNow, nil)
	assert.ErrorIs(t, err, ErrInvalidDateOrder)
	assert.Len(t, p.Checkups, 1)
	assert.Equal(t, HealthGood, p.HealthStatus)
}

func TestNextCheckupDue(t *testing.T) {
	p := newTestPregnancy(t)
	assert.Equal(t, date(2025, 10, 15), p.NextCheckupDue(0), "defaults to conception + 30 days")
	assert.Equal(t, date(2025, 10, 29), p.NextCheckupDue(44))

	next := date(2025, 12, 1)
	c := checkupOn(date(2025, 11, 1), HealthGood)
	c.NextCheckupDate = &next
	_, err := p.AppendCheckup(c, testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, next, p.NextCheckupDue(30), "latest checkup's next date wins over interval")

	_, err = p.AppendCheckup(checkupOn(date(2025, 11, 10), HealthGood), testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 12, 10), p.NextCheckupDue(30))
}

func TestAppendBCS_LabelsByGestationMonth(t *testing.T) {
	p := newTestPregnancy(t)

	e1, err := p.AppendBCS(BCSEntry{ID: "s1", Date: date(2025, 9, 20), Score: 3}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Month 1", e1.MonthLabel)
	assert.Equal(t, 1, e1.Seq)

	e2, err := p.AppendBCS(BCSEntry{ID: "s2", Date: date(2025, 11, 15), Score: 3.5}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Month 3", e2.MonthLabel)

	e3, err := p.AppendBCS(BCSEntry{ID: "s3", Date: date(2025, 11, 20), Score: 3.5}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Month 3", e3.MonthLabel, "label follows the calendar, not the ledger length")
	assert.Len(t, p.BCSEntries, 3)
}

func TestAppendBCS_DefaultsDateToNow(t *testing.T) {
	p := newTestPregnancy(t)
	e, err := p.AppendBCS(BCSEntry{ID: "s1", Score: 2.5}, testNow)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 12, 8), e.Date)
	assert.Equal(t, "Month 3", e.MonthLabel)
}

func TestAppendBCS_Validation(t *testing.T) {
	p := newTestPregnancy(t)
	_, err := p.AppendBCS(BCSEntry{ID: "s1"}, testNow)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = p.AppendBCS(BCSEntry{ID: "s1", Score: 0.5}, testNow)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = p.AppendBCS(BCSEntry{ID: "s1", Score: score}, testNow)
		assert.ErrorIs(t, err, ErrMissingRequiredField, "score %v", score)
	}

	_, err = p.AppendBCS(BCSEntry{ID: "s1", Score: 3, Date: date(2025, 1, 1)}, testNow)
	assert.ErrorIs(t, err, ErrInvalidDateOrder)
	assert.Empty(t, p.BCSEntries)
}

func TestGestationMonth(t *testing.T) {
	conception := date(2025, 1, 31)
	assert.Equal(t, 1, GestationMonth(conception, date(2025, 1, 31)))
	assert.Equal(t, 1, GestationMonth(conception, date(2025, 2, 28)))
	assert.Equal(t, 3, GestationMonth(conception, date(2025, 3, 31)))
	assert.Equal(t, 12, GestationMonth(conception, date(2026, 1, 1)))
	assert.Equal(t, 1, GestationMonth(conception, date(2024, 12, 1)), "dates before conception clamp to Month 1")
}

func TestLedgers_ClosedPregnancyRejectsAppends(t *testing.T) {
	p := newTestPregnancy(t)
	p.BirthStatus = BirthGivenBirth

	_, err := p.AppendCheckup(checkupOn(date(2025, 10, 10), HealthGood), testNow, nil)
	assert.ErrorIs(t, err, ErrAlreadyBorn)
	_, err = p.AppendBCS(BCSEntry{ID: "s1", Score: 3}, testNow)
	assert.ErrorIs(t, err, ErrAlreadyBorn)
}

func TestMeasurementPredicates(t *testing.T) {
	cases := []struct {
		v        float64
		bcs      bool
		positive bool
	}{
		{3.5, true, true},
		{1, true, true},
		{5, true, true},
		{0.5, false, true},
		{540, false, true},
		{0, false, false},
		{-2, false, false},
		{math.NaN(), false, false},
		{math.Inf(1), false, false},
		{math.Inf(-1), false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bcs, ValidBCS(tc.v), "ValidBCS(%v)", tc.v)
		assert.Equal(t, tc.positive, PositiveFinite(tc.v), "PositiveFinite(%v)", tc.v)
	}
}
