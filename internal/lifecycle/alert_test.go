package lifecycle

import (
	"testing"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveAlert_Levels(t *testing.T) {
	now := date(2025, 12, 8)
	cases := []struct {
		due    int
		level  domain.AlertLevel
		text   string
		window int
	}{
		{30, domain.AlertOnTrack, "in 30 days", 7},
		{8, domain.AlertOnTrack, "in 8 days", 7},
		{7, domain.AlertDueSoon, "in 7 days", 7},
		{1, domain.AlertDueSoon, "in 1 day", 7},
		{0, domain.AlertDueSoon, "due today", 7},
		{-1, domain.AlertOverdue, "1 day overdue", 7},
		{-12, domain.AlertOverdue, "12 days overdue", 7},
		{10, domain.AlertDueSoon, "in 10 days", 14},
		{7, domain.AlertDueSoon, "in 7 days", 0},
	}
	for _, tc := range cases {
		a := DeriveAlert(domain.ReminderDeworming, now.AddDate(0, 0, tc.due), now, tc.window)
		assert.Equal(t, tc.due, a.OffsetDays)
		assert.Equal(t, tc.level, a.Level, "due=%d window=%d", tc.due, tc.window)
		assert.Equal(t, tc.text, a.OffsetText())
		assert.Equal(t, domain.ReminderDeworming, a.Kind)
	}
}

func TestSortAlerts_MostUrgentFirst(t *testing.T) {
	alerts := []Alert{
		{Kind: domain.ReminderExpectedBirth, OffsetDays: 40, Subject: "a"},
		{Kind: domain.ReminderDeworming, OffsetDays: -3, Subject: "b"},
		{Kind: domain.ReminderBreedingCheck, OffsetDays: 2, Subject: "c"},
		{Kind: domain.ReminderBreedingCheck, OffsetDays: -3, Subject: "d"},
	}
	SortAlerts(alerts)
	assert.Equal(t, "d", alerts[0].Subject)
	assert.Equal(t, "b", alerts[1].Subject)
	assert.Equal(t, "c", alerts[2].Subject)
	assert.Equal(t, "a", alerts[3].Subject)
}
