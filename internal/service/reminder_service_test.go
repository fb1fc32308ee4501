package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedHerd builds, as of testNow:
//
//	DOE-A unconfirmed 2025-09-15   breeding check +6    due soon
//	DOE-B unconfirmed 2025-10-05   breeding check +26   on track
//	DOE-C unconfirmed 2025-08-01   breeding check -39   overdue
//	DOE-D pregnant since 2025-11-01   checkup -7 overdue, birth +113 on track
//	DOE-E born 2025-10-10 with twins  deworming +2 due soon (x2)
func seedHerd(t *testing.T, s *testServices) {
	t.Helper()
	ctx := context.Background()
	for dam, date := range map[string]string{
		"DOE-A": "2025-09-15",
		"DOE-B": "2025-10-05",
		"DOE-C": "2025-08-01",
	} {
		b := testutil.NewTestBreeding(testutil.Date(date), testutil.WithDam(dam))
		require.NoError(t, s.breedings.Log(ctx, b))
	}
	openPregnancy(t, s, "DOE-D", "2025-11-01")

	closed := openPregnancy(t, s, "DOE-E", "2025-05-13")
	_, err := s.pregnancies.RecordBirth(ctx, app.RecordBirthRequest{
		PregnancyID: closed.ID,
		BirthDate:   testutil.Date("2025-10-10"),
		Offspring:   twins(),
	})
	require.NoError(t, err)
}

func TestReminderService_Due_Default(t *testing.T) {
	s := setupServices(t, testNow)
	seedHerd(t, s)

	resp, err := s.reminders.Due(context.Background(), app.NewRemindersRequest())
	require.NoError(t, err)

	assert.Equal(t, testNow, resp.GeneratedAt)
	assert.Equal(t, app.ReminderCounts{Overdue: 2, DueSoon: 3, OnTrack: 2}, resp.Counts)

	require.Len(t, resp.Alerts, 5)
	type row struct {
		kind    domain.ReminderKind
		subject string
		offset  int
		level   domain.AlertLevel
	}
	var got []row
	for _, a := range resp.Alerts {
		subject := a.Subject
		if a.Kind == domain.ReminderDeworming {
			subject = "kid"
		}
		got = append(got, row{a.Kind, subject, a.OffsetDays, a.Level})
	}
	assert.Equal(t, []row{
		{domain.ReminderBreedingCheck, "DOE-C", -39, domain.AlertOverdue},
		{domain.ReminderPregnancyCheckup, "DOE-D", -7, domain.AlertOverdue},
		{domain.ReminderDeworming, "kid", 2, domain.AlertDueSoon},
		{domain.ReminderDeworming, "kid", 2, domain.AlertDueSoon},
		{domain.ReminderBreedingCheck, "DOE-A", 6, domain.AlertDueSoon},
	}, got)

	assert.Less(t, resp.Alerts[2].Subject, resp.Alerts[3].Subject, "ties order by subject")
	assert.Equal(t, testutil.Date("2025-12-10"), resp.Alerts[2].DueDate)
}

func TestReminderService_Due_Filters(t *testing.T) {
	tests := []struct {
		name       string
		req        func() app.RemindersRequest
		wantCounts app.ReminderCounts
		wantAlerts int
	}{
		{
			name: "kind filter",
			req: func() app.RemindersRequest {
				r := app.NewRemindersRequest()
				r.Kinds = []domain.ReminderKind{domain.ReminderDeworming}
				return r
			},
			wantCounts: app.ReminderCounts{DueSoon: 2},
			wantAlerts: 2,
		},
		{
			name: "include on track",
			req: func() app.RemindersRequest {
				r := app.NewRemindersRequest()
				r.IncludeOnTrack = true
				return r
			},
			wantCounts: app.ReminderCounts{Overdue: 2, DueSoon: 3, OnTrack: 2},
			wantAlerts: 7,
		},
		{
			name: "dam filter",
			req: func() app.RemindersRequest {
				r := app.NewRemindersRequest()
				r.DamID = "DOE-D"
				return r
			},
			wantCounts: app.ReminderCounts{Overdue: 1, OnTrack: 1},
			wantAlerts: 1,
		},
		{
			name: "wider window",
			req: func() app.RemindersRequest {
				r := app.NewRemindersRequest()
				r.DueSoonDays = 30
				return r
			},
			wantCounts: app.ReminderCounts{Overdue: 2, DueSoon: 4, OnTrack: 1},
			wantAlerts: 6,
		},
		{
			name: "explicit now",
			req: func() app.RemindersRequest {
				r := app.NewRemindersRequest()
				now := testutil.Date("2025-12-14")
				r.Now = &now
				r.Kinds = []domain.ReminderKind{domain.ReminderBreedingCheck}
				return r
			},
			// DOE-A is due today, DOE-B is 20 days out, DOE-C stays overdue.
			wantCounts: app.ReminderCounts{Overdue: 1, DueSoon: 1, OnTrack: 1},
			wantAlerts: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupServices(t, testNow)
			seedHerd(t, s)

			resp, err := s.reminders.Due(context.Background(), tt.req())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCounts, resp.Counts)
			assert.Len(t, resp.Alerts, tt.wantAlerts)
		})
	}
}

func TestReminderService_Due_EmptyHerd(t *testing.T) {
	s := setupServices(t, testNow)

	resp, err := s.reminders.Due(context.Background(), app.NewRemindersRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Alerts)
	assert.Equal(t, app.ReminderCounts{}, resp.Counts)
}

func TestReminderService_Due_ConfirmedBreedingDropsCheck(t *testing.T) {
	s := setupServices(t, testNow)
	ctx := context.Background()
	b := testutil.NewTestBreeding(testutil.Date("2025-09-15"), testutil.WithDam("DOE-A"))
	require.NoError(t, s.breedings.Log(ctx, b))

	req := app.NewRemindersRequest()
	req.Kinds = []domain.ReminderKind{domain.ReminderBreedingCheck}
	resp, err := s.reminders.Due(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, lifecycle.BreedingCheckDate(b.BreedingDate), resp.Alerts[0].DueDate)

	_, err = s.breedings.Confirm(ctx, b.ID)
	require.NoError(t, err)
	resp, err = s.reminders.Due(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Alerts)
}
