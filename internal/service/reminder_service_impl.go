package service

import (
	"context"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/repository"
)

type reminderService struct {
	breedings   repository.BreedingRepo
	pregnancies repository.PregnancyRepo
	opts        Options
	observer    UseCaseObserver
}

func NewReminderService(
	breedings repository.BreedingRepo,
	pregnancies repository.PregnancyRepo,
	opts Options,
	observers ...UseCaseObserver,
) ReminderService {
	return &reminderService{
		breedings:   breedings,
		pregnancies: pregnancies,
		opts:        opts.withDefaults(),
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Due derives every reminder across the herd, most urgent first. On-track
// reminders are dropped unless the request asks for them.
func (s *reminderService) Due(ctx context.Context, req app.RemindersRequest) (resp *app.RemindersResponse, err error) {
	uc := startUseCase(s.observer, "reminders")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	if req.Now != nil {
		now = *req.Now
	}
	opts := s.opts.Lifecycle
	if req.DueSoonDays > 0 {
		opts.DueSoonDays = req.DueSoonDays
	}

	breedings, err := s.breedings.List(ctx, repository.BreedingFilter{
		DamID:  req.DamID,
		Status: domain.BreedingUnconfirmed,
	})
	if err != nil {
		return nil, err
	}
	pregnancies, err := s.pregnancies.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var all []lifecycle.Alert
	for _, b := range breedings {
		if a, ok := lifecycle.BreedingAlert(b, now, opts); ok {
			all = append(all, a)
		}
	}
	for _, p := range pregnancies {
		if req.DamID != "" && p.DamID != req.DamID {
			continue
		}
		all = append(all, lifecycle.PregnancyAlerts(p, now, opts)...)
	}

	resp = &app.RemindersResponse{GeneratedAt: now}
	for _, a := range all {
		if !req.WantsKind(a.Kind) {
			continue
		}
		switch a.Level {
		case domain.AlertOverdue:
			resp.Counts.Overdue++
		case domain.AlertDueSoon:
			resp.Counts.DueSoon++
		default:
			resp.Counts.OnTrack++
			if !req.IncludeOnTrack {
				continue
			}
		}
		resp.Alerts = append(resp.Alerts, a)
	}
	lifecycle.SortAlerts(resp.Alerts)

	uc.fields["overdue"] = resp.Counts.Overdue
	uc.fields["due_soon"] = resp.Counts.DueSoon
	return resp, nil
}
