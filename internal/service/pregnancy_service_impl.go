package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/google/uuid"
)

type pregnancyService struct {
	pregnancies repository.PregnancyRepo
	uow         db.UnitOfWork
	opts        Options
	observer    UseCaseObserver
}

func NewPregnancyService(
	pregnancies repository.PregnancyRepo,
	uow db.UnitOfWork,
	opts Options,
	observers ...UseCaseObserver,
) PregnancyService {
	return &pregnancyService{
		pregnancies: pregnancies,
		uow:         uow,
		opts:        opts.withDefaults(),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *pregnancyService) GetByID(ctx context.Context, id string) (*domain.PregnancyRecord, error) {
	return s.pregnancies.GetByID(ctx, id)
}

func (s *pregnancyService) GetOpenByDam(ctx context.Context, damID string) (*domain.PregnancyRecord, error) {
	return s.pregnancies.GetOpenByDam(ctx, damID)
}

func (s *pregnancyService) List(ctx context.Context, includeClosed bool) ([]*domain.PregnancyRecord, error) {
	return s.pregnancies.List(ctx, includeClosed)
}

// View recomputes the pregnancy's derived state against today.
func (s *pregnancyService) View(ctx context.Context, id string) (*lifecycle.PregnancyView, error) {
	p, err := s.pregnancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.Snapshot(p, s.opts.Now(), s.opts.Lifecycle)
}

// ListViews builds a view per pregnancy. A record conceived after today (a
// stored herd viewed with an earlier --now) is logged and left out rather
// than failing the whole list.
func (s *pregnancyService) ListViews(ctx context.Context, includeClosed bool) ([]*lifecycle.PregnancyView, error) {
	records, err := s.pregnancies.List(ctx, includeClosed)
	if err != nil {
		return nil, err
	}
	now := s.opts.Now()
	views := make([]*lifecycle.PregnancyView, 0, len(records))
	for _, p := range records {
		v, err := lifecycle.Snapshot(p, now, s.opts.Lifecycle)
		if errors.Is(err, domain.ErrInvalidDateOrder) {
			s.opts.Logger.WarnContext(ctx, "pregnancy skipped: conceived after today",
				"pregnancy_id", p.ID,
				"dam_id", p.DamID,
				"conception_date", p.ConceptionDate.Format(domain.DateLayout),
				"today", domain.DateOnly(now).Format(domain.DateLayout),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("pregnancy %s: %w", p.ID, err)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *pregnancyService) AddCheckup(ctx context.Context, pregnancyID string, c domain.CheckupRecord) (stored *domain.CheckupRecord, err error) {
	uc := startUseCase(s.observer, "add-checkup")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPregnancies := repository.NewSQLitePregnancyRepo(tx)

		p, err := txPregnancies.GetByID(ctx, pregnancyID)
		if err != nil {
			return err
		}
		if stored, err = p.AppendCheckup(c, now, s.opts.Policy); err != nil {
			return err
		}
		if err := txPregnancies.InsertCheckup(ctx, stored); err != nil {
			return err
		}
		uc.fields["health_status"] = string(p.HealthStatus)
		return txPregnancies.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *pregnancyService) AddBCS(ctx context.Context, pregnancyID string, e domain.BCSEntry) (stored *domain.BCSEntry, err error) {
	uc := startUseCase(s.observer, "add-bcs")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPregnancies := repository.NewSQLitePregnancyRepo(tx)

		p, err := txPregnancies.GetByID(ctx, pregnancyID)
		if err != nil {
			return err
		}
		if stored, err = p.AppendBCS(e, now); err != nil {
			return err
		}
		if err := txPregnancies.InsertBCS(ctx, stored); err != nil {
			return err
		}
		return txPregnancies.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// RecordBirth closes the pregnancy and stores its offspring atomically. The
// deworming reminders it derives are logged, not stored.
func (s *pregnancyService) RecordBirth(ctx context.Context, req app.RecordBirthRequest) (resp *app.RecordBirthResponse, err error) {
	uc := startUseCase(s.observer, "record-birth")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	in := domain.BirthInput{
		RecordID:  uuid.New().String(),
		BirthDate: req.BirthDate,
		Offspring: req.Offspring,
		Calving:   req.Calving,
	}

	var p *domain.PregnancyRecord
	var outcome *domain.BirthOutcome
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPregnancies := repository.NewSQLitePregnancyRepo(tx)

		var err error
		if p, err = txPregnancies.GetByID(ctx, req.PregnancyID); err != nil {
			return err
		}
		if outcome, err = p.RecordBirth(in, now); err != nil {
			return err
		}
		if err := txPregnancies.Update(ctx, p); err != nil {
			return err
		}
		for i := range outcome.Offspring {
			if err := txPregnancies.InsertOffspring(ctx, &outcome.Offspring[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.fields["offspring"] = len(outcome.Offspring)
	uc.fields["monitoring"] = len(outcome.Monitoring)
	s.logBirthReminders(ctx, p, outcome)

	return &app.RecordBirthResponse{
		Pregnancy:  p,
		RecordID:   in.RecordID,
		Offspring:  outcome.Offspring,
		Deworming:  outcome.Deworming,
		Monitoring: outcome.Monitoring,
	}, nil
}

func (s *pregnancyService) logBirthReminders(ctx context.Context, p *domain.PregnancyRecord, outcome *domain.BirthOutcome) {
	for _, r := range outcome.Deworming {
		s.opts.Logger.InfoContext(ctx, "reminder",
			"kind", string(domain.ReminderDeworming),
			"dam_id", p.DamID,
			"offspring_tag", r.OffspringTag,
			"due_date", r.DueDate.Format(domain.DateLayout),
		)
	}
	for _, o := range outcome.Monitoring {
		s.opts.Logger.WarnContext(ctx, "offspring needs monitoring",
			"dam_id", p.DamID,
			"offspring_tag", o.TagID,
			"vigor", string(o.Vigor),
		)
	}
}
