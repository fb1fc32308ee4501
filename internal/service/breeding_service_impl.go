package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/google/uuid"
)

type breedingService struct {
	breedings repository.BreedingRepo
	uow       db.UnitOfWork
	opts      Options
	observer  UseCaseObserver
}

func NewBreedingService(
	breedings repository.BreedingRepo,
	uow db.UnitOfWork,
	opts Options,
	observers ...UseCaseObserver,
) BreedingService {
	return &breedingService{
		breedings: breedings,
		uow:       uow,
		opts:      opts.withDefaults(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *breedingService) Log(ctx context.Context, b *domain.BreedingEvent) (err error) {
	uc := startUseCase(s.observer, "log-breeding")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.DamID = strings.TrimSpace(b.DamID)
	b.SireID = strings.TrimSpace(b.SireID)
	b.Notes = strings.TrimSpace(b.Notes)
	b.BreedingDate = domain.DateOnly(b.BreedingDate)
	b.Status = domain.BreedingUnconfirmed
	b.DecidedAt = nil
	b.CreatedAt = now
	b.UpdatedAt = now
	uc.fields["species"] = string(b.Species)

	if err = b.Validate(now); err != nil {
		return err
	}
	return s.breedings.Create(ctx, b)
}

// Confirm marks the breeding confirmed and opens its pregnancy in the same
// transaction.
func (s *breedingService) Confirm(ctx context.Context, id string) (resp *app.ConfirmBreedingResponse, err error) {
	uc := startUseCase(s.observer, "confirm-breeding")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBreedings := repository.NewSQLiteBreedingRepo(tx)
		txPregnancies := repository.NewSQLitePregnancyRepo(tx)

		b, err := txBreedings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := b.Confirm(now); err != nil {
			return err
		}

		existing, err := txPregnancies.GetOpenByDam(ctx, b.DamID)
		if err == nil {
			return fmt.Errorf("dam %s (pregnancy %s): %w", b.DamID, existing.ID, domain.ErrOpenPregnancyExists)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		p, err := domain.NewPregnancy(uuid.New().String(), b, now)
		if err != nil {
			return err
		}
		if err := txBreedings.UpdateStatus(ctx, b); err != nil {
			return err
		}
		if err := txPregnancies.Create(ctx, p); err != nil {
			return err
		}
		resp = &app.ConfirmBreedingResponse{Breeding: b, Pregnancy: p}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.fields["pregnancy_id"] = resp.Pregnancy.ID
	return resp, nil
}

func (s *breedingService) Reject(ctx context.Context, id string) (b *domain.BreedingEvent, err error) {
	uc := startUseCase(s.observer, "reject-breeding")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBreedings := repository.NewSQLiteBreedingRepo(tx)

		var err error
		if b, err = txBreedings.GetByID(ctx, id); err != nil {
			return err
		}
		if err := b.Reject(now); err != nil {
			return err
		}
		return txBreedings.UpdateStatus(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *breedingService) GetByID(ctx context.Context, id string) (*domain.BreedingEvent, error) {
	return s.breedings.GetByID(ctx, id)
}

func (s *breedingService) List(ctx context.Context, filter repository.BreedingFilter) ([]*domain.BreedingEvent, error) {
	return s.breedings.List(ctx, filter)
}

// Check classifies the breeding's 90-day confirmation check against today.
func (s *breedingService) Check(ctx context.Context, id string) (*domain.BreedingEvent, lifecycle.BreedingCheck, error) {
	b, err := s.breedings.GetByID(ctx, id)
	if err != nil {
		return nil, lifecycle.BreedingCheck{}, err
	}
	return b, lifecycle.ClassifyBreedingCheck(b.BreedingDate, s.opts.Now()), nil
}
