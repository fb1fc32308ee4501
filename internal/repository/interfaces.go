package repository

import (
	"context"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// BreedingFilter narrows BreedingRepo.List. Zero values match everything.
type BreedingFilter struct {
	DamID  string
	Status domain.BreedingStatus
}

type BreedingRepo interface {
	Create(ctx context.Context, b *domain.BreedingEvent) error
	GetByID(ctx context.Context, id string) (*domain.BreedingEvent, error)
	List(ctx context.Context, filter BreedingFilter) ([]*domain.BreedingEvent, error)
	UpdateStatus(ctx context.Context, b *domain.BreedingEvent) error
}

// PregnancyRepo loads pregnancies together with their checkup, BCS and
// offspring ledgers. Ledger rows are append-only.
type PregnancyRepo interface {
	Create(ctx context.Context, p *domain.PregnancyRecord) error
	GetByID(ctx context.Context, id string) (*domain.PregnancyRecord, error)
	GetOpenByDam(ctx context.Context, damID string) (*domain.PregnancyRecord, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.PregnancyRecord, error)
	Update(ctx context.Context, p *domain.PregnancyRecord) error
	InsertCheckup(ctx context.Context, c *domain.CheckupRecord) error
	InsertBCS(ctx context.Context, e *domain.BCSEntry) error
	InsertOffspring(ctx context.Context, o *domain.OffspringRecord) error
}
