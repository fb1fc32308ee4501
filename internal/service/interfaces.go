package service

import (
	"context"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/importer"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/repository"
)

type BreedingService interface {
	Log(ctx context.Context, b *domain.BreedingEvent) error
	Confirm(ctx context.Context, id string) (*app.ConfirmBreedingResponse, error)
	Reject(ctx context.Context, id string) (*domain.BreedingEvent, error)
	GetByID(ctx context.Context, id string) (*domain.BreedingEvent, error)
	List(ctx context.Context, filter repository.BreedingFilter) ([]*domain.BreedingEvent, error)
	Check(ctx context.Context, id string) (*domain.BreedingEvent, lifecycle.BreedingCheck, error)
}

type PregnancyService interface {
	GetByID(ctx context.Context, id string) (*domain.PregnancyRecord, error)
	GetOpenByDam(ctx context.Context, damID string) (*domain.PregnancyRecord, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.PregnancyRecord, error)
	View(ctx context.Context, id string) (*lifecycle.PregnancyView, error)
	ListViews(ctx context.Context, includeClosed bool) ([]*lifecycle.PregnancyView, error)
	AddCheckup(ctx context.Context, pregnancyID string, c domain.CheckupRecord) (*domain.CheckupRecord, error)
	AddBCS(ctx context.Context, pregnancyID string, e domain.BCSEntry) (*domain.BCSEntry, error)
	RecordBirth(ctx context.Context, req app.RecordBirthRequest) (*app.RecordBirthResponse, error)
}

type ReminderService interface {
	Due(ctx context.Context, req app.RemindersRequest) (*app.RemindersResponse, error)
}

type ImportService interface {
	ImportHerd(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportHerdFromSchema(ctx context.Context, schema *importer.HerdSchema) (*app.ImportResult, error)
}
