package app

import (
	"context"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/importer"
)

type LogBreedingUseCase interface {
	Log(ctx context.Context, b *domain.BreedingEvent) error
}

type ConfirmBreedingUseCase interface {
	Confirm(ctx context.Context, breedingID string) (*ConfirmBreedingResponse, error)
}

type RecordBirthUseCase interface {
	RecordBirth(ctx context.Context, req RecordBirthRequest) (*RecordBirthResponse, error)
}

type RemindersUseCase interface {
	Due(ctx context.Context, req RemindersRequest) (*RemindersResponse, error)
}

type ImportResult struct {
	BreedingCount  int
	PregnancyCount int
	CheckupCount   int
	BCSCount       int
}

type ImportHerdUseCase interface {
	ImportHerd(ctx context.Context, filePath string) (*ImportResult, error)
	ImportHerdFromSchema(ctx context.Context, schema *importer.HerdSchema) (*ImportResult, error)
}
