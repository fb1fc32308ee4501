package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/importer"
	"github.com/alexanderramin/herdbook/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	opts     Options
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, opts Options, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		opts:     opts.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportHerd(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadHerdSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading herd file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportHerdFromSchema(ctx context.Context, schema *importer.HerdSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema validates the whole snapshot up front, then writes it in one
// transaction.
func (s *importService) importSchema(ctx context.Context, schema *importer.HerdSchema) (result *app.ImportResult, err error) {
	uc := startUseCase(s.observer, "import-herd")
	defer uc.done(ctx, &err)

	now := s.opts.Now()
	if errs := importer.ValidateHerdSchema(schema, now); len(errs) > 0 {
		uc.fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	snap, err := importer.Convert(schema, now)
	if err != nil {
		return nil, fmt.Errorf("converting herd file: %w", err)
	}

	result = &app.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBreedings := repository.NewSQLiteBreedingRepo(tx)
		txPregnancies := repository.NewSQLitePregnancyRepo(tx)

		for _, b := range snap.Breedings {
			if err := txBreedings.Create(ctx, b); err != nil {
				return fmt.Errorf("creating breeding for dam %s: %w", b.DamID, err)
			}
			result.BreedingCount++
		}
		for _, p := range snap.Pregnancies {
			if err := txPregnancies.Create(ctx, p); err != nil {
				return fmt.Errorf("creating pregnancy for dam %s: %w", p.DamID, err)
			}
			for i := range p.Checkups {
				if err := txPregnancies.InsertCheckup(ctx, &p.Checkups[i]); err != nil {
					return err
				}
				result.CheckupCount++
			}
			for i := range p.BCSEntries {
				if err := txPregnancies.InsertBCS(ctx, &p.BCSEntries[i]); err != nil {
					return err
				}
				result.BCSCount++
			}
			result.PregnancyCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.fields["breedings"] = result.BreedingCount
	uc.fields["pregnancies"] = result.PregnancyCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("herd validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
