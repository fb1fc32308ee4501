package service

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/alexanderramin/herdbook/internal/testutil"
)

var testNow = time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)

type testServices struct {
	sqlDB         *sql.DB
	breedingRepo  *repository.SQLiteBreedingRepo
	pregnancyRepo *repository.SQLitePregnancyRepo
	uow           db.UnitOfWork
	opts          Options
	logs          *bytes.Buffer

	breedings   BreedingService
	pregnancies PregnancyService
	reminders   ReminderService
	imports     ImportService
}

// setupServices wires every service over a fresh in-memory store with the
// clock pinned at now.
func setupServices(t *testing.T, now time.Time) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	logs := &bytes.Buffer{}

	s := &testServices{
		sqlDB:         database,
		breedingRepo:  repository.NewSQLiteBreedingRepo(database),
		pregnancyRepo: repository.NewSQLitePregnancyRepo(database),
		uow:           testutil.NewTestUoW(database),
		logs:          logs,
		opts: Options{
			Now:    func() time.Time { return now },
			Logger: slog.New(slog.NewTextHandler(logs, nil)),
		},
	}
	s.breedings = NewBreedingService(s.breedingRepo, s.uow, s.opts)
	s.pregnancies = NewPregnancyService(s.pregnancyRepo, s.uow, s.opts)
	s.reminders = NewReminderService(s.breedingRepo, s.pregnancyRepo, s.opts)
	s.imports = NewImportService(s.uow, s.opts)
	return s
}
