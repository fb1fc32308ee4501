package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/herdbook/internal/db"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory
// so that the session survives across transactions exactly as a resumed herd
// file would.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite verifies that listing pregnancies while
// breedings are being confirmed never observes a half-written record.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	pregnancies := NewSQLitePregnancyRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			p := testutil.NewTestPregnancy(testutil.Date("2025-09-01"), testutil.WithPregnancyDam(fmt.Sprintf("DOE-%02d", i)))
			if err := pregnancies.Create(ctx, p); err != nil {
				t.Errorf("writer: create pregnancy %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				records, err := pregnancies.List(ctx, false)
				if err != nil {
					t.Errorf("reader %d: list pregnancies: %v", reader, err)
					return
				}
				for _, p := range records {
					if p.ID == "" || p.DamID == "" {
						t.Errorf("reader %d: got pregnancy with empty ID", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	records, err := pregnancies.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

// TestConcurrentAccess_OneOpenPregnancyPerDam races confirmations of several
// breedings for the same dam. Exactly one may open a pregnancy.
func TestConcurrentAccess_OneOpenPregnancyPerDam(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	breedings := NewSQLiteBreedingRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	const workers = 8
	ids := make([]string, workers)
	for i := range ids {
		b := testutil.NewTestBreeding(testutil.Date("2025-09-01"), testutil.WithDam("DOE-1"))
		require.NoError(t, breedings.Create(ctx, b))
		ids[i] = b.ID
	}

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			errCh <- uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				txBreedings := NewSQLiteBreedingRepo(tx)
				txPregnancies := NewSQLitePregnancyRepo(tx)

				b, err := txBreedings.GetByID(ctx, id)
				if err != nil {
					return err
				}
				if err := b.Confirm(testNow); err != nil {
					return err
				}
				if err := txBreedings.UpdateStatus(ctx, b); err != nil {
					return err
				}
				p, err := domain.NewPregnancy("preg-"+id, b, testNow)
				if err != nil {
					return err
				}
				return txPregnancies.Create(ctx, p)
			})
		}(ids[i])
	}
	wg.Wait()
	close(errCh)

	var ok, rejected int
	for err := range errCh {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrOpenPregnancyExists):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, rejected)

	// Rolled-back confirmations leave their breedings undecided.
	unconfirmed, err := breedings.List(ctx, BreedingFilter{DamID: "DOE-1", Status: domain.BreedingUnconfirmed})
	require.NoError(t, err)
	assert.Len(t, unconfirmed, workers-1)
}
