package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)

func pregnancyTestSetup(t *testing.T) (*SQLitePregnancyRepo, *SQLiteBreedingRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLitePregnancyRepo(database), NewSQLiteBreedingRepo(database)
}

func TestPregnancyRepo_CreateAndGetByID(t *testing.T) {
	repo, breedings := pregnancyTestSetup(t)
	ctx := context.Background()

	b := testutil.NewTestBreeding(testutil.Date("2025-09-15"), testutil.WithBreedingStatus(domain.BreedingConfirmed))
	require.NoError(t, breedings.Create(ctx, b))

	p, err := domain.NewPregnancy("preg-1", b, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, "preg-1")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.BreedingID)
	assert.Equal(t, b.DamID, got.DamID)
	assert.Equal(t, domain.SpeciesGoat, got.Species)
	assert.Equal(t, testutil.Date("2025-09-15"), got.ConceptionDate)
	assert.Equal(t, domain.HealthGood, got.HealthStatus)
	assert.True(t, got.IsOpen())
	assert.Nil(t, got.BirthDate)
	assert.Empty(t, got.Checkups)
	assert.Empty(t, got.Offspring)
}

func TestPregnancyRepo_WithoutBreedingLink(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestPregnancy(testutil.Date("2025-06-01"))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.BreedingID)
}

func TestPregnancyRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPregnancyRepo_SecondOpenPregnancyRejected(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPregnancy(testutil.Date("2025-06-01"), testutil.WithPregnancyDam("DOE-1"))))

	err := repo.Create(ctx, testutil.NewTestPregnancy(testutil.Date("2025-07-01"), testutil.WithPregnancyDam("DOE-1")))
	assert.ErrorIs(t, err, domain.ErrOpenPregnancyExists)
}

func TestPregnancyRepo_GetOpenByDam(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestPregnancy(testutil.Date("2025-06-01"), testutil.WithPregnancyDam("DOE-1"))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetOpenByDam(ctx, "DOE-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetOpenByDam(ctx, "DOE-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPregnancyRepo_LedgersRoundTrip(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestPregnancy(testutil.Date("2025-09-15"))
	require.NoError(t, repo.Create(ctx, p))

	next := testutil.Date("2025-11-15")
	c := testutil.NewTestCheckup(testutil.Date("2025-10-15"), 3.5, 52)
	c.NextCheckupDate = &next
	c.HealthStatus = domain.HealthAttentionNeeded
	stored, err := p.AppendCheckup(c, testNow, nil)
	require.NoError(t, err)
	require.NoError(t, repo.InsertCheckup(ctx, stored))

	entry, err := p.AppendBCS(domain.BCSEntry{ID: "bcs-1", Date: testutil.Date("2025-11-20"), Score: 3}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.InsertBCS(ctx, entry))
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HealthAttentionNeeded, got.HealthStatus)
	require.NotNil(t, got.LastCheckupAt)

	require.Len(t, got.Checkups, 1)
	assert.Equal(t, 1, got.Checkups[0].Seq)
	assert.Equal(t, 3.5, got.Checkups[0].BCS)
	assert.Equal(t, 52.0, got.Checkups[0].WeightKg)
	require.NotNil(t, got.Checkups[0].NextCheckupDate)
	assert.Equal(t, next, *got.Checkups[0].NextCheckupDate)

	require.Len(t, got.BCSEntries, 1)
	assert.Equal(t, "Month 3", got.BCSEntries[0].MonthLabel)
	assert.Equal(t, 3.0, got.BCSEntries[0].Score)
}

func TestPregnancyRepo_BirthClosesRecord(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	p := testutil.NewTestPregnancy(testutil.Date("2025-07-01"), testutil.WithPregnancyDam("DOE-1"))
	require.NoError(t, repo.Create(ctx, p))

	outcome, err := p.RecordBirth(domain.BirthInput{
		RecordID:  "3f2a9c1e-0000-4000-8000-000000000000",
		BirthDate: testutil.Date("2025-11-28"),
		Offspring: []domain.OffspringInput{
			testutil.NewTestOffspring(domain.SexFemale, 3.2, domain.VigorStrong),
			testutil.NewTestOffspring(domain.SexMale, 2.9, domain.VigorWeak),
		},
		Calving: domain.CalvingMeta{Problem: domain.CalvingAssisted, Notes: "leg back"},
	}, testNow)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, p))
	for i := range outcome.Offspring {
		require.NoError(t, repo.InsertOffspring(ctx, &outcome.Offspring[i]))
	}

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen())
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, testutil.Date("2025-11-28"), *got.BirthDate)
	assert.Equal(t, domain.CalvingAssisted, got.Calving.Problem)
	assert.Equal(t, "leg back", got.Calving.Notes)
	require.Len(t, got.Offspring, 2)
	assert.Equal(t, "KID-3F2A9C1E-01", got.Offspring[0].TagID)
	assert.Equal(t, "KID-3F2A9C1E-02", got.Offspring[1].TagID)
	assert.Equal(t, domain.VigorWeak, got.Offspring[1].Vigor)

	// The dam is free for a new pregnancy once the old one is closed.
	require.NoError(t, repo.Create(ctx, testutil.NewTestPregnancy(testutil.Date("2025-12-01"), testutil.WithPregnancyDam("DOE-1"))))
}

func TestPregnancyRepo_List(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	closed := testutil.NewTestPregnancy(testutil.Date("2025-03-01"))
	require.NoError(t, repo.Create(ctx, closed))
	_, err := closed.RecordBirth(domain.BirthInput{
		RecordID:  "rec-closed",
		BirthDate: testutil.Date("2025-07-28"),
		Offspring: []domain.OffspringInput{testutil.NewTestOffspring(domain.SexFemale, 3, domain.VigorStrong)},
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, closed))

	later := testutil.NewTestPregnancy(testutil.Date("2025-10-01"))
	earlier := testutil.NewTestPregnancy(testutil.Date("2025-08-01"))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	open, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, earlier.ID, open[0].ID)
	assert.Equal(t, later.ID, open[1].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, closed.ID, all[0].ID)
}

func TestPregnancyRepo_Update_NotFound(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)

	err := repo.Update(context.Background(), testutil.NewTestPregnancy(testutil.Date("2025-08-01")))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPregnancyRepo_SpeciesAndHealthRoundTrip(t *testing.T) {
	repo, _ := pregnancyTestSetup(t)
	ctx := context.Background()

	ewe := testutil.NewTestPregnancy(testutil.Date("2025-07-01"),
		testutil.WithPregnancySpecies(domain.SpeciesSheep),
		testutil.WithHealth(domain.HealthCritical))
	cow := testutil.NewTestPregnancy(testutil.Date("2025-03-01"),
		testutil.WithPregnancySpecies(domain.SpeciesCattle),
		testutil.WithHealth(domain.HealthAttentionNeeded))
	require.NoError(t, repo.Create(ctx, ewe))
	require.NoError(t, repo.Create(ctx, cow))

	got, err := repo.GetByID(ctx, ewe.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SpeciesSheep, got.Species)
	assert.Equal(t, domain.HealthCritical, got.HealthStatus)

	got, err = repo.GetOpenByDam(ctx, cow.DamID)
	require.NoError(t, err)
	assert.Equal(t, domain.SpeciesCattle, got.Species)
	assert.Equal(t, domain.HealthAttentionNeeded, got.HealthStatus)
}
