package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/alexanderramin/herdbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBreedingID(t *testing.T) {
	a := testApp(t, testutil.Date("2025-12-08"))
	ctx := context.Background()
	b := testutil.NewTestBreeding(testutil.Date("2025-09-15"))
	require.NoError(t, a.Breedings.Log(ctx, b))

	id, err := resolveBreedingID(ctx, a, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, id)

	id, err = resolveBreedingID(ctx, a, b.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, b.ID, id)

	_, err = resolveBreedingID(ctx, a, "zzzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = resolveBreedingID(ctx, a, "  ")
	assert.Error(t, err)
}

func TestResolvePregnancyID(t *testing.T) {
	a := testApp(t, testutil.Date("2025-12-08"))
	ctx := context.Background()
	p := seedPregnancy(t, a, "DOE-1", "2025-09-15")

	for _, input := range []string{p.ID, "DOE-1", p.ID[:8]} {
		id, err := resolvePregnancyID(ctx, a, input)
		require.NoError(t, err, input)
		assert.Equal(t, p.ID, id, input)
	}
}

func TestMatchPrefix(t *testing.T) {
	ids := []string{"abc123", "abd456", "ffff00"}

	id, err := matchPrefix("breeding", "ABC", ids)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = matchPrefix("breeding", "ab", ids)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous (2 matches)")

	_, err = matchPrefix("breeding", "99", ids)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppUseCaseOverrides(t *testing.T) {
	a := &App{}
	assert.Nil(t, a.logBreedingUseCase())
	assert.Nil(t, a.importHerdUseCase())

	stub := &stubReminders{}
	a.DueReminders = stub
	assert.Same(t, stub, a.remindersUseCase())
}

type stubReminders struct{}

func (*stubReminders) Due(context.Context, app.RemindersRequest) (*app.RemindersResponse, error) {
	return &app.RemindersResponse{}, nil
}
