package favorites

import (
	"context"
	"testing"

	"github.com/ngmaloney/area-weather/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestRepository_CreateAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "4", "Kimironko")
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "4", first.WeatherID)
	assert.Equal(t, "Kimironko", first.AreaName)

	second, err := repo.Create(ctx, "2", "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, "2", second.ID)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].WeatherID)
	assert.Equal(t, "2", got[1].WeatherID)
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got, "empty list should encode as [] not null")
	assert.Empty(t, got)
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "4", "Kimironko")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "4", "Kimironko")
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1, "duplicate must not create a second entry")
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	f, err := repo.Create(ctx, "4", "Kimironko")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, f.ID))
	assert.ErrorIs(t, repo.Delete(ctx, f.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "not-a-number"), ErrNotFound)

	// Weather id is free again after deletion
	again, err := repo.Create(ctx, "4", "Kimironko")
	require.NoError(t, err)
	assert.NotEqual(t, f.ID, again.ID)
}
