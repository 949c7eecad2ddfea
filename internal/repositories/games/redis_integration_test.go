//go:build integration

package games

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhantomGM/mythic-bot/internal/testutils"
)

func TestRedisRepositoryIntegration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	state := testutils.CreateTestState("game-1", "owner-1")
	state.ChaosFactor = 7

	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Get(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", loaded.OwnerID)
	assert.Equal(t, 7, loaded.ChaosFactor)
	assert.Equal(t, "Brondur", loaded.Sheet.Name)
	assert.False(t, loaded.SavedAt.IsZero())

	current, err := repo.GetCurrent(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "game-1", current.ID)

	second := testutils.CreateTestState("game-2", "owner-1")
	require.NoError(t, repo.Save(ctx, second))

	states, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, states, 2)

	require.NoError(t, repo.Delete(ctx, "game-2"))

	states, err = repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, states, 1)

	// Deleting the current save clears the pointer too.
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Delete(ctx, "game-2"))
	_, err = repo.GetCurrent(ctx, "owner-1")
	assert.Error(t, err)
}
