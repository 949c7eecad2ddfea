package games

import (
	"context"
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	newState := func(id, owner string) *game.State {
		state := game.NewState()
		state.ID = id
		state.OwnerID = owner
		return state
	}

	t.Run("save then get round-trips", func(t *testing.T) {
		repo := NewInMemoryRepository()

		state := newState("game-1", "user-1")
		state.Sheet.Name = "Elara"
		state.ChaosFactor = 7
		require.NoError(t, repo.Save(ctx, state))

		loaded, err := repo.Get(ctx, "game-1")
		require.NoError(t, err)
		assert.Equal(t, "Elara", loaded.Sheet.Name)
		assert.Equal(t, 7, loaded.ChaosFactor)
		assert.False(t, loaded.SavedAt.IsZero())

		// Mutating the loaded copy must not touch the stored snapshot.
		loaded.Sheet.Name = "Someone Else"
		again, err := repo.Get(ctx, "game-1")
		require.NoError(t, err)
		assert.Equal(t, "Elara", again.Sheet.Name)
	})

	t.Run("current save tracks the latest", func(t *testing.T) {
		repo := NewInMemoryRepository()

		require.NoError(t, repo.Save(ctx, newState("game-1", "user-1")))
		require.NoError(t, repo.Save(ctx, newState("game-2", "user-1")))

		current, err := repo.GetCurrent(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "game-2", current.ID)

		_, err = repo.GetCurrent(ctx, "user-2")
		assert.Error(t, err)
	})

	t.Run("list by owner", func(t *testing.T) {
		repo := NewInMemoryRepository()

		require.NoError(t, repo.Save(ctx, newState("game-1", "user-1")))
		require.NoError(t, repo.Save(ctx, newState("game-2", "user-1")))
		require.NoError(t, repo.Save(ctx, newState("game-3", "user-2")))

		states, err := repo.ListByOwner(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, states, 2)
	})

	t.Run("delete clears the current pointer", func(t *testing.T) {
		repo := NewInMemoryRepository()

		require.NoError(t, repo.Save(ctx, newState("game-1", "user-1")))
		require.NoError(t, repo.Delete(ctx, "game-1"))

		_, err := repo.Get(ctx, "game-1")
		assert.Error(t, err)
		_, err = repo.GetCurrent(ctx, "user-1")
		assert.Error(t, err)

		assert.Error(t, repo.Delete(ctx, "game-1"))
	})
}
