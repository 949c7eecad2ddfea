package game_test

import (
	"encoding/json"
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	state := game.NewState()

	assert.Equal(t, 5, state.ChaosFactor)
	assert.Equal(t, "Play", state.ActiveTab)
	assert.Equal(t, []string{"Fantasy"}, state.Settings.Genres)
	assert.Equal(t, "Default (Balanced)", state.Settings.GMTone)
	require.NotNil(t, state.Sheet)
	assert.False(t, state.Sheet.IsCreated())
	require.NotNil(t, state.Combat)
	assert.Equal(t, combat.StatusNotStarted, state.Combat.Status)
}

func TestState_Normalize(t *testing.T) {
	t.Run("empty snapshot defaults every field", func(t *testing.T) {
		var state game.State
		require.NoError(t, json.Unmarshal([]byte(`{}`), &state))
		state.Normalize()

		assert.Equal(t, 5, state.ChaosFactor)
		assert.Equal(t, "Play", state.ActiveTab)
		assert.NotNil(t, state.Sheet)
		assert.NotNil(t, state.Threads)
		assert.NotNil(t, state.NPCs)
		assert.NotNil(t, state.Party)
		assert.NotNil(t, state.Encounter)
		require.NotNil(t, state.Combat)
		assert.Equal(t, combat.StatusNotStarted, state.Combat.Status)
		assert.Equal(t, "Default (Balanced)", state.Settings.GMTone)
	})

	t.Run("present fields survive untouched", func(t *testing.T) {
		var state game.State
		data := `{"chaos_factor": 8, "journal": "It begins.\n\n", "game_settings": {"genres": ["Horror"], "gm_tone": "Mysterious and Eerie"}}`
		require.NoError(t, json.Unmarshal([]byte(data), &state))
		state.Normalize()

		assert.Equal(t, 8, state.ChaosFactor)
		assert.Equal(t, "It begins.\n\n", state.Journal)
		assert.Equal(t, []string{"Horror"}, state.Settings.Genres)
		assert.Equal(t, "Mysterious and Eerie", state.Settings.GMTone)
	})

	t.Run("mid-combat snapshot gets round one back", func(t *testing.T) {
		var state game.State
		data := `{"combat": {"status": "in_combat", "combatants": [{"id": "a", "name": "Goblin", "current_hp": 7}]}}`
		require.NoError(t, json.Unmarshal([]byte(data), &state))
		state.Normalize()

		assert.Equal(t, combat.StatusInCombat, state.Combat.Status)
		assert.Equal(t, 1, state.Combat.Round)
	})
}

func TestState_RoundTrip(t *testing.T) {
	state := game.NewState()
	state.OwnerID = "user-123"
	state.ChaosFactor = 7
	state.Sheet.Name = "Brondur"
	state.AppendJournal("-- COMBAT STARTED! INITIATIVE ORDER --")
	state.AppendGM("The goblin snarls.")
	state.PendingCheck = &game.PendingCheck{Action: "climb the wall", Proficiency: "Strength", DC: 13}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var loaded game.State
	require.NoError(t, json.Unmarshal(data, &loaded))
	loaded.Normalize()

	assert.Equal(t, state.OwnerID, loaded.OwnerID)
	assert.Equal(t, 7, loaded.ChaosFactor)
	assert.Equal(t, "Brondur", loaded.Sheet.Name)
	assert.Contains(t, loaded.Journal, "GM: The goblin snarls.")
	require.NotNil(t, loaded.PendingCheck)
	assert.Equal(t, 13, loaded.PendingCheck.DC)
}
