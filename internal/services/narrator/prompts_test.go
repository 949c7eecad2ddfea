package narrator

import (
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMSystemInstruction(t *testing.T) {
	settings := game.Settings{
		Genres:        []string{"Fantasy", "Horror"},
		GMTone:        "Gritty and Dangerous",
		GameplayFocus: []string{"Exploration"},
		Lines:         "harm to animals",
	}
	sheet := character.NewSheet()
	sheet.Name = "Brondur"
	sheet.Description = "A scarred dwarf."
	sheet.Archetype = character.ArchetypeDwarfFighter
	threads := []shared.ListItem{{Name: "The missing caravan", Description: "Vanished on the north road."}}

	instruction := gmSystemInstruction(settings, sheet, threads, nil)

	assert.Contains(t, instruction, "Genres: Fantasy, Horror")
	assert.Contains(t, instruction, "GM Tone: Gritty and Dangerous")
	assert.Contains(t, instruction, "Lines (Content to Exclude): harm to animals")
	assert.Contains(t, instruction, "Veils (Content to Fade to Black): None")
	assert.Contains(t, instruction, "Player Character (Brondur):")
	assert.Contains(t, instruction, "- Archetype: Dwarf Fighter")
	assert.Contains(t, instruction, "- The missing caravan: Vanished on the north road.")
	assert.Contains(t, instruction, "No key NPCs.")
	assert.Contains(t, instruction, `"requires_check"`)
}

func TestGMSystemInstruction_EmptyLists(t *testing.T) {
	instruction := gmSystemInstruction(game.DefaultSettings(), character.NewSheet(), nil, nil)

	assert.Contains(t, instruction, "No active threads.")
	assert.Contains(t, instruction, "Gameplay Focus: Role-Playing")
}

func TestElaboratePrompt(t *testing.T) {
	withDescription := elaboratePrompt("Thread", "The missing caravan", "It vanished.")
	assert.Contains(t, withDescription, `Item Name: "The missing caravan"`)
	assert.Contains(t, withDescription, `User-provided description: "It vanished."`)

	withoutDescription := elaboratePrompt("NPC", "Old Marta", "")
	assert.NotContains(t, withoutDescription, "User-provided description")
}

func TestParseCheck(t *testing.T) {
	t.Run("numeric dc", func(t *testing.T) {
		check, ok := ParseCheck(`{"requires_check": {"action": "climb the wall", "proficiency": "Strength", "dc": 13}}`)
		require.True(t, ok)
		assert.Equal(t, "climb the wall", check.Action)
		assert.Equal(t, "Strength", check.Proficiency)
		assert.Equal(t, 13, check.DC)
	})

	t.Run("quoted dc", func(t *testing.T) {
		check, ok := ParseCheck(`{"requires_check": {"action": "pick the lock", "proficiency": "Dexterity", "dc": "15"}}`)
		require.True(t, ok)
		assert.Equal(t, 15, check.DC)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		_, ok := ParseCheck("\n  {\"requires_check\": {\"action\": \"a\", \"proficiency\": \"Wisdom\", \"dc\": 10}}  \n")
		assert.True(t, ok)
	})

	t.Run("plain narration is not a check", func(t *testing.T) {
		_, ok := ParseCheck("The goblin snarls and lunges at you.")
		assert.False(t, ok)
	})

	t.Run("other json is not a check", func(t *testing.T) {
		_, ok := ParseCheck(`{"outcome": "yes"}`)
		assert.False(t, ok)
	})
}
