package testutils

import (
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// CreateTestSheet creates a fully formed post-creation character sheet
func CreateTestSheet(name string) *character.Sheet {
	sheet := character.NewSheet()
	sheet.Name = name
	sheet.Archetype = character.ArchetypeDwarfFighter
	sheet.Attributes = character.Attributes{
		Strength:     17,
		Dexterity:    14,
		Constitution: 14,
		Intelligence: 10,
		Wisdom:       12,
		Charisma:     8,
	}
	sheet.Proficiencies = []string{"Strength", "Dexterity"}
	sheet.Speed = 25
	sheet.Gold = 50
	sheet.MaxHP = 14
	sheet.HP = 14
	sheet.Weapons = []shared.ListItem{
		{Name: "Sword", Description: "Atk: d20+STR+Prof | Dmg: 2D6", AttackStat: shared.AttackStatStrength},
	}
	return character.Recalculate(sheet)
}

// CreateTestState creates a mid-adventure game state: a created character,
// an open thread, one NPC and a couple of journal entries
func CreateTestState(id, ownerID string) *gamestate.State {
	state := gamestate.NewState()
	state.ID = id
	state.OwnerID = ownerID
	state.Sheet = CreateTestSheet("Brondur")
	state.Threads = []shared.ListItem{
		{Name: "The missing caravan", Description: "Three wagons gone on the north road."},
	}
	state.NPCs = []shared.ListItem{
		{Name: "Maren", Description: "Innkeeper at the Split Oak."},
	}
	state.AppendJournal("> ask Maren about the caravan")
	state.AppendGM("Maren lowers her voice before she answers.")
	return state
}
