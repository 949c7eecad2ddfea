package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/oracle"
	"github.com/PhantomGM/mythic-bot/internal/testutils"
	"github.com/PhantomGM/mythic-bot/internal/uuid"
)

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: &discordgo.User{ID: "guild-user"}},
		},
	}
	assert.Equal(t, "guild-user", interactionUserID(guild))

	dm := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "dm-user"},
		},
	}
	assert.Equal(t, "dm-user", interactionUserID(dm))
}

func TestResolveTarget(t *testing.T) {
	state := gamestate.NewState()
	state.Encounter = combat.AddToRoster(state.Encounter, combat.MonsterCatalog[0])
	state.Encounter = combat.AddToRoster(state.Encounter, combat.MonsterCatalog[0])

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{12, 18, 5})
	sheet := character.NewSheet()
	require.NoError(t, state.Combat.Start(state.Encounter, sheet, uuid.NewGoogleUUIDGenerator(), roller))

	// Order after initiative: Goblin 2 (18), Goblin 1 (12), Player (5).
	id, err := resolveTarget(state, "1")
	require.NoError(t, err)
	assert.Equal(t, state.Combat.Combatants[0].ID, id)

	id, err = resolveTarget(state, "goblin 1")
	require.NoError(t, err)
	assert.Equal(t, "Goblin 1", state.Combat.Combatant(id).Name)

	_, err = resolveTarget(state, "9")
	assert.Error(t, err)

	_, err = resolveTarget(state, "Beholder")
	assert.Error(t, err)
}

func TestFormatTestResult(t *testing.T) {
	result := &oracle.TestResult{
		Odds:        oracle.OddsFiftyFifty,
		ChaosFactor: 5,
		Roll:        40,
		Outcome:     oracle.OutcomeYes,
	}
	text := formatTestResult(result)
	assert.Contains(t, text, "**YES**")
	assert.Contains(t, text, "rolled 40 at 50/50, Chaos 5")
	assert.NotContains(t, text, "RANDOM EVENT")

	result.Outcome = oracle.OutcomeNo
	result.SceneAdjustment = "Add A Character"
	result.Event = &oracle.RandomEvent{
		Focus:          "New NPC",
		Meaning:        "Abandon Wound",
		Interpretation: "A stranger staggers in.",
	}
	text = formatTestResult(result)
	assert.Contains(t, text, "Altered Scene: **Add A Character**")
	assert.Contains(t, text, "RANDOM EVENT!")
	assert.Contains(t, text, "Focus: New NPC, Meaning: Abandon Wound")
	assert.Contains(t, text, "A stranger staggers in.")
}

func TestFormatAttack(t *testing.T) {
	hit := &combat.AttackResult{
		WeaponName:       "Sword",
		TargetName:       "Goblin",
		D20:              15,
		AttackBonus:      5,
		Total:            20,
		TargetAC:         15,
		Hit:              true,
		DamageExpression: "2D6",
		DamageRolls:      []int{4, 3},
		Damage:           7,
	}
	text := formatAttack(hit)
	assert.Contains(t, text, "**Sword** vs **Goblin**")
	assert.Contains(t, text, "Attack Roll: **20** (d20:15+5) vs AC 15")
	assert.Contains(t, text, "**HIT!**")
	assert.Contains(t, text, "Damage (2D6): **7**")

	miss := &combat.AttackResult{WeaponName: "Sword", TargetName: "Goblin", D20: 3, AttackBonus: 5, Total: 8, TargetAC: 15}
	assert.Contains(t, formatAttack(miss), "**MISS!**")

	crit := &combat.AttackResult{
		WeaponName: "Sword", TargetName: "Goblin", D20: 20, AttackBonus: 5, Total: 25, TargetAC: 15,
		Hit: true, Critical: true, DamageExpression: "2D6", DamageRolls: []int{6, 5}, Damage: 22,
		TargetDefeated: true,
	}
	text = formatAttack(crit)
	assert.Contains(t, text, "**CRITICAL HIT!**")
	assert.Contains(t, text, "Goblin has been defeated!")
}

func TestBuildSheetEmbed(t *testing.T) {
	sheet := testutils.CreateTestSheet("Brondur")
	embed := buildSheetEmbed(sheet)

	assert.Equal(t, "🎭 Brondur", embed.Title)

	values := map[string]string{}
	for _, field := range embed.Fields {
		values[field.Name] = field.Value
	}
	assert.Contains(t, values["Class"], "Dwarf Fighter")
	assert.Contains(t, values["❤️ HP"], "14/14")
	assert.Contains(t, values["Attributes"], "STR 17 (+3)")
	assert.Contains(t, values["⚔️ Weapons"], "Sword")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "Strength")

	unnamed := buildSheetEmbed(character.NewSheet())
	assert.Equal(t, "🎭 Unnamed Adventurer", unnamed.Title)
}

func TestBuildCombatEmbed(t *testing.T) {
	assert.Contains(t, buildCombatEmbed(combat.NewState()).Description, "No combat in progress")

	state := combat.NewState()
	roster := combat.AddToRoster(nil, combat.MonsterCatalog[0])
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{12, 5})
	require.NoError(t, state.Start(roster, testutils.CreateTestSheet("Brondur"), uuid.NewGoogleUUIDGenerator(), roller))

	embed := buildCombatEmbed(state)
	assert.Equal(t, "⚔️ Combat: Round 1", embed.Title)
	assert.Contains(t, embed.Description, "▶️ 1. **Goblin**")
	assert.Contains(t, embed.Description, "**Brondur**")

	state.End()
	assert.Contains(t, buildCombatEmbed(state).Description, "Combat has ended")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Fantasy", "Mystery"}, splitList("Fantasy, Mystery"))
	assert.Equal(t, []string{"Horror"}, splitList(" Horror ,, "))
	assert.Empty(t, splitList(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := truncate("abcdefghij", 5)
	assert.Len(t, []byte(long), 5)
	assert.Contains(t, long, "…")

	assert.Equal(t, "tail", tail("long tail", 4))
	assert.Equal(t, "all", tail("all", 10))
}
