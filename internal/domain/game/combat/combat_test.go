package combat_test

import (
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet() *character.Sheet {
	sheet := character.NewSheet()
	sheet.Name = "Brondur"
	sheet.HP = 14
	sheet.MaxHP = 14
	sheet.AC = 15
	sheet.Initiative = 2
	sheet.Proficiency = 2
	sheet.Attributes.Strength = 17
	sheet.Attributes.Dexterity = 14
	return sheet
}

func goblinRoster(quantity int) []combat.EncounterMonster {
	goblin, _ := combat.FindMonster("Goblin")
	return []combat.EncounterMonster{{Monster: goblin, Quantity: quantity}}
}

func TestState_Start(t *testing.T) {
	t.Run("expands quantities and sorts by initiative", func(t *testing.T) {
		roller := dice.NewMockRoller()
		// Goblin 1 init 12, Goblin 2 init 18, player d20 5 (+2 = 7).
		roller.SetRolls([]int{12, 18, 5})

		state := combat.NewState()
		err := state.Start(goblinRoster(2), testSheet(), uuid.NewGoogleUUIDGenerator(), roller)
		require.NoError(t, err)

		assert.Equal(t, combat.StatusInCombat, state.Status)
		assert.Equal(t, 1, state.Round)
		assert.Equal(t, 0, state.Turn)
		require.Len(t, state.Combatants, 3)

		assert.Equal(t, "Goblin 2", state.Combatants[0].Name)
		assert.Equal(t, 18, state.Combatants[0].Initiative)
		assert.Equal(t, "Goblin 1", state.Combatants[1].Name)
		assert.Equal(t, "Brondur", state.Combatants[2].Name)
		assert.Equal(t, 7, state.Combatants[2].Initiative, "d20 plus initiative modifier")
		assert.True(t, state.Combatants[2].IsPlayer)

		assert.Equal(t, 7, state.Combatants[0].CurrentHP)
		assert.Equal(t, 15, state.Combatants[0].AC)
	})

	t.Run("single monster keeps its bare name", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10})

		state := combat.NewState()
		err := state.Start(goblinRoster(1), testSheet(), uuid.NewGoogleUUIDGenerator(), roller)
		require.NoError(t, err)

		assert.Equal(t, "Goblin", state.Combatants[0].Name)
	})

	t.Run("initiative ties keep insertion order", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10, 8}) // player 8+2 = 10 as well

		state := combat.NewState()
		err := state.Start(goblinRoster(2), testSheet(), uuid.NewGoogleUUIDGenerator(), roller)
		require.NoError(t, err)

		assert.Equal(t, "Goblin 1", state.Combatants[0].Name)
		assert.Equal(t, "Goblin 2", state.Combatants[1].Name)
		assert.Equal(t, "Brondur", state.Combatants[2].Name)
	})

	t.Run("empty roster rejected", func(t *testing.T) {
		state := combat.NewState()
		err := state.Start(nil, testSheet(), uuid.NewGoogleUUIDGenerator(), dice.NewMockRoller())
		assert.Error(t, err)
		assert.Equal(t, combat.StatusNotStarted, state.Status)
	})
}

func TestState_NextTurn(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{12, 18, 5})

	state := combat.NewState()
	require.NoError(t, state.Start(goblinRoster(2), testSheet(), uuid.NewGoogleUUIDGenerator(), roller))

	require.NoError(t, state.NextTurn())
	assert.Equal(t, 1, state.Turn)
	assert.Equal(t, 1, state.Round)

	require.NoError(t, state.NextTurn())
	assert.Equal(t, 2, state.Turn)

	require.NoError(t, state.NextTurn())
	assert.Equal(t, 0, state.Turn, "wraps to the top of the order")
	assert.Equal(t, 2, state.Round)

	// Down to one living combatant the next advance ends combat instead.
	state.Combatants[0].CurrentHP = 0
	state.Combatants[1].CurrentHP = 0
	require.NoError(t, state.NextTurn())
	assert.Equal(t, combat.StatusEnded, state.Status)

	err := state.NextTurn()
	assert.Error(t, err)
}

func TestState_PlayerAttack(t *testing.T) {
	sword := character.WeaponCatalog[len(character.WeaponCatalog)-1].Item() // Sword, 2D6, strength

	start := func(t *testing.T, roller *dice.MockRoller) *combat.State {
		t.Helper()
		state := combat.NewState()
		require.NoError(t, state.Start(goblinRoster(1), testSheet(), uuid.NewGoogleUUIDGenerator(), roller))
		return state
	}

	t.Run("hit rolls damage from the weapon description", func(t *testing.T) {
		roller := dice.NewMockRoller()
		// Initiative 10 and 10, attack d20 12, damage 2d6 = 4 + 3.
		roller.SetRolls([]int{10, 10, 12, 4, 3})
		state := start(t, roller)
		target := state.Combatants[0]

		result, err := state.PlayerAttack(testSheet(), sword, target.ID, roller)
		require.NoError(t, err)

		assert.True(t, result.Hit)
		assert.False(t, result.Critical)
		assert.Equal(t, 17, result.Total, "d20 12 + str mod 3 + prof 2")
		assert.Equal(t, "2D6", result.DamageExpression)
		assert.Equal(t, 7, result.Damage)
		assert.Equal(t, 0, target.CurrentHP)
	})

	t.Run("miss when total under AC", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10, 5}) // total 10 vs AC 15
		state := start(t, roller)
		target := state.Combatants[0]

		result, err := state.PlayerAttack(testSheet(), sword, target.ID, roller)
		require.NoError(t, err)

		assert.False(t, result.Hit)
		assert.Equal(t, 0, result.Damage)
		assert.Equal(t, 7, target.CurrentHP)
	})

	t.Run("natural 20 always hits and doubles damage", func(t *testing.T) {
		sheet := testSheet()
		sheet.Attributes.Strength = 1 // -5 modifier
		sheet.Proficiency = 0         // total 15 vs AC 17 would miss

		dragon, _ := combat.FindMonster("Little Dragon")
		roster := []combat.EncounterMonster{{Monster: dragon, Quantity: 1}}

		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10, 20, 2, 3}) // crit, 2d6 rolls 2+3
		state := combat.NewState()
		require.NoError(t, state.Start(roster, sheet, uuid.NewGoogleUUIDGenerator(), roller))
		target := state.Combatants[0]

		result, err := state.PlayerAttack(sheet, sword, target.ID, roller)
		require.NoError(t, err)

		assert.True(t, result.Hit, "natural 20 hits regardless of total")
		assert.True(t, result.Critical)
		assert.Equal(t, 10, result.Damage, "rolled once, doubled")
		assert.Equal(t, 28, target.CurrentHP)
	})

	t.Run("dexterity weapon attacks with dexterity", func(t *testing.T) {
		bow, ok := character.FindWeapon("Bow")
		require.True(t, ok)

		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10, 11, 8}) // d20 11 + dex mod 2 + prof 2 = 15, 1d8 = 8
		state := start(t, roller)
		target := state.Combatants[0]

		result, err := state.PlayerAttack(testSheet(), bow.Item(), target.ID, roller)
		require.NoError(t, err)

		assert.True(t, result.Hit)
		assert.Equal(t, 4, result.AttackBonus)
	})

	t.Run("downed target rejected", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10})
		state := start(t, roller)
		target := state.Combatants[0]
		target.CurrentHP = 0

		_, err := state.PlayerAttack(testSheet(), sword, target.ID, roller)
		assert.Error(t, err)
	})

	t.Run("unknown target rejected", func(t *testing.T) {
		roller := dice.NewMockRoller()
		roller.SetRolls([]int{10, 10})
		state := start(t, roller)

		_, err := state.PlayerAttack(testSheet(), sword, "no-such-id", roller)
		assert.Error(t, err)
	})
}

func TestState_ApplyDamage(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{12, 18, 5})

	state := combat.NewState()
	require.NoError(t, state.Start(goblinRoster(2), testSheet(), uuid.NewGoogleUUIDGenerator(), roller))

	first := state.Combatants[0]

	target := state.ApplyDamage(first.ID, 100)
	require.NotNil(t, target)
	assert.Equal(t, 0, target.CurrentHP, "damage floors at zero")
	assert.Equal(t, combat.StatusInCombat, state.Status, "one goblin still standing")

	// Repeating the overkill leaves HP at zero and logs no second defeat.
	state.ApplyDamage(first.ID, 100)
	assert.Equal(t, 0, target.CurrentHP)

	second := state.Combatants[1]
	state.ApplyDamage(second.ID, second.CurrentHP)
	assert.Equal(t, combat.StatusEnded, state.Status, "all monsters down ends combat")
}

func TestState_SyncPlayerHP(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{12, 18, 5})

	state := combat.NewState()
	require.NoError(t, state.Start(goblinRoster(2), testSheet(), uuid.NewGoogleUUIDGenerator(), roller))

	player := state.SyncPlayerHP(3)
	require.NotNil(t, player)
	assert.Equal(t, 3, player.CurrentHP)

	player = state.SyncPlayerHP(0)
	assert.Equal(t, 0, player.CurrentHP)
	assert.Equal(t, combat.StatusInCombat, state.Status, "player defeat does not end combat on its own")
}

func TestRosterHelpers(t *testing.T) {
	goblin, _ := combat.FindMonster("Goblin")
	wolf, _ := combat.FindMonster("Dire Wolf")

	roster := combat.AddToRoster(nil, goblin)
	roster = combat.AddToRoster(roster, goblin)
	roster = combat.AddToRoster(roster, wolf)

	require.Len(t, roster, 2)
	assert.Equal(t, 2, roster[0].Quantity)
	assert.Equal(t, 300, combat.RosterXP(roster))

	roster = combat.AdjustQuantity(roster, "Goblin", -1)
	assert.Equal(t, 1, roster[0].Quantity)

	roster = combat.AdjustQuantity(roster, "Goblin", -5)
	require.Len(t, roster, 1, "zero quantity entries drop out")
	assert.Equal(t, "Dire Wolf", roster[0].Monster.Name)

	roster = combat.RemoveFromRoster(roster, "Dire Wolf")
	assert.Empty(t, roster)
}
