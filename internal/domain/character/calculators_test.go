package character_test

import (
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestModifier(t *testing.T) {
	wantByScore := map[int]int{
		1: -5, 2: -4, 3: -4, 4: -3, 5: -3, 6: -2, 7: -2, 8: -1, 9: -1,
		10: 0, 11: 0, 12: 1, 13: 1, 14: 2, 15: 2, 16: 3, 17: 3, 18: 4,
		19: 4, 20: 5,
	}

	for score := 1; score <= 20; score++ {
		assert.Equal(t, wantByScore[score], character.Modifier(score), "score %d", score)
	}

	// Clamped outside the table
	assert.Equal(t, -5, character.Modifier(0))
	assert.Equal(t, -5, character.Modifier(-3))
	assert.Equal(t, 5, character.Modifier(25))
}

func TestProficiencyBonus(t *testing.T) {
	previous := 0
	for level := 1; level <= 20; level++ {
		bonus := character.ProficiencyBonus(level)
		assert.GreaterOrEqual(t, bonus, previous, "level %d", level)
		assert.Contains(t, []int{2, 3, 4, 5, 6}, bonus)
		previous = bonus
	}

	assert.Equal(t, 2, character.ProficiencyBonus(1))
	assert.Equal(t, 3, character.ProficiencyBonus(5))
	assert.Equal(t, 4, character.ProficiencyBonus(9))
	assert.Equal(t, 5, character.ProficiencyBonus(13))
	assert.Equal(t, 6, character.ProficiencyBonus(17))

	// Levels are clamped into [1, 20]
	assert.Equal(t, 2, character.ProficiencyBonus(0))
	assert.Equal(t, 6, character.ProficiencyBonus(99))
}

func TestRecalculate_Unarmored(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Dexterity = 16

	got := character.Recalculate(sheet)

	assert.Equal(t, 13, got.AC, "10 + dex modifier")
	assert.Equal(t, 3, got.Initiative)
	assert.Equal(t, 2, got.Proficiency)
}

func TestRecalculate_BestArmorWins(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Dexterity = 16 // +3

	leather, _ := character.FindArmor("Leather Armor")
	chainmail, _ := character.FindArmor("Chainmail Armor")
	sheet.Armor = []shared.ListItem{leather.Item(), chainmail.Item()}

	got := character.Recalculate(sheet)

	// Chainmail's -1 penalty is the worst equipped penalty, so the
	// effective dex modifier is +2. Leather at 12+2=14 ties fixed
	// chainmail 14; best single piece wins either way.
	assert.Equal(t, 14, got.AC)
	assert.Equal(t, 2, got.Initiative)
}

func TestRecalculate_HeavyArmorIgnoresDexterity(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Dexterity = 20 // +5

	platemail, _ := character.FindArmor("Platemail Armor")
	sheet.Armor = []shared.ListItem{platemail.Item()}

	got := character.Recalculate(sheet)

	assert.Equal(t, 15, got.AC)
	assert.Equal(t, 3, got.Initiative, "dex +5 with -2 penalty")
}

func TestRecalculate_WorstPenaltyOnlyNoStacking(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Dexterity = 14 // +2

	chainmail, _ := character.FindArmor("Chainmail Armor")
	platemail, _ := character.FindArmor("Platemail Armor")
	sheet.Armor = []shared.ListItem{chainmail.Item(), platemail.Item()}

	got := character.Recalculate(sheet)

	// Penalties are -1 and -2; only the -2 applies.
	assert.Equal(t, 0, got.Initiative)
	assert.Equal(t, 15, got.AC)
}

func TestRecalculate_WisdomArmor(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Wisdom = 16 // +3
	sheet.Attributes.Dexterity = 8

	cloak, _ := character.FindArmor("Moon Cloak")
	sheet.Armor = []shared.ListItem{cloak.Item()}

	got := character.Recalculate(sheet)

	assert.Equal(t, 14, got.AC, "11 + wis modifier")
}

func TestRecalculate_LevelOneHitPoints(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Archetype = character.ArchetypeDwarfFighter
	sheet.Attributes.Constitution = 14 // +2
	sheet.HP = 30

	got := character.Recalculate(sheet)

	assert.Equal(t, 14, got.MaxHP, "d12 hit die + con modifier")
	assert.Equal(t, 14, got.HP, "current HP clamps down to max, never up")
}

func TestRecalculate_NoArchetypeFallbackHP(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Constitution = 12 // +1

	got := character.Recalculate(sheet)

	assert.Equal(t, 11, got.MaxHP)
}

func TestRecalculate_LevelUpDoesNotTouchMaxHP(t *testing.T) {
	// Pins the current behavior: past level 1 max HP is left alone.
	sheet := character.NewSheet()
	sheet.Archetype = character.ArchetypeElfRanger
	sheet.Attributes.Constitution = 14
	sheet = character.Recalculate(sheet)
	levelOneMax := sheet.MaxHP

	sheet.Level = 5
	got := character.Recalculate(sheet)

	assert.Equal(t, levelOneMax, got.MaxHP)
	assert.Equal(t, 3, got.Proficiency, "proficiency still tracks level")
}

func TestRecalculate_Idempotent(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Archetype = character.ArchetypeElfRanger
	sheet.Attributes = character.Attributes{
		Strength: 12, Dexterity: 17, Constitution: 13,
		Intelligence: 9, Wisdom: 15, Charisma: 11,
	}
	leather, _ := character.FindArmor("Leather Armor")
	sheet.Armor = []shared.ListItem{leather.Item()}

	once := character.Recalculate(sheet)
	twice := character.Recalculate(once)
	thrice := character.Recalculate(twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, twice, thrice)
}

func TestRecalculate_DoesNotMutateInput(t *testing.T) {
	sheet := character.NewSheet()
	sheet.Attributes.Dexterity = 18
	before := *sheet

	_ = character.Recalculate(sheet)

	assert.Equal(t, before.AC, sheet.AC)
	assert.Equal(t, before.Initiative, sheet.Initiative)
}
