package character

// Archetype is the character class template. None is the uninitialized sentinel.
type Archetype string

const (
	ArchetypeNone         Archetype = "None"
	ArchetypeDwarfFighter Archetype = "Dwarf Fighter"
	ArchetypeElfRanger    Archetype = "Elf Ranger"
	ArchetypeHumanWizard  Archetype = "Human Wizard"
)

// PlayableArchetypes lists the archetypes a player can choose during creation
var PlayableArchetypes = []Archetype{
	ArchetypeDwarfFighter,
	ArchetypeElfRanger,
	ArchetypeHumanWizard,
}

// ArchetypeDefinition holds the static data for one archetype
type ArchetypeDefinition struct {
	HitDie         int
	Speed          int
	Proficiencies  []string
	ScoreIncreases map[Ability]int
}

// archetypeDefinitions is the One Page 5e archetype table.
// Score increases are applied once, at creation.
var archetypeDefinitions = map[Archetype]ArchetypeDefinition{
	ArchetypeDwarfFighter: {
		HitDie:         12,
		Speed:          25,
		Proficiencies:  []string{"Strength", "Dexterity"},
		ScoreIncreases: map[Ability]int{AbilityStrength: 2},
	},
	ArchetypeElfRanger: {
		HitDie:         10,
		Speed:          35,
		Proficiencies:  []string{"Dexterity", "Wisdom"},
		ScoreIncreases: map[Ability]int{AbilityDexterity: 2},
	},
	ArchetypeHumanWizard: {
		HitDie:         10,
		Speed:          30,
		Proficiencies:  []string{"Intelligence", "Wisdom"},
		ScoreIncreases: map[Ability]int{AbilityIntelligence: 2, AbilityWisdom: 2},
	},
}

// GetArchetypeDefinition returns the static definition for an archetype.
// Returns false for ArchetypeNone and unknown values.
func GetArchetypeDefinition(archetype Archetype) (ArchetypeDefinition, bool) {
	def, ok := archetypeDefinitions[archetype]
	return def, ok
}
