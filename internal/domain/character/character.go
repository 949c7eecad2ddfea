package character

import (
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// SpellcastingAbility is only meaningful for the Human Wizard archetype
type SpellcastingAbility string

const (
	SpellcastingNone         SpellcastingAbility = "none"
	SpellcastingIntelligence SpellcastingAbility = "intelligence"
	SpellcastingWisdom       SpellcastingAbility = "wisdom"
)

// Sheet is the player character sheet. The derived stats (Proficiency,
// Initiative, AC, MaxHP) are a pure function of level, attributes and equipped
// armor; callers must run Recalculate after mutating any of those three and
// never set the derived fields directly.
type Sheet struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Archetype Archetype `json:"archetype"`
	Level     int       `json:"level"`

	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Pronouns string `json:"pronouns"`

	SpellcastingAbility SpellcastingAbility `json:"spellcasting_ability"`
	Attributes          Attributes          `json:"attributes"`

	HP          int `json:"hp"`
	MaxHP       int `json:"max_hp"`
	AC          int `json:"ac"`
	Initiative  int `json:"initiative"`
	Speed       int `json:"speed"`
	Proficiency int `json:"proficiency"`
	Gold        int `json:"gold"`

	Proficiencies []string `json:"proficiencies"`

	Weapons   []shared.ListItem `json:"weapons"`
	Armor     []shared.ListItem `json:"armor"`
	Spells    []shared.ListItem `json:"spells"`
	Inventory []shared.ListItem `json:"inventory"`

	Notes string `json:"notes"`
}

// NewSheet returns the initial, pre-creation character sheet:
// no archetype, all attributes at 10, HP 10/10.
func NewSheet() *Sheet {
	return &Sheet{
		Archetype:           ArchetypeNone,
		Level:               1,
		SpellcastingAbility: SpellcastingNone,
		Attributes: Attributes{
			Strength:     10,
			Dexterity:    10,
			Constitution: 10,
			Intelligence: 10,
			Wisdom:       10,
			Charisma:     10,
		},
		HP:            10,
		MaxHP:         10,
		AC:            10,
		Initiative:    0,
		Speed:         30,
		Proficiency:   2,
		Gold:          0,
		Proficiencies: []string{},
		Weapons:       []shared.ListItem{},
		Armor:         []shared.ListItem{},
		Spells:        []shared.ListItem{},
		Inventory:     []shared.ListItem{},
	}
}

// Clone returns a deep copy of the sheet
func (s *Sheet) Clone() *Sheet {
	out := *s
	out.Proficiencies = append([]string{}, s.Proficiencies...)
	out.Weapons = append([]shared.ListItem{}, s.Weapons...)
	out.Armor = append([]shared.ListItem{}, s.Armor...)
	out.Spells = append([]shared.ListItem{}, s.Spells...)
	out.Inventory = append([]shared.ListItem{}, s.Inventory...)
	return &out
}

// IsCreated reports whether the sheet has been through character creation
func (s *Sheet) IsCreated() bool {
	return s.Archetype != ArchetypeNone
}

// ClampHP clamps a requested hit point value into [0, MaxHP]
func (s *Sheet) ClampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	if hp > s.MaxHP {
		return s.MaxHP
	}
	return hp
}
