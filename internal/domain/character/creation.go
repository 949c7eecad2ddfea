package character

import (
	"fmt"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/dice"
)

// CreationStep identifies where a character creation flow currently stands
type CreationStep int

const (
	CreationStepRollStats CreationStep = iota + 1
	CreationStepAssignStats
	CreationStepChooseArchetype
	CreationStepFinalize
	CreationStepComplete
)

func (s CreationStep) String() string {
	switch s {
	case CreationStepRollStats:
		return "roll stats"
	case CreationStepAssignStats:
		return "assign stats"
	case CreationStepChooseArchetype:
		return "choose archetype"
	case CreationStepFinalize:
		return "finalize"
	case CreationStepComplete:
		return "complete"
	default:
		return fmt.Sprintf("unknown step %d", int(s))
	}
}

// CreationFlow walks a new character through the four creation steps:
// roll stats, assign stats, choose archetype, then name and starting gold.
// Steps must happen in order; each method guards against being called out
// of turn.
type CreationFlow struct {
	roller dice.Roller
	step   CreationStep
	rolled []int
	sheet  *Sheet
}

// NewCreationFlow starts a creation flow on a fresh initial sheet
func NewCreationFlow(roller dice.Roller) *CreationFlow {
	if roller == nil {
		panic("roller is required")
	}
	return &CreationFlow{
		roller: roller,
		step:   CreationStepRollStats,
		sheet:  NewSheet(),
	}
}

// Step returns the current creation step
func (f *CreationFlow) Step() CreationStep {
	return f.step
}

// RolledStats returns the six stat rolls, or nil before they are rolled
func (f *CreationFlow) RolledStats() []int {
	return append([]int{}, f.rolled...)
}

// Sheet returns a snapshot of the in-progress sheet
func (f *CreationFlow) Sheet() *Sheet {
	return f.sheet.Clone()
}

// RollStats rolls six ability scores, 4d6 drop lowest each
func (f *CreationFlow) RollStats() ([]int, error) {
	if f.step != CreationStepRollStats {
		return nil, internal.NewInvalidStateError(fmt.Sprintf("cannot roll stats during step %q", f.step))
	}

	rolled := make([]int, 6)
	for i := range rolled {
		result, err := f.roller.Roll(4, 6, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to roll stats: %w", err)
		}

		lowest := result.Rolls[0]
		for _, roll := range result.Rolls[1:] {
			if roll < lowest {
				lowest = roll
			}
		}
		rolled[i] = result.Total - lowest
	}

	f.rolled = rolled
	f.step = CreationStepAssignStats
	return f.RolledStats(), nil
}

// AssignStats assigns the six rolled values to the six abilities. The
// assignment must use exactly the rolled values, each once.
func (f *CreationFlow) AssignStats(assignment map[Ability]int) error {
	if f.step != CreationStepAssignStats {
		return internal.NewInvalidStateError(fmt.Sprintf("cannot assign stats during step %q", f.step))
	}

	if len(assignment) != len(Abilities) {
		return internal.NewInvalidParamError("all six abilities must be assigned")
	}

	// The assigned values must be a permutation of the rolled ones.
	remaining := make(map[int]int, len(f.rolled))
	for _, value := range f.rolled {
		remaining[value]++
	}
	for _, ability := range Abilities {
		value, ok := assignment[ability]
		if !ok {
			return internal.NewInvalidParamError(fmt.Sprintf("missing assignment for %s", ability))
		}
		if remaining[value] == 0 {
			return internal.NewInvalidParamError(fmt.Sprintf("%d is not an unused rolled value", value))
		}
		remaining[value]--
	}

	for ability, value := range assignment {
		f.sheet.Attributes.SetScore(ability, value)
	}
	f.step = CreationStepChooseArchetype
	return nil
}

// ChooseArchetype applies the archetype's score increases, proficiencies,
// speed and starting hit points. The Human Wizard must pick a spellcasting
// ability; every other archetype forces it to none.
func (f *CreationFlow) ChooseArchetype(archetype Archetype, spellcasting SpellcastingAbility) error {
	if f.step != CreationStepChooseArchetype {
		return internal.NewInvalidStateError(fmt.Sprintf("cannot choose archetype during step %q", f.step))
	}

	def, ok := GetArchetypeDefinition(archetype)
	if !ok {
		return internal.NewInvalidParamError(fmt.Sprintf("unknown archetype %q", archetype))
	}

	if archetype == ArchetypeHumanWizard {
		if spellcasting != SpellcastingIntelligence && spellcasting != SpellcastingWisdom {
			return internal.NewInvalidParamError("the Human Wizard must choose intelligence or wisdom for spellcasting")
		}
	} else {
		spellcasting = SpellcastingNone
	}

	f.sheet.Archetype = archetype
	f.sheet.SpellcastingAbility = spellcasting

	for ability, increase := range def.ScoreIncreases {
		f.sheet.Attributes.SetScore(ability, f.sheet.Attributes.Score(ability)+increase)
	}

	f.sheet.Proficiencies = append([]string{}, def.Proficiencies...)
	f.sheet.Speed = def.Speed

	maxHP := def.HitDie + Modifier(f.sheet.Attributes.Constitution)
	f.sheet.MaxHP = maxHP
	f.sheet.HP = maxHP

	f.step = CreationStepFinalize
	return nil
}

// Finish names the character, rolls starting gold (d10 x 10) and returns
// the completed, recalculated sheet
func (f *CreationFlow) Finish(name string) (*Sheet, error) {
	if f.step != CreationStepFinalize {
		return nil, internal.NewInvalidStateError(fmt.Sprintf("cannot finish creation during step %q", f.step))
	}
	if name == "" {
		return nil, internal.NewMissingParamError("name")
	}

	goldRoll, err := f.roller.RollDie(10)
	if err != nil {
		return nil, fmt.Errorf("failed to roll starting gold: %w", err)
	}

	f.sheet.Name = name
	f.sheet.Gold = goldRoll * 10

	f.sheet = Recalculate(f.sheet)
	f.step = CreationStepComplete
	return f.sheet.Clone(), nil
}
