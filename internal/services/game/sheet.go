package game

import (
	"context"
	"fmt"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/services/narrator"
)

func (s *service) StartCreation(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session(ownerID); err != nil {
		return err
	}

	s.creations[ownerID] = character.NewCreationFlow(s.roller)
	return nil
}

func (s *service) creation(ownerID string) (*character.CreationFlow, error) {
	flow, ok := s.creations[ownerID]
	if !ok {
		return nil, internal.NewInvalidStateError("character creation has not been started")
	}
	return flow, nil
}

func (s *service) RollCreationStats(ctx context.Context, ownerID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, err := s.creation(ownerID)
	if err != nil {
		return nil, err
	}
	return flow.RollStats()
}

func (s *service) AssignCreationStats(ctx context.Context, ownerID string, assignment map[character.Ability]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, err := s.creation(ownerID)
	if err != nil {
		return err
	}
	return flow.AssignStats(assignment)
}

func (s *service) ChooseCreationArchetype(ctx context.Context, ownerID string, archetype character.Archetype, spellcasting character.SpellcastingAbility) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, err := s.creation(ownerID)
	if err != nil {
		return err
	}
	return flow.ChooseArchetype(archetype, spellcasting)
}

func (s *service) FinishCreation(ctx context.Context, ownerID, name string) (*character.Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	flow, err := s.creation(ownerID)
	if err != nil {
		return nil, err
	}

	sheet, err := flow.Finish(name)
	if err != nil {
		return nil, err
	}

	state.Sheet = sheet
	delete(s.creations, ownerID)

	state.AppendJournal(fmt.Sprintf("-- %s the %s enters the story --", sheet.Name, sheet.Archetype))

	return sheet, nil
}

// UpdateSheetInput carries sheet edits; nil fields stay untouched. Derived
// stats are recomputed after the edits land.
type UpdateSheetInput struct {
	OwnerID string

	Name        *string
	Description *string
	Age         *string
	Gender      *string
	Pronouns    *string
	Notes       *string

	Level               *int
	SpellcastingAbility *character.SpellcastingAbility
	Attributes          map[character.Ability]int
}

func (s *service) UpdateSheet(ctx context.Context, input *UpdateSheetInput) (*character.Sheet, error) {
	if input == nil {
		return nil, internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	sheet := state.Sheet
	if input.Name != nil {
		sheet.Name = *input.Name
	}
	if input.Description != nil {
		sheet.Description = *input.Description
	}
	if input.Age != nil {
		sheet.Age = *input.Age
	}
	if input.Gender != nil {
		sheet.Gender = *input.Gender
	}
	if input.Pronouns != nil {
		sheet.Pronouns = *input.Pronouns
	}
	if input.Notes != nil {
		sheet.Notes = *input.Notes
	}
	if input.Level != nil {
		if *input.Level < 1 {
			return nil, internal.NewInvalidParamError("level must be at least 1")
		}
		sheet.Level = *input.Level
	}
	if input.SpellcastingAbility != nil {
		sheet.SpellcastingAbility = *input.SpellcastingAbility
	}
	for ability, score := range input.Attributes {
		sheet.Attributes.SetScore(ability, score)
	}

	state.Sheet = character.Recalculate(sheet)
	return state.Sheet, nil
}

func (s *service) SetHP(ctx context.Context, ownerID string, hp int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return 0, err
	}

	clamped := state.Sheet.ClampHP(hp)
	state.Sheet.HP = clamped
	state.Combat.SyncPlayerHP(clamped)
	state.Combat.Log = nil

	if clamped == 0 {
		state.AppendJournal(fmt.Sprintf("-- %s has been defeated! --", state.Sheet.Name))
	}

	return clamped, nil
}

func (s *service) DescribeCharacter(ctx context.Context, ownerID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return "", err
	}

	description, err := s.narrator.DescribeCharacter(ctx, &narrator.DescribeCharacterInput{
		Settings: state.Settings,
		Name:     state.Sheet.Name,
	})
	if err != nil {
		return "", err
	}

	if state.Sheet.Name != "" {
		state.Sheet.Description = description
	}
	return description, nil
}
