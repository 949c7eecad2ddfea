package game

import (
	"context"
	"fmt"

	internal "github.com/PhantomGM/mythic-bot/internal"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

func (s *service) AddMonster(ctx context.Context, ownerID, monsterName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return err
	}

	monster, ok := combat.FindMonster(monsterName)
	if !ok {
		return internal.NewNotFoundError(fmt.Sprintf("monster %q", monsterName))
	}

	state.Encounter = combat.AddToRoster(state.Encounter, monster)
	return nil
}

func (s *service) AdjustMonster(ctx context.Context, ownerID, monsterName string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return err
	}

	state.Encounter = combat.AdjustQuantity(state.Encounter, monsterName, delta)
	return nil
}

func (s *service) ClearEncounter(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return err
	}

	state.Encounter = []combat.EncounterMonster{}
	return nil
}

func (s *service) StartCombat(ctx context.Context, ownerID string) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	// Re-arm the state machine when the last fight is over.
	if state.Combat.Status == combat.StatusEnded {
		state.Combat = combat.NewState()
	}

	if err := state.Combat.Start(state.Encounter, state.Sheet, s.uuidGenerator, s.roller); err != nil {
		return nil, err
	}

	s.flushCombatLog(state)
	state.ActiveTab = "Play"

	return state, nil
}

func (s *service) NextTurn(ctx context.Context, ownerID string) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	if err := state.Combat.NextTurn(); err != nil {
		return nil, err
	}

	s.flushCombatLog(state)
	return state, nil
}

// AttackInput is one player attack in the running combat
type AttackInput struct {
	OwnerID    string
	WeaponName string
	TargetID   string
}

// AttackOutput pairs the attack resolution with the combat state after it
type AttackOutput struct {
	Result *combat.AttackResult
	State  *gamestate.State
}

func (s *service) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var weapon shared.ListItem
	found := false
	for _, w := range state.Sheet.Weapons {
		if w.Name == input.WeaponName {
			weapon = w
			found = true
			break
		}
	}
	if !found {
		return nil, internal.NewNotFoundError(fmt.Sprintf("weapon %q on the sheet", input.WeaponName))
	}

	result, err := state.Combat.PlayerAttack(state.Sheet, weapon, input.TargetID, s.roller)
	if err != nil {
		return nil, err
	}

	s.flushCombatLog(state)
	return &AttackOutput{Result: result, State: state}, nil
}

func (s *service) ApplyDamage(ctx context.Context, ownerID, targetID string, damage int) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	if state.Combat.Status != combat.StatusInCombat {
		return nil, internal.NewInvalidStateError("no combat in progress")
	}

	target := state.Combat.ApplyDamage(targetID, damage)
	if target == nil {
		return nil, internal.NewNotFoundError(fmt.Sprintf("combatant %s", targetID))
	}

	// Damage to the player flows back onto the sheet.
	if target.IsPlayer {
		state.Sheet.HP = state.Sheet.ClampHP(target.CurrentHP)
	}

	s.flushCombatLog(state)
	return state, nil
}

// flushCombatLog moves freshly appended combat log lines into the journal so
// the adventure log stays the single narrative record
func (s *service) flushCombatLog(state *gamestate.State) {
	for _, entry := range state.Combat.Log {
		state.AppendJournal(entry)
	}
	state.Combat.Log = nil
}
