package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/oracle"
	"github.com/PhantomGM/mythic-bot/internal/services/narrator"
)

// TestSceneInput asks the oracle whether the expected scene plays out
type TestSceneInput struct {
	OwnerID  string
	Expected string
	Odds     oracle.Odds // empty picks odds at random
}

// EndSceneInput closes the current scene
type EndSceneInput struct {
	OwnerID      string
	WasInControl bool
}

// NarrateResult is either prose or a demand for a proficiency check
type NarrateResult struct {
	Reply string
	Check *gamestate.PendingCheck
}

// CheckResult is a resolved proficiency check plus the narration it fed
type CheckResult struct {
	Check   gamestate.PendingCheck
	Roll    int
	Total   int
	Success bool
	Reply   string
}

func (s *service) TestScene(ctx context.Context, input *TestSceneInput) (*oracle.TestResult, error) {
	if input == nil {
		return nil, internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	engine := oracle.New(s.roller)

	var result *oracle.TestResult
	if input.Odds == "" {
		result, err = engine.TestRandomOdds(state.ChaosFactor)
	} else {
		result, err = engine.Test(input.Odds, state.ChaosFactor)
	}
	if err != nil {
		return nil, err
	}

	if input.Expected != "" {
		state.ExpectedScene = input.Expected
	}

	resultText := string(result.Outcome)
	if result.SceneAdjustment != "" {
		resultText += fmt.Sprintf(" (Altered Scene: %s)", result.SceneAdjustment)
	}
	state.AppendJournal(fmt.Sprintf("(Test: %q at Chaos %d, Odds: %s, d100:%d) -> %s",
		state.ExpectedScene, state.ChaosFactor, result.Odds, result.Roll, resultText))

	if result.Event != nil {
		state.AppendJournal(fmt.Sprintf("-- RANDOM EVENT! Focus: %s, Meaning: %s --",
			result.Event.Focus, result.Event.Meaning))

		interpretation, err := s.narrator.InterpretEvent(ctx, &narrator.InterpretEventInput{
			Settings: state.Settings,
			Sheet:    state.Sheet,
			Journal:  state.Journal,
			Focus:    result.Event.Focus,
			Meaning:  result.Event.Meaning,
		})
		if err != nil {
			log.Printf("failed to interpret random event: %v", err)
		} else {
			result.Event.Interpretation = interpretation
			state.AppendGM(interpretation)
		}
	}

	return result, nil
}

func (s *service) EndScene(ctx context.Context, input *EndSceneInput) (int, error) {
	if input == nil {
		return 0, internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return 0, err
	}

	state.ChaosFactor = oracle.EndScene(input.WasInControl, state.ChaosFactor)
	state.ExpectedScene = ""

	// A scene break always clears the battlefield.
	state.Combat.End()
	s.flushCombatLog(state)

	state.AppendJournal(fmt.Sprintf("-- Scene ended. Chaos Factor is now %d --", state.ChaosFactor))

	return state.ChaosFactor, nil
}

func (s *service) SetChaosFactor(ctx context.Context, ownerID string, value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return 0, err
	}

	state.ChaosFactor = oracle.ClampChaosFactor(value)
	return state.ChaosFactor, nil
}

func (s *service) SuggestScene(ctx context.Context, ownerID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return "", err
	}

	suggestion, err := s.narrator.SuggestScene(ctx, &narrator.SuggestSceneInput{
		Settings: state.Settings,
		Sheet:    state.Sheet,
		Threads:  state.Threads,
		Journal:  state.Journal,
	})
	if err != nil {
		return "", err
	}

	state.ExpectedScene = suggestion
	return suggestion, nil
}

// NarrateInput carries one player action into the story
type NarrateInput struct {
	OwnerID string
	Action  string
}

func (s *service) Narrate(ctx context.Context, input *NarrateInput) (*NarrateResult, error) {
	if input == nil {
		return nil, internal.NewMissingParamError("input")
	}
	if input.Action == "" {
		return nil, internal.NewMissingParamError("input.Action")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return nil, err
	}

	state.AppendJournal(fmt.Sprintf("> %s", input.Action))

	reply, err := s.narrator.Narrate(ctx, &narrator.NarrateInput{
		Settings: state.Settings,
		Sheet:    state.Sheet,
		Threads:  state.Threads,
		NPCs:     state.NPCs,
		Journal:  state.Journal,
		Action:   input.Action,
	})
	if err != nil {
		return nil, err
	}

	if check, ok := narrator.ParseCheck(reply); ok {
		state.PendingCheck = check
		message := fmt.Sprintf("A check is required for '%s'. Please roll a %s check.",
			check.Action, check.Proficiency)
		state.AppendGM(message)
		return &NarrateResult{Reply: message, Check: check}, nil
	}

	state.AppendGM(reply)
	return &NarrateResult{Reply: reply}, nil
}

func (s *service) ResolveCheck(ctx context.Context, ownerID string) (*CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	if state.PendingCheck == nil {
		return nil, internal.NewInvalidStateError("no check is pending")
	}
	check := *state.PendingCheck

	roll, err := s.roller.RollDie(20)
	if err != nil {
		return nil, fmt.Errorf("failed to roll check: %w", err)
	}

	total := roll + checkBonus(state.Sheet, check.Proficiency)
	success := total >= check.DC

	outcome := "Failure."
	if success {
		outcome = "Success!"
	}
	state.AppendJournal(fmt.Sprintf("-- %s Check: %d vs DC %d -> %s --",
		check.Proficiency, total, check.DC, outcome))
	state.PendingCheck = nil

	action := fmt.Sprintf("The player attempted to '%s' and the result was a %s (Rolled %d vs DC %d). Describe what happens.",
		check.Action, outcome, total, check.DC)

	reply, err := s.narrator.Narrate(ctx, &narrator.NarrateInput{
		Settings: state.Settings,
		Sheet:    state.Sheet,
		Threads:  state.Threads,
		NPCs:     state.NPCs,
		Journal:  state.Journal,
		Action:   action,
	})
	if err != nil {
		return nil, err
	}
	state.AppendGM(reply)

	return &CheckResult{
		Check:   check,
		Roll:    roll,
		Total:   total,
		Success: success,
		Reply:   reply,
	}, nil
}

// checkBonus is the modifier of the named ability plus the proficiency bonus
// when the character is proficient in it. Proficiency names arrive from the
// narrator, so matching is case-insensitive.
func checkBonus(sheet *character.Sheet, proficiency string) int {
	bonus := 0
	for _, ability := range character.Abilities {
		if strings.EqualFold(string(ability), proficiency) {
			bonus = character.Modifier(sheet.Attributes.Score(ability))
			break
		}
	}
	for _, p := range sheet.Proficiencies {
		if strings.EqualFold(p, proficiency) {
			bonus += sheet.Proficiency
			break
		}
	}
	return bonus
}

func (s *service) RollDice(ctx context.Context, ownerID, expression string) (*dice.RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	result, err := dice.ParseAndRoll(s.roller, expression)
	if err != nil {
		return nil, err
	}

	state.AppendJournal(fmt.Sprintf("-- Rolled %s: %s --", result.Expression, result))
	return result, nil
}
