package oracle

import (
	"fmt"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/dice"
)

// Outcome is the yes/no resolution of a fate question
type Outcome string

const (
	OutcomeExceptionalYes Outcome = "EXCEPTIONAL YES"
	OutcomeYes            Outcome = "YES"
	OutcomeNo             Outcome = "NO"
	OutcomeExceptionalNo  Outcome = "EXCEPTIONAL NO"
)

// IsNo reports whether the outcome is in the no family
func (o Outcome) IsNo() bool {
	return o == OutcomeNo || o == OutcomeExceptionalNo
}

// RandomEvent is a spontaneous narrative event: a focus from the ranged
// table and a two-word meaning. The interpretation is filled in later by the
// narration collaborator.
type RandomEvent struct {
	Focus          string `json:"focus"`
	Meaning        string `json:"meaning"`
	Interpretation string `json:"interpretation,omitempty"`
}

// TestResult is the full resolution of one fate question
type TestResult struct {
	Odds        Odds    `json:"odds"`
	ChaosFactor int     `json:"chaos_factor"`
	Roll        int     `json:"roll"`       // the d100
	ChaosRoll   int     `json:"chaos_roll"` // the d10 event check
	Outcome     Outcome `json:"outcome"`

	// Event is non-nil when the chaos check triggered a random event
	Event *RandomEvent `json:"event,omitempty"`

	// SceneAdjustment accompanies every no-family outcome
	SceneAdjustment string `json:"scene_adjustment,omitempty"`
}

// Oracle resolves fate questions against the fate chart
type Oracle struct {
	roller dice.Roller
}

// New creates an oracle drawing from the given roller
func New(roller dice.Roller) *Oracle {
	if roller == nil {
		panic("roller is required")
	}
	return &Oracle{roller: roller}
}

// TestRandomOdds resolves a fate question with odds picked uniformly from
// the nine likelihood labels, as the base scene-test flow does
func (o *Oracle) TestRandomOdds(chaosFactor int) (*TestResult, error) {
	pick, err := o.roller.RollDie(len(AllOdds))
	if err != nil {
		return nil, fmt.Errorf("failed to pick odds: %w", err)
	}
	return o.Test(AllOdds[pick-1], chaosFactor)
}

// Test resolves a fate question at the given odds and chaos factor.
// Rolls, in order: the chaos d10, the d100, then (only when a random event
// triggers) the three event dice.
func (o *Oracle) Test(odds Odds, chaosFactor int) (*TestResult, error) {
	chaosFactor = ClampChaosFactor(chaosFactor)

	entry, ok := FateThresholds(odds, chaosFactor)
	if !ok {
		return nil, internal.NewInvalidParamError(fmt.Sprintf("unknown odds %q", odds))
	}

	chaosRoll, err := o.roller.RollDie(10)
	if err != nil {
		return nil, fmt.Errorf("failed to roll chaos check: %w", err)
	}

	roll, err := o.roller.RollDie(100)
	if err != nil {
		return nil, fmt.Errorf("failed to roll fate check: %w", err)
	}

	result := &TestResult{
		Odds:        odds,
		ChaosFactor: chaosFactor,
		Roll:        roll,
		ChaosRoll:   chaosRoll,
	}

	switch {
	case roll <= entry.ExceptionalYes:
		result.Outcome = OutcomeExceptionalYes
	case roll <= entry.Yes:
		result.Outcome = OutcomeYes
	case roll >= entry.ExceptionalNo:
		result.Outcome = OutcomeExceptionalNo
	default:
		result.Outcome = OutcomeNo
	}

	// An odd fate roll under the chaos factor sparks a random event, no
	// matter how the question itself resolved.
	if chaosRoll <= chaosFactor && roll%2 != 0 {
		event, err := o.RandomEvent()
		if err != nil {
			return nil, err
		}
		result.Event = event
	}

	if result.Outcome.IsNo() {
		result.SceneAdjustment = sceneAdjustment(chaosRoll)
	}

	return result, nil
}

// RandomEvent generates a random event: a d100 focus lookup and two
// independent d100 picks from the meaning tables
func (o *Oracle) RandomEvent() (*RandomEvent, error) {
	focusRoll, err := o.roller.RollDie(100)
	if err != nil {
		return nil, fmt.Errorf("failed to roll event focus: %w", err)
	}

	action1, err := o.roller.RollDie(100)
	if err != nil {
		return nil, fmt.Errorf("failed to roll event meaning: %w", err)
	}

	action2, err := o.roller.RollDie(100)
	if err != nil {
		return nil, fmt.Errorf("failed to roll event meaning: %w", err)
	}

	return &RandomEvent{
		Focus:   eventFocus(focusRoll),
		Meaning: fmt.Sprintf("%s %s", meaningActions1[action1-1], meaningActions2[action2-1]),
	}, nil
}

// EndScene adjusts the chaos factor at scene end: down one when the player
// was in control, up one when not, always staying within [1, 9]
func EndScene(wasInControl bool, chaosFactor int) int {
	if wasInControl && chaosFactor > MinChaosFactor {
		return chaosFactor - 1
	}
	if !wasInControl && chaosFactor < MaxChaosFactor {
		return chaosFactor + 1
	}
	return chaosFactor
}
