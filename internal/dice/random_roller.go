package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using the process-wide random source
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, modifier int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total:    total + modifier,
		Rolls:    rolls,
		Modifier: modifier,
	}, nil
}

// RollDie implements Roller.RollDie
func (r *randomRoller) RollDie(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.New("invalid dice size")
	}
	return rand.Intn(sides) + 1, nil
}
