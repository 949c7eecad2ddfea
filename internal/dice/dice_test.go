package dice_test

import (
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndRoll(t *testing.T) {
	tests := []struct {
		name           string
		expression     string
		setupRolls     []int
		wantTotal      int
		wantRolls      []int
		wantModifier   int
		wantExpression string
	}{
		{
			name:           "2d6+3",
			expression:     "2d6+3",
			setupRolls:     []int{4, 5},
			wantTotal:      12,
			wantRolls:      []int{4, 5},
			wantModifier:   3,
			wantExpression: "2d6+3",
		},
		{
			name:           "count defaults to 1",
			expression:     "d20",
			setupRolls:     []int{17},
			wantTotal:      17,
			wantRolls:      []int{17},
			wantModifier:   0,
			wantExpression: "d20",
		},
		{
			name:           "negative modifier",
			expression:     "1d4-2",
			setupRolls:     []int{3},
			wantTotal:      1,
			wantRolls:      []int{3},
			wantModifier:   -2,
			wantExpression: "1d4-2",
		},
		{
			name:           "case insensitive with whitespace",
			expression:     "  3D8+1 ",
			setupRolls:     []int{8, 1, 6},
			wantTotal:      16,
			wantRolls:      []int{8, 1, 6},
			wantModifier:   1,
			wantExpression: "3d8+1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := dice.ParseAndRoll(roller, tt.expression)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.wantModifier, result.Modifier)
			assert.Equal(t, tt.wantExpression, result.Expression)
		})
	}
}

func TestParseAndRoll_InvalidExpressions(t *testing.T) {
	invalid := []string{
		"",
		"garbage",
		"0d6",
		"2d0",
		"d",
		"2d",
		"d6+",
		"2d6+3extra",
		"2 d 6",
		"-1d6",
	}

	roller := dice.NewMockRoller()
	roller.SetRolls([]int{1, 2, 3, 4, 5, 6})

	for _, expr := range invalid {
		t.Run(expr, func(t *testing.T) {
			result, err := dice.ParseAndRoll(roller, expr)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, dice.ErrInvalidExpression)
		})
	}
}

func TestParseAndRoll_RandomRollerBounds(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := dice.ParseAndRoll(roller, "2d6+3")
		require.NoError(t, err)

		require.Len(t, result.Rolls, 2)
		for _, roll := range result.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 6)
		}
		assert.GreaterOrEqual(t, result.Total, 5)
		assert.LessOrEqual(t, result.Total, 15)
	}
}

func TestRandomRoller_RollDie(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		roll, err := roller.RollDie(20)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 20)
	}

	_, err := roller.RollDie(0)
	assert.Error(t, err)
}

func TestRandomRoller_RollRejectsInvalidInput(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}
