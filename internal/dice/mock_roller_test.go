package dice_test

import (
	"testing"

	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		modifier   int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			modifier:   0,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			modifier:   3,
			wantTotal:  12,
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.modifier)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestMockRoller_RollDie(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{7, 3})

	roll, err := roller.RollDie(10)
	require.NoError(t, err)
	assert.Equal(t, 7, roll)

	roll, err = roller.RollDie(10)
	require.NoError(t, err)
	assert.Equal(t, 3, roll)

	_, err = roller.RollDie(10)
	assert.Error(t, err)
}

func TestMockRoller_SetNextRoll(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetNextRoll(20)

	roll, err := roller.RollDie(20)
	require.NoError(t, err)
	assert.Equal(t, 20, roll)

	roller.Reset()
	_, err = roller.RollDie(20)
	assert.Error(t, err)
}
