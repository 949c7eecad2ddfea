package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a modifier
	Roll(count, sides, modifier int) (*RollResult, error)

	// RollDie rolls a single die, returning a uniform value in [1, sides]
	RollDie(sides int) (int, error)
}
