package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned when a dice expression does not match the
// [N]dS[+M|-M] grammar, or names zero dice or zero-sided dice.
var ErrInvalidExpression = errors.New("invalid dice expression")

// exprPattern matches expressions like '2d6+3', 'd20-1', '3d8', '1d4'
var exprPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total      int    `json:"total"`
	Rolls      []int  `json:"rolls"`
	Modifier   int    `json:"modifier"`
	Expression string `json:"expression,omitempty"`
}

// ParseAndRoll parses a dice expression and rolls it with the given roller.
// The dice count defaults to 1, surrounding whitespace is ignored and matching
// is case-insensitive. Malformed input is reported as ErrInvalidExpression,
// never a panic.
func ParseAndRoll(roller Roller, expression string) (*RollResult, error) {
	input := strings.ToLower(strings.TrimSpace(expression))

	match := exprPattern.FindStringSubmatch(input)
	if match == nil {
		return nil, ErrInvalidExpression
	}

	count := 1
	if match[1] != "" {
		parsed, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, ErrInvalidExpression
		}
		count = parsed
	}

	sides, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, ErrInvalidExpression
	}

	modifier := 0
	if match[3] != "" {
		parsed, err := strconv.Atoi(match[3])
		if err != nil {
			return nil, ErrInvalidExpression
		}
		modifier = parsed
	}

	if count == 0 || sides == 0 {
		return nil, ErrInvalidExpression
	}

	result, err := roller.Roll(count, sides, modifier)
	if err != nil {
		return nil, err
	}

	result.Expression = input
	return result, nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ", ")
	if r.Modifier != 0 {
		return fmt.Sprintf("**%d** : %s %+d", r.Total, compact, r.Modifier)
	}
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
