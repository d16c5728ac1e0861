package validators

import (
	"fmt"
	"strconv"
	"strings"
)

// DiceRoll is the typed result of a valid dice-roll value like "2d6".
type DiceRoll struct {
	Count int
	Size  int
}

// dieSizes are the die sizes the game ships.
var dieSizes = map[int]bool{4: true, 6: true, 8: true, 10: true, 12: true, 20: true, 100: true}

// validateDiceRoll checks a `<N>d<M>` dice roll. Like use-costs, empty
// input returns early without marking the result successful; see
// validateUseCosts.
func (v *Validator) validateDiceRoll(value string) Result {
	if value == "" {
		return Result{}
	}

	count, size, ok := strings.Cut(value, "d")
	if !ok {
		return failure("Malformed dice roll")
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return failure("Malformed dice roll")
	}
	m, err := strconv.Atoi(size)
	if err != nil {
		return failure("Malformed dice roll")
	}
	if !dieSizes[m] {
		return failure(fmt.Sprintf("Invalid die size: %d", m))
	}

	return success(DiceRoll{Count: n, Size: m})
}
