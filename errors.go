package dim

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput matches every DegenerateInputError in errors.Is
// checks.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateInputError reports an operation whose result is
// mathematically undefined for the given input, such as normalizing a
// zero length vector. Operations returning it also come in an
// Unchecked variant that skips the check and lets NaN propagate.
type DegenerateInputError struct {
	// Op names the failing operation, e.g. "Vec2.Normalize".
	Op string

	// Reason describes the offending input.
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input: %s", e.Op, e.Reason)
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
