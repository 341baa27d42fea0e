package bingo

import "fmt"

// NumberRange is the half-open interval [Begin, End) that tickets and draws
// share.
type NumberRange struct {
	Begin int
	End   int
}

// DefaultRange covers 1 to 99 inclusive.
var DefaultRange = NumberRange{Begin: 1, End: 100}

// Size returns how many numbers the range holds.
func (r NumberRange) Size() int {
	if r.End <= r.Begin {
		return 0
	}
	return r.End - r.Begin
}

// Contains reports whether n lies inside the range.
func (r NumberRange) Contains(n int) bool {
	return n >= r.Begin && n < r.End
}

// Validate returns ErrInvalidRange for empty or inverted ranges.
func (r NumberRange) Validate() error {
	if r.End <= r.Begin {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, r.Begin, r.End)
	}
	return nil
}

func (r NumberRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Begin, r.End)
}
