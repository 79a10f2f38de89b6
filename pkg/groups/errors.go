package groups

import (
	"errors"
	"strings"
)

// ErrMissingInput is the sentinel matched by errors.Is for every
// MissingInputError, regardless of which calculation produced it.
var ErrMissingInput = errors.New("groups: insufficient input combination")

// MissingInputError reports that a multi-route calculation was called with
// none of its accepted input combinations fully supplied. Accepted lists the
// option sets that would have satisfied the calculation, in route-priority
// order, so callers can self-correct.
type MissingInputError struct {
	Calculation string
	Accepted    [][]string
}

func (e *MissingInputError) Error() string {
	sets := make([]string, len(e.Accepted))
	for i, set := range e.Accepted {
		sets[i] = "(" + strings.Join(set, ", ") + ")"
	}
	return "groups: " + e.Calculation + ": insufficient input combination; accepted: " +
		strings.Join(sets, " or ")
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// IsMissingInput reports whether err is a MissingInputError.
func IsMissingInput(err error) bool {
	var mi *MissingInputError
	return errors.As(err, &mi)
}
