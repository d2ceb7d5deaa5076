package mutate

import (
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown format action")

// RangeError reports an index outside the chart (row, column, slot) or a
// structural edit that would break the chart shape.
type RangeError struct {
	Kind  string
	Index int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Kind, e.Index)
}
