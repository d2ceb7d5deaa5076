package mutate

import "tracker-cli/internal/model"

// CyclePenalty advances one penalty slot of one row a single step along
// empty -> yellow -> orange -> red -> empty.
func CyclePenalty(c model.Chart, row, slot int) (model.Chart, error) {
	if row < 0 || row >= len(c.Rows) {
		return c, RangeError{Kind: "row", Index: row}
	}
	if slot < 0 || slot >= model.PenaltySlots {
		return c, RangeError{Kind: "penalty slot", Index: slot}
	}
	out := c.Clone()
	p := &out.Rows[row].Penalty[slot]
	*p = p.Next()
	return out, nil
}
