package model

import "encoding/json"

// Wire shapes for the persisted layout:
//
//	{name, headers: [], rows: [{name, penalty: [s0, s1], data: [{mark, bgClass}]}]}
//
// Unknown penalty/mark/background values decode as empty rather than failing
// the whole blob.

type wireCell struct {
	Mark    *string `json:"mark"`
	BgClass *string `json:"bgClass"`
}

type wireRow struct {
	Name    string   `json:"name"`
	Penalty []string `json:"penalty"`
	Data    []Cell   `json:"data"`
}

type wireChart struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

func (c Cell) MarshalJSON() ([]byte, error) {
	var w wireCell
	if g := c.Mark.Glyph(); g != "" {
		w.Mark = &g
	}
	if cls := c.Background.Class(); cls != "" {
		w.BgClass = &cls
	}
	return json.Marshal(w)
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	var w wireCell
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = Cell{}
	if w.Mark != nil {
		c.Mark, _ = ParseMark(*w.Mark)
	}
	if w.BgClass != nil {
		c.Background, _ = ParseBackground(*w.BgClass)
	}
	return nil
}

func (r Row) MarshalJSON() ([]byte, error) {
	w := wireRow{
		Name:    r.Name,
		Penalty: make([]string, PenaltySlots),
		Data:    r.Data,
	}
	for i, p := range r.Penalty {
		w.Penalty[i] = p.String()
	}
	if w.Data == nil {
		w.Data = []Cell{}
	}
	return json.Marshal(w)
}

func (r *Row) UnmarshalJSON(b []byte) error {
	var w wireRow
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Row{Name: w.Name, Data: w.Data}
	if r.Data == nil {
		r.Data = []Cell{}
	}
	for i := 0; i < PenaltySlots && i < len(w.Penalty); i++ {
		r.Penalty[i], _ = ParsePenaltyState(w.Penalty[i])
	}
	return nil
}

func (c Chart) MarshalJSON() ([]byte, error) {
	w := wireChart{Name: c.Name, Headers: c.Headers, Rows: c.Rows}
	if w.Headers == nil {
		w.Headers = []string{}
	}
	if w.Rows == nil {
		w.Rows = []Row{}
	}
	return json.Marshal(w)
}

func (c *Chart) UnmarshalJSON(b []byte) error {
	var w wireChart
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	// ID comes from the enclosing map key.
	*c = Chart{ID: c.ID, Name: w.Name, Headers: w.Headers, Rows: w.Rows}
	if c.Headers == nil {
		c.Headers = []string{}
	}
	if c.Rows == nil {
		c.Rows = []Row{}
	}
	return nil
}
