package mutate

import (
	"strings"

	"tracker-cli/internal/model"
)

func SetHeader(c model.Chart, col int, text string) (model.Chart, error) {
	if col < 0 || col >= len(c.Headers) {
		return c, RangeError{Kind: "column", Index: col}
	}
	out := c.Clone()
	out.Headers[col] = strings.TrimSpace(text)
	return out, nil
}

func SetRowName(c model.Chart, row int, text string) (model.Chart, error) {
	if row < 0 || row >= len(c.Rows) {
		return c, RangeError{Kind: "row", Index: row}
	}
	out := c.Clone()
	out.Rows[row].Name = strings.TrimSpace(text)
	return out, nil
}

func SetTitle(c model.Chart, text string) model.Chart {
	out := c.Clone()
	out.Name = strings.TrimSpace(text)
	return out
}

// AddColumn appends a column and an empty cell to every row.
func AddColumn(c model.Chart, header string) model.Chart {
	out := c.Clone()
	out.Headers = append(out.Headers, strings.TrimSpace(header))
	for i := range out.Rows {
		out.Rows[i].Data = append(out.Rows[i].Data, model.Cell{})
	}
	return out
}

// RemoveColumn drops a column from the headers and every row. The last
// column cannot be removed.
func RemoveColumn(c model.Chart, col int) (model.Chart, error) {
	if col < 0 || col >= len(c.Headers) || len(c.Headers) == 1 {
		return c, RangeError{Kind: "column", Index: col}
	}
	out := c.Clone()
	out.Headers = append(out.Headers[:col], out.Headers[col+1:]...)
	for i := range out.Rows {
		d := out.Rows[i].Data
		if col < len(d) {
			out.Rows[i].Data = append(d[:col], d[col+1:]...)
		}
	}
	return out, nil
}

// AddRow appends a row with empty penalties and cells sized to the headers.
func AddRow(c model.Chart, name string) model.Chart {
	out := c.Clone()
	out.Rows = append(out.Rows, model.Row{
		Name: strings.TrimSpace(name),
		Data: make([]model.Cell, len(out.Headers)),
	})
	return out
}

// RemoveRow drops a row. The last row cannot be removed.
func RemoveRow(c model.Chart, row int) (model.Chart, error) {
	if row < 0 || row >= len(c.Rows) || len(c.Rows) == 1 {
		return c, RangeError{Kind: "row", Index: row}
	}
	out := c.Clone()
	out.Rows = append(out.Rows[:row], out.Rows[row+1:]...)
	return out, nil
}
