package cli

import (
	"fmt"
	"strings"
	"time"

	"tracker-cli/internal/export"
	"tracker-cli/internal/model"
	"tracker-cli/internal/store"
)

// chartOut is the payload of commands that show or change a chart.
type chartOut struct {
	ID      string      `json:"id"`
	Changed *bool       `json:"changed,omitempty"`
	Label   string      `json:"label,omitempty"`
	Chart   model.Chart `json:"chart"`
}

func (o chartOut) Text() string {
	var b strings.Builder
	if o.Changed != nil && !*o.Changed {
		b.WriteString("(no change)\n")
	}
	b.WriteString(export.RenderText(o.Chart, time.Now()))
	return b.String()
}

func chartPayload(c model.Chart) chartOut {
	return chartOut{ID: c.ID, Chart: c}
}

func changePayload(c model.Chart, label string, changed bool) chartOut {
	out := chartOut{ID: c.ID, Chart: c, Changed: &changed}
	if changed {
		out.Label = label
	}
	return out
}

type chartList []store.Summary

func (l chartList) Text() string {
	var b strings.Builder
	for _, s := range l {
		marker := " "
		if s.Active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s  %s\n", marker, s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Name)
	}
	return b.String()
}
