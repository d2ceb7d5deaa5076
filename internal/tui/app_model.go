package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tracker-cli/internal/export"
	"tracker-cli/internal/session"
	"tracker-cli/internal/view"
)

type appOptions struct {
	Session   *session.Session
	Exporter  export.Exporter
	Clipboard export.Exporter
	ExportDir string
	Log       *slog.Logger
}

type appModel struct {
	ctx  context.Context
	sess *session.Session
	log  *slog.Logger

	exporter  export.Exporter
	clipboard export.Exporter
	exportDir string

	rs   *renderState
	keys keyMap
	help help.Model

	width  int
	height int

	mode mode
	cur  cursor

	input   textinput.Model
	editRef view.FieldRef

	confirmFocus confirmModalFocus
	picker       list.Model
	helpView     viewport.Model

	status    string
	statusErr bool
	statusSeq int
}

func newAppModel(ctx context.Context, opts appOptions) appModel {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	exp := opts.Exporter
	if exp == nil {
		exp = export.File{Format: export.FormatPNG}
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = export.Clipboard{}
	}

	in := textinput.New()
	in.Prompt = "> "
	// Fields set through the CLI can be any length.
	in.CharLimit = 0

	m := appModel{
		ctx:       ctx,
		sess:      opts.Session,
		log:       log,
		exporter:  exp,
		clipboard: clip,
		exportDir: opts.ExportDir,
		rs:        &renderState{},
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
		input:     in,
	}
	m.sess.SetView(m.rs)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) rows() int { return len(m.rs.doc.Rows) }
func (m appModel) cols() int { return len(m.rs.doc.Headers) }

func (m *appModel) clampCursor() {
	m.cur = m.cur.clamp(m.rows(), m.cols())
}

func (m *appModel) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	m.statusErr = false
	return clearStatusAfter(m.statusSeq)
}

func (m *appModel) setStatusErr(err error) tea.Cmd {
	m.statusSeq++
	m.status = err.Error()
	m.statusErr = true
	m.log.Warn("tui action failed", "err", err)
	return clearStatusAfter(m.statusSeq)
}
