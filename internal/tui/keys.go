package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up, Down, Left, Right key.Binding

	Select       key.Binding
	ToggleMode   key.Binding
	SelectColumn key.Binding
	Clear        key.Binding

	Tick, Cross, Question, ClearMarks key.Binding

	BgLightGreen, BgYellow, BgOrange, BgDarkRed, BgDiagonal, ClearBG key.Binding

	Penalty1, Penalty2 key.Binding

	Edit, Rename key.Binding
	Undo, Redo   key.Binding

	NewChart, DeleteChart, Picker key.Binding
	Save, Export, Copy            key.Binding

	Help, Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		Select:       key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "select")),
		ToggleMode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "single/multi")),
		SelectColumn: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "column")),
		Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),

		Tick:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tick")),
		Cross:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cross")),
		Question:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "question")),
		ClearMarks: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear mark")),

		BgLightGreen: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "green")),
		BgYellow:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yellow")),
		BgOrange:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orange")),
		BgDarkRed:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "dark red")),
		BgDiagonal:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diagonal")),
		ClearBG:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear bg")),

		Penalty1: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "card 1")),
		Penalty2: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "card 2")),

		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Rename: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rename")),
		Undo:   key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:   key.NewBinding(key.WithKeys("U", "ctrl+y"), key.WithHelp("U", "redo")),

		NewChart:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		DeleteChart: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
		Picker:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "charts")),
		Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Export:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "snapshot")),
		Copy:        key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "copy text")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.ToggleMode, k.Tick, k.BgYellow, k.Penalty1, k.Edit, k.Undo, k.Redo, k.Picker, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.ToggleMode, k.SelectColumn, k.Clear},
		{k.Tick, k.Cross, k.Question, k.ClearMarks, k.Penalty1, k.Penalty2},
		{k.BgLightGreen, k.BgYellow, k.BgOrange, k.BgDarkRed, k.BgDiagonal, k.ClearBG},
		{k.Edit, k.Rename, k.Undo, k.Redo, k.NewChart, k.DeleteChart},
		{k.Picker, k.Save, k.Export, k.Copy, k.Help, k.Quit},
	}
}
