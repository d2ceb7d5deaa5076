package tui

import "testing"

func TestDarkFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		dark, ok bool
	}{
		{in: "", dark: false, ok: false},
		{in: "15;0", dark: true, ok: true},
		{in: "0;15", dark: false, ok: true},
		{in: "15;default;0", dark: true, ok: true},
		{in: "nope", dark: false, ok: false},
	}
	for _, tt := range tests {
		dark, ok := darkFromColorFGBG(tt.in)
		if dark != tt.dark || ok != tt.ok {
			t.Fatalf("darkFromColorFGBG(%q) = (%v, %v); want (%v, %v)", tt.in, dark, ok, tt.dark, tt.ok)
		}
	}
}

func TestMarkdownStyle_EnvPrecedence(t *testing.T) {
	t.Setenv(envTheme, "dark")
	t.Setenv(envMarkdownStyle, "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected markdown style env to win; got %q", got)
	}
	t.Setenv(envMarkdownStyle, "")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected theme env fallback; got %q", got)
	}
}

func TestFitWidth(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	if got := fitWidth("abcdefgh", 5); got != "abcd~" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := fitWidth("ab", 4); got != "ab  " {
		t.Fatalf("expected padding; got %q", got)
	}
}
