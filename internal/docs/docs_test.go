package docs

import (
	"strings"
	"testing"
)

func TestTopics_DescribesEmbeddedContent(t *testing.T) {
	t.Parallel()

	got := Topics()
	names := make([]string, 0, len(got))
	for _, tp := range got {
		names = append(names, tp.Name)
	}
	if strings.Join(names, ",") != "charts,export,keys" {
		t.Fatalf("unexpected topics: %v", names)
	}
	if got[0].Title != "Charts" || !strings.HasPrefix(got[0].Summary, "A chart is a named table") {
		t.Fatalf("unexpected charts topic: %#v", got[0])
	}
	if got[2].Title != "Keys" || got[2].Summary == "" {
		t.Fatalf("unexpected keys topic: %#v", got[2])
	}
}

func TestDescribe_StopsAtFirstSubsection(t *testing.T) {
	t.Parallel()

	tp := describe("# Title\n\n## Section\n\nbody\n")
	if tp.Title != "Title" || tp.Summary != "" {
		t.Fatalf("unexpected topic: %#v", tp)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" KEYS ")
	if !ok || !strings.HasPrefix(body, "# Keys") {
		t.Fatalf("Get(keys) = %q, %v", body, ok)
	}
	for _, name := range []string{"../docs", "keys.md", "nope", ""} {
		if _, ok := Get(name); ok {
			t.Fatalf("expected %q to be missing", name)
		}
	}
}
