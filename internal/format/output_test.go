package format

import (
	"bytes"
	"strings"
	"testing"
)

type tileRows struct {
	rows [][]any
}

func (t tileRows) Header() []string { return []string{"ID", "TITLE", "VIEW"} }
func (t tileRows) Rows() [][]any    { return t.rows }

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"id": "tile-1"}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\"id\":\"tile-1\"}\n" {
		t.Fatalf("unexpected json: %q", got)
	}
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	type payload struct {
		ID     string   `json:"id"`
		Leaves []string `json:"leaves"`
	}
	var buf bytes.Buffer
	if err := Write(&buf, payload{ID: "tile-1", Leaves: []string{"a", "b"}}, "yaml", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "id: tile-1\nleaves:\n  - a\n  - b\n"
	if got := buf.String(); got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestWrite_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := tileRows{rows: [][]any{{"tile-1", "Overview", "summary"}, {"tile-2", "Graph", "graph"}}}
	if err := Write(&buf, v, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"ID", "TITLE", "tile-1", "Overview", "graph"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in table output:\n%s", s, out)
		}
	}

	buf.Reset()
	if err := Write(&buf, tileRows{}, "table", false); err != nil {
		t.Fatalf("Write empty: %v", err)
	}
	if got := buf.String(); got != "(0 rows)\n" {
		t.Fatalf("empty table: %q", got)
	}
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{}, "table", false); err == nil {
		t.Fatalf("expected error for non-tabular value")
	}
	if err := Write(&buf, map[string]any{}, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
