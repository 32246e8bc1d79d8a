package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics_Sorted(t *testing.T) {
	t.Parallel()

	want := []string{"config", "dashboard", "layout", "views"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("topics: expected %v; got %v", want, got)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic  string
		ok     bool
		prefix string
	}{
		{topic: "layout", ok: true, prefix: "# Layout"},
		{topic: "  Dashboard ", ok: true, prefix: "# Dashboard"},
		{topic: "missing", ok: false},
		{topic: "", ok: false},
		{topic: "../docs", ok: false},
	}
	for _, tt := range tests {
		body, ok := Get(tt.topic)
		if ok != tt.ok {
			t.Fatalf("Get(%q): expected ok=%v; got %v", tt.topic, tt.ok, ok)
		}
		if ok && !strings.HasPrefix(body, tt.prefix) {
			t.Fatalf("Get(%q): expected prefix %q; got %q", tt.topic, tt.prefix, body)
		}
	}
}
