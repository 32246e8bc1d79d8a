package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"statusdeck/internal/layout"
)

func sampleState() LayoutState {
	return LayoutState{
		Layout: layout.Split{
			Direction:       layout.Row,
			SplitPercentage: 35,
			First:           layout.Leaf{ID: "tile1"},
			Second: layout.Split{
				Direction:       layout.Column,
				SplitPercentage: 70,
				First:           layout.Leaf{ID: "tile2"},
				Second:          layout.NewSplit(layout.Row, layout.Leaf{ID: "tile3"}, layout.Leaf{ID: "tile4"}),
			},
		},
		TileSettings: map[string]TileSettings{
			"tile1": {ViewType: ViewSummary, API: "vb7bjptc3shr", AdditionalSettings: map[string]any{}},
			"tile2": {ViewType: ViewDetails, API: "", AdditionalSettings: map[string]any{"limit": 5.0}},
			"tile3": {ViewType: ViewGraph, API: "p1", AdditionalSettings: map[string]any{"kind": "bar", "series": []any{"a", "b"}}},
			"tile4": {ViewType: ViewDev, AdditionalSettings: map[string]any{}, NeedsConfig: true},
		},
		TitleMap: map[string]string{"tile1": "Summary View", "tile3": "Graph"},
	}
}

func TestLayoutState_RoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleState()
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got LayoutState
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestLayoutState_WireKeys(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(LayoutState{Layout: layout.Leaf{ID: "welcomeTile"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"layout":"welcomeTile","tileSettings":{},"titleMap":{}}`
	if string(b) != want {
		t.Fatalf("want %s got %s", want, b)
	}
}

func TestLayoutState_UnmarshalRejectsBadLayout(t *testing.T) {
	t.Parallel()

	var st LayoutState
	err := json.Unmarshal([]byte(`{"layout":{"direction":"row","first":"a","second":"a"},"tileSettings":{}}`), &st)
	if err == nil || !strings.Contains(err.Error(), "decode layout") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLayoutState_CloneIsDeep(t *testing.T) {
	t.Parallel()

	st := sampleState()
	cp := st.Clone()
	cp.TileSettings["tile3"].AdditionalSettings["kind"] = "pie"
	cp.TitleMap["tile1"] = "changed"
	if st.TileSettings["tile3"].AdditionalSettings["kind"] != "bar" {
		t.Fatalf("clone shares additionalSettings")
	}
	if st.TitleMap["tile1"] != "Summary View" {
		t.Fatalf("clone shares titleMap")
	}
}

func TestLayoutState_Orphans(t *testing.T) {
	t.Parallel()

	st := sampleState()
	if a, b := st.Orphans(); len(a) != 0 || len(b) != 0 {
		t.Fatalf("expected consistent state, got %v %v", a, b)
	}
	delete(st.TileSettings, "tile2")
	st.TileSettings["ghost"] = TileSettings{ViewType: ViewDev}
	a, b := st.Orphans()
	if !reflect.DeepEqual(a, []string{"tile2"}) || !reflect.DeepEqual(b, []string{"ghost"}) {
		t.Fatalf("unexpected orphans: %v %v", a, b)
	}
}

func TestParseViewType(t *testing.T) {
	t.Parallel()

	for _, v := range ViewTypes() {
		got, err := ParseViewType(string(v))
		if err != nil || got != v {
			t.Fatalf("ParseViewType(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseViewType("chart"); err == nil {
		t.Fatalf("expected error for unknown view type")
	}
}
