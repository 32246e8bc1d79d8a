package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"statusdeck/internal/layout"
	"statusdeck/internal/model"
)

func sampleLayoutState() model.LayoutState {
	return model.LayoutState{
		Layout: layout.Split{
			Direction: layout.Row,
			First:     layout.Leaf{ID: "tile-a"},
			Second: layout.Split{
				Direction:       layout.Column,
				First:           layout.Leaf{ID: "tile-b"},
				Second:          layout.Leaf{ID: "tile-c"},
				SplitPercentage: 30,
			},
			SplitPercentage: 50,
		},
		TileSettings: map[string]model.TileSettings{
			"tile-a": {ViewType: model.ViewSummary, API: "", AdditionalSettings: map[string]any{}},
			"tile-b": {ViewType: model.ViewGraph, API: "status", AdditionalSettings: map[string]any{"chart": "bar"}},
			"tile-c": {ViewType: model.ViewDetails, API: "status", AdditionalSettings: map[string]any{}, NeedsConfig: true},
		},
		TitleMap: map[string]string{"tile-a": "Overview", "tile-b": "Graph"},
	}
}

func TestSettingsFile_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	g := Store{Dir: t.TempDir()}.SettingsFile()
	ctx := context.Background()

	got, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil state for missing file, got %#v", got)
	}

	want := sampleLayoutState()
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, want) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestSettingsFile_PreservesOtherKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g := Store{Dir: dir}.SettingsFile()
	seed := `{"apitype": {"endpoints": ["https://status.example.com"]}}`
	if err := os.WriteFile(g.Path(), []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	st, err := g.Load(context.Background())
	if err != nil || st != nil {
		t.Fatalf("expected absent layout key, got %#v err=%v", st, err)
	}

	if err := g.Save(context.Background(), sampleLayoutState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(g.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["apitype"]; !ok {
		t.Fatalf("expected apitype key to survive save; got keys %v", m)
	}
	if _, ok := m[LayoutSettingKey]; !ok {
		t.Fatalf("expected %s key", LayoutSettingKey)
	}
}

func TestSettingsFile_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g := Store{Dir: dir}.SettingsFile()
	if err := os.WriteFile(g.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := g.Load(context.Background()); err == nil {
		t.Fatalf("expected load error for corrupt file")
	}

	if err := g.Save(context.Background(), sampleLayoutState()); err != nil {
		t.Fatalf("Save over corrupt file: %v", err)
	}
	if b, err := os.ReadFile(g.Path() + ".bak"); err != nil || string(b) != "{not json" {
		t.Fatalf("expected backup of corrupt file, got %q err=%v", b, err)
	}
	if st, err := g.Load(context.Background()); err != nil || st == nil {
		t.Fatalf("expected readable state after save, got %#v err=%v", st, err)
	}
}

func TestSettingsFile_InvalidLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g := Store{Dir: dir}.SettingsFile()
	bad := `{"layouttype": {"layout": {"direction": "row", "first": "a", "second": "a"}, "tileSettings": {}, "titleMap": {}}}`
	if err := os.WriteFile(g.Path(), []byte(bad), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := g.Load(context.Background()); err == nil {
		t.Fatalf("expected duplicate leaves to fail")
	}
}

func TestSQLiteState_SaveLoad(t *testing.T) {
	t.Parallel()

	g := Store{Dir: t.TempDir()}.SQLiteState()
	ctx := context.Background()

	got, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load (empty): %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil state, got %#v", got)
	}
	if _, ok, err := g.UpdatedAt(ctx); err != nil || ok {
		t.Fatalf("UpdatedAt on empty db: ok=%v err=%v", ok, err)
	}

	first := sampleLayoutState()
	if err := g.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := sampleLayoutState()
	second.Layout = layout.RemoveLeaf(second.Layout, "tile-c")
	delete(second.TileSettings, "tile-c")
	if err := g.Save(ctx, second); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}

	got, err = g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, second) {
		t.Fatalf("want %#v\ngot %#v", second, got)
	}
	if _, ok, err := g.UpdatedAt(ctx); err != nil || !ok {
		t.Fatalf("UpdatedAt after save: ok=%v err=%v", ok, err)
	}
	if _, err := os.Stat(filepath.Join(g.Store.Dir, "state.sqlite")); err != nil {
		t.Fatalf("expected db file: %v", err)
	}
}

func TestEmptyDirIsInert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var s Store
	if st, err := s.SettingsFile().Load(ctx); st != nil || err != nil {
		t.Fatalf("settings load: %#v %v", st, err)
	}
	if err := s.SettingsFile().Save(ctx, sampleLayoutState()); err != nil {
		t.Fatalf("settings save: %v", err)
	}
	if st, err := s.SQLiteState().Load(ctx); st != nil || err != nil {
		t.Fatalf("sqlite load: %#v %v", st, err)
	}
	if err := s.SaveUIState(&UIState{FocusedTileID: "x"}); err != nil {
		t.Fatalf("ui save: %v", err)
	}
}

func TestUIState_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}

	st0, err := s.LoadUIState()
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if st0 == nil || st0.Version != 1 {
		t.Fatalf("expected default Version=1; got %#v", st0)
	}

	want := &UIState{Version: 1, FocusedTileID: "tile-b", DrawerOpen: true}
	if err := s.SaveUIState(want); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}
	got, err := s.LoadUIState()
	if err != nil {
		t.Fatalf("LoadUIState (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}

	if err := os.WriteFile(filepath.Join(s.Dir, "ui_state.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = s.LoadUIState()
	if err != nil || got.FocusedTileID != "" {
		t.Fatalf("corrupt ui state should load as default, got %#v err=%v", got, err)
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STATUSDECK_CONFIG_DIR", dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("want %q got %q", dir, got)
	}

	s, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Dir != dir {
		t.Fatalf("Open should default to config dir, got %q", s.Dir)
	}
	p, _ := ConfigFilePath()
	if p != filepath.Join(dir, "statusdeck.yaml") {
		t.Fatalf("config file path: %q", p)
	}
}
