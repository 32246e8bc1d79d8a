package model

import (
	"reflect"
	"testing"
)

func TestDecodeAdditional(t *testing.T) {
	t.Parallel()

	s := TileSettings{ViewType: ViewGraph, AdditionalSettings: map[string]any{"chartType": "pie", "extra": 1}}
	var g GraphSettings
	if err := DecodeAdditional(s, &g); err != nil {
		t.Fatalf("DecodeAdditional: %v", err)
	}
	if g.ChartType != "pie" {
		t.Fatalf("chartType: got %q", g.ChartType)
	}

	d := TileSettings{ViewType: ViewDetails, AdditionalSettings: map[string]any{"tableColumns": " name, status ,,uptime"}}
	var ds DetailsSettings
	if err := DecodeAdditional(d, &ds); err != nil {
		t.Fatalf("DecodeAdditional: %v", err)
	}
	if want := []string{"name", "status", "uptime"}; !reflect.DeepEqual(ds.Columns(), want) {
		t.Fatalf("columns: want %v got %v", want, ds.Columns())
	}

	var empty GraphSettings
	if err := DecodeAdditional(TileSettings{ViewType: ViewGraph}, &empty); err != nil || empty.ChartType != "" {
		t.Fatalf("nil settings should decode to zero value, got %#v err=%v", empty, err)
	}
}

func TestTileSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      TileSettings
		wantErr bool
	}{
		{name: "summary", in: TileSettings{ViewType: ViewSummary}},
		{name: "graph bar", in: TileSettings{ViewType: ViewGraph, AdditionalSettings: map[string]any{"chartType": "bar"}}},
		{name: "graph without chart", in: TileSettings{ViewType: ViewGraph}},
		{name: "graph unknown chart", in: TileSettings{ViewType: ViewGraph, AdditionalSettings: map[string]any{"chartType": "radar"}}, wantErr: true},
		{name: "unknown view", in: TileSettings{ViewType: "kanban"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate: err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestTileSettings_DefaultTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   TileSettings
		want string
	}{
		{in: TileSettings{ViewType: ViewSummary}, want: "summary"},
		{in: TileSettings{ViewType: ViewDetails, API: "github"}, want: "github - details"},
		{in: TileSettings{ViewType: ViewGraph, API: "github", AdditionalSettings: map[string]any{"chartType": "line"}}, want: "github - graph - line"},
	}
	for _, tt := range tests {
		if got := tt.in.DefaultTitle(); got != tt.want {
			t.Fatalf("DefaultTitle(%#v): want %q got %q", tt.in, tt.want, got)
		}
	}
}
