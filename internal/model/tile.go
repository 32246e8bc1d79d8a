package model

import (
	"fmt"
	"sort"
)

type ViewType string

const (
	ViewSummary ViewType = "summary"
	ViewDetails ViewType = "details"
	ViewGraph   ViewType = "graph"
	ViewDev     ViewType = "dev"
	ViewWelcome ViewType = "welcome"
)

// ViewTypes lists every known view type in drawer order.
func ViewTypes() []ViewType {
	return []ViewType{ViewSummary, ViewDetails, ViewGraph, ViewDev, ViewWelcome}
}

func ParseViewType(s string) (ViewType, error) {
	for _, v := range ViewTypes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view type: %q", s)
}

// TileSettings describes what a tile shows. API references an external data
// source and may be empty; AdditionalSettings is view-type specific.
type TileSettings struct {
	ViewType           ViewType       `json:"viewType"`
	API                string         `json:"api"`
	AdditionalSettings map[string]any `json:"additionalSettings"`
	NeedsConfig        bool           `json:"needsConfig,omitempty"`
}

func (s TileSettings) Clone() TileSettings {
	s.AdditionalSettings = cloneMap(s.AdditionalSettings)
	return s
}

// SettingKeys returns AdditionalSettings keys in sorted order.
func (s TileSettings) SettingKeys() []string {
	keys := make([]string, 0, len(s.AdditionalSettings))
	for k := range s.AdditionalSettings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
