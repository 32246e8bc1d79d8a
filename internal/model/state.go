package model

import (
	"encoding/json"
	"fmt"
	"sort"

	"statusdeck/internal/layout"
)

// LayoutState is the persisted unit: the tree plus the per-leaf settings and
// titles.
type LayoutState struct {
	Layout       layout.Node
	TileSettings map[string]TileSettings
	TitleMap     map[string]string
}

type wireLayoutState struct {
	Layout       json.RawMessage         `json:"layout"`
	TileSettings map[string]TileSettings `json:"tileSettings"`
	TitleMap     map[string]string       `json:"titleMap"`
}

func (s LayoutState) MarshalJSON() ([]byte, error) {
	tree, err := layout.Marshal(s.Layout)
	if err != nil {
		return nil, err
	}
	w := wireLayoutState{Layout: tree, TileSettings: s.TileSettings, TitleMap: s.TitleMap}
	if w.TileSettings == nil {
		w.TileSettings = map[string]TileSettings{}
	}
	if w.TitleMap == nil {
		w.TitleMap = map[string]string{}
	}
	return json.Marshal(w)
}

func (s *LayoutState) UnmarshalJSON(b []byte) error {
	var w wireLayoutState
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	tree, err := layout.Unmarshal(w.Layout)
	if err != nil {
		return fmt.Errorf("decode layout: %w", err)
	}
	s.Layout = tree
	s.TileSettings = w.TileSettings
	s.TitleMap = w.TitleMap
	if s.TileSettings == nil {
		s.TileSettings = map[string]TileSettings{}
	}
	if s.TitleMap == nil {
		s.TitleMap = map[string]string{}
	}
	return nil
}

// Clone deep-copies the maps. The tree is immutable and shared.
func (s LayoutState) Clone() LayoutState {
	out := LayoutState{
		Layout:       s.Layout,
		TileSettings: make(map[string]TileSettings, len(s.TileSettings)),
		TitleMap:     make(map[string]string, len(s.TitleMap)),
	}
	for id, ts := range s.TileSettings {
		out.TileSettings[id] = ts.Clone()
	}
	for id, title := range s.TitleMap {
		out.TitleMap[id] = title
	}
	return out
}

// Orphans reports leaves without settings and settings without a leaf, each
// sorted. Both are empty when the tree and the settings agree.
func (s LayoutState) Orphans() (missingSettings, missingLeaves []string) {
	inTree := map[string]bool{}
	for _, id := range layout.Leaves(s.Layout) {
		inTree[id] = true
		if _, ok := s.TileSettings[id]; !ok {
			missingSettings = append(missingSettings, id)
		}
	}
	for id := range s.TileSettings {
		if !inTree[id] {
			missingLeaves = append(missingLeaves, id)
		}
	}
	sort.Strings(missingSettings)
	sort.Strings(missingLeaves)
	return missingSettings, missingLeaves
}
