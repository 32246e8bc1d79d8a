// Package tiles keeps the per-leaf content settings and display titles.
//
// The registry has no knowledge of the layout tree; keeping its keys in step
// with the tree's leaves is the caller's job.
package tiles

import (
	"sort"

	"statusdeck/internal/model"
)

const UntitledTitle = "Untitled"

type Registry struct {
	settings map[string]model.TileSettings
	titles   map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		settings: map[string]model.TileSettings{},
		titles:   map[string]string{},
	}
}

// FromMaps builds a registry holding copies of the given maps.
func FromMaps(settings map[string]model.TileSettings, titles map[string]string) *Registry {
	r := NewRegistry()
	for id, s := range settings {
		r.settings[id] = s.Clone()
	}
	for id, t := range titles {
		r.titles[id] = t
	}
	return r
}

func (r *Registry) Get(id string) (model.TileSettings, bool) {
	s, ok := r.settings[id]
	if !ok {
		return model.TileSettings{}, false
	}
	return s.Clone(), true
}

func (r *Registry) Has(id string) bool {
	_, ok := r.settings[id]
	return ok
}

func (r *Registry) Set(id string, s model.TileSettings) {
	r.settings[id] = s.Clone()
}

func (r *Registry) Remove(id string) {
	delete(r.settings, id)
}

func (r *Registry) SetTitle(id, title string) {
	r.titles[id] = title
}

func (r *Registry) RemoveTitle(id string) {
	delete(r.titles, id)
}

// Title returns the tile's title, or UntitledTitle when none is set.
func (r *Registry) Title(id string) string {
	if t, ok := r.titles[id]; ok && t != "" {
		return t
	}
	return UntitledTitle
}

func (r *Registry) Len() int {
	return len(r.settings)
}

// IDs returns the ids that have settings, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.settings))
	for id := range r.settings {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Settings returns a deep copy of the settings map.
func (r *Registry) Settings() map[string]model.TileSettings {
	out := make(map[string]model.TileSettings, len(r.settings))
	for id, s := range r.settings {
		out[id] = s.Clone()
	}
	return out
}

// Titles returns a copy of the raw title map (no Untitled fallback).
func (r *Registry) Titles() map[string]string {
	out := make(map[string]string, len(r.titles))
	for id, t := range r.titles {
		out[id] = t
	}
	return out
}
