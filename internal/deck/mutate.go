package deck

import (
	"fmt"

	"statusdeck/internal/layout"
	"statusdeck/internal/model"
)

// AddTile appends a new tile to the right of the whole layout and returns its
// id. Without a title the tile is named "Tile <n>".
func (s *Store) AddTile(settings model.TileSettings, title ...string) string {
	s.mu.Lock()
	id := s.freshIDLocked()
	name := s.titleForNewLocked(title)
	s.registry.Set(id, settings)
	s.registry.SetTitle(id, name)
	s.layout = layout.InsertAppend(s.layout, id)
	s.mu.Unlock()

	s.changed()
	return id
}

// AddTileRelative splits the tile targetID at edge and places a new tile
// there. It does nothing and returns ok=false when targetID is unknown.
func (s *Store) AddTileRelative(targetID string, edge layout.Edge, settings model.TileSettings, title ...string) (string, bool) {
	s.mu.Lock()
	if !s.registry.Has(targetID) {
		s.mu.Unlock()
		return "", false
	}
	id := s.freshIDLocked()
	next, ok := layout.InsertRelative(s.layout, targetID, id, edge)
	if !ok {
		// Registered but not placed (possible after a SetLayout that dropped
		// it). Keep registry and tree in step by not registering id either.
		s.mu.Unlock()
		s.logger.Debug("drop target not in layout", "target", targetID)
		return "", false
	}
	name := s.titleForNewLocked(title)
	s.registry.Set(id, settings)
	s.registry.SetTitle(id, name)
	s.layout = next
	s.mu.Unlock()

	s.changed()
	return id, true
}

// UpdateTile replaces a tile's settings and, when given, its title. The tree
// is untouched.
func (s *Store) UpdateTile(id string, settings model.TileSettings, title ...string) bool {
	s.mu.Lock()
	if !s.registry.Has(id) {
		s.mu.Unlock()
		return false
	}
	s.registry.Set(id, settings)
	if len(title) > 0 {
		s.registry.SetTitle(id, title[0])
	}
	s.mu.Unlock()

	s.changed()
	return true
}

// RenameTile changes only the title.
func (s *Store) RenameTile(id, title string) bool {
	s.mu.Lock()
	settings, ok := s.registry.Get(id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	return s.UpdateTile(id, settings, title)
}

func (s *Store) RemoveTile(id string) bool {
	s.mu.Lock()
	if !s.registry.Has(id) {
		s.mu.Unlock()
		return false
	}
	s.registry.Remove(id)
	s.registry.RemoveTitle(id)
	s.layout = layout.RemoveLeaf(s.layout, id)
	s.mu.Unlock()

	s.changed()
	return true
}

// SetLayout installs a tree produced by the renderer (resize, rearrange). The
// caller guarantees its leaves match the registered tiles.
func (s *Store) SetLayout(n layout.Node) {
	s.mu.Lock()
	s.layout = n
	s.mu.Unlock()

	s.changed()
}

// ResizeTile moves the divider next to tile id by delta percentage points.
func (s *Store) ResizeTile(id string, delta float64) bool {
	s.mu.Lock()
	next, ok := layout.Resize(s.layout, id, delta)
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.SetLayout(next)
	return true
}

// Reset reinstalls the default state.
func (s *Store) Reset() {
	s.mu.Lock()
	s.install(s.defaults.Clone())
	s.mu.Unlock()

	s.changed()
}

func (s *Store) freshIDLocked() string {
	for {
		id := s.newID()
		if id != "" && !s.registry.Has(id) && !layout.Contains(s.layout, id) {
			return id
		}
	}
}

func (s *Store) titleForNewLocked(title []string) string {
	if len(title) > 0 && title[0] != "" {
		return title[0]
	}
	return fmt.Sprintf("Tile %d", s.registry.Len()+1)
}

// State returns a deep copy of the current triple.
func (s *Store) State() model.LayoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.LayoutState{
		Layout:       s.layout,
		TileSettings: s.registry.Settings(),
		TitleMap:     s.registry.Titles(),
	}
}

func (s *Store) Layout() layout.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

func (s *Store) Tile(id string) (model.TileSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Get(id)
}

// Title returns the display title, falling back to "Untitled".
func (s *Store) Title(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Title(id)
}

// TileIDs returns the registered tile ids in layout order, followed by any
// registered but unplaced ids in sorted order.
func (s *Store) TileIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	seen := map[string]bool{}
	for _, id := range layout.Leaves(s.layout) {
		if s.registry.Has(id) && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	var rest []string
	for _, id := range s.registry.IDs() {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	return append(out, rest...)
}
