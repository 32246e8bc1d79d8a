package dnd

import "statusdeck/internal/layout"

// DragIntent is what is being dragged: a tile kind (view type or template id)
// and whether the dropped tile must be configured before use.
type DragIntent struct {
	TileKind    string
	NeedsConfig bool
}

// Tracker holds the state of at most one drag gesture. It is owned by a single
// UI loop and is not safe for concurrent use.
type Tracker struct {
	dragging *DragIntent
	hover    *Hover
}

func (t *Tracker) StartDrag(tileKind string, needsConfig bool) {
	t.dragging = &DragIntent{TileKind: tileKind, NeedsConfig: needsConfig}
	t.hover = nil
}

// SetHover records the current drop candidate. It reports false (and changes
// nothing) when no drag is active or the candidate is unchanged.
func (t *Tracker) SetHover(targetID string, edge layout.Edge) bool {
	if t.dragging == nil {
		return false
	}
	if t.hover != nil && t.hover.TargetID == targetID && t.hover.Edge == edge {
		return false
	}
	t.hover = &Hover{TargetID: targetID, Edge: edge}
	return true
}

func (t *Tracker) ClearHover() bool {
	if t.hover == nil {
		return false
	}
	t.hover = nil
	return true
}

// EndDrag clears both the drag and the hover.
func (t *Tracker) EndDrag() bool {
	if t.dragging == nil && t.hover == nil {
		return false
	}
	t.dragging = nil
	t.hover = nil
	return true
}

func (t *Tracker) Dragging() (DragIntent, bool) {
	if t.dragging == nil {
		return DragIntent{}, false
	}
	return *t.dragging, true
}

func (t *Tracker) Hover() (Hover, bool) {
	if t.hover == nil {
		return Hover{}, false
	}
	return *t.hover, true
}

// Drop ends the gesture and returns what was being dragged and where. State is
// cleared whether or not the caller accepts the drop.
func (t *Tracker) Drop() (intent DragIntent, hover Hover, hasHover bool, ok bool) {
	intent, ok = t.Dragging()
	hover, hasHover = t.Hover()
	t.EndDrag()
	return intent, hover, hasHover, ok
}
