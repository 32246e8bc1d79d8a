// Package dnd resolves pointer positions to drop targets and tracks the
// transient state of a drag gesture.
package dnd

import (
	"statusdeck/internal/layout"
)

// Hover names the leaf under the pointer and the edge a drop would split.
type Hover struct {
	TargetID string
	Edge     layout.Edge
}

// MeasureFunc reports the on-screen box of a rendered leaf. The renderer owns
// measurement; ok is false for leaves that are not currently on screen.
type MeasureFunc func(id string) (layout.Rect, bool)

// Resolver maps a pointer cell to a Hover using rendered leaf boxes.
type Resolver struct {
	// CellAspect is the height of a cell in units of its width. Vertical
	// distances are scaled by it so "closest edge" matches what the eye sees.
	// Zero means 1.
	CellAspect float64
}

// Resolve finds the first leaf (in ids order) whose box contains (x, y) and the
// edge of that box closest to the pointer.
func (r Resolver) Resolve(x, y int, ids []string, measure MeasureFunc) (Hover, bool) {
	if measure == nil {
		return Hover{}, false
	}
	for _, id := range ids {
		rect, ok := measure(id)
		if !ok || rect.Empty() || !rect.Contains(x, y) {
			continue
		}
		return Hover{TargetID: id, Edge: r.nearestEdge(rect, x, y)}, true
	}
	return Hover{}, false
}

func (r Resolver) nearestEdge(rect layout.Rect, x, y int) layout.Edge {
	aspect := r.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	// Distances are measured to cell centres so a 1-cell border scores zero.
	left := float64(x - rect.X)
	right := float64(rect.X + rect.W - 1 - x)
	top := float64(y-rect.Y) * aspect
	bottom := float64(rect.Y+rect.H-1-y) * aspect

	best, dist := layout.EdgeLeft, left
	if right < dist {
		best, dist = layout.EdgeRight, right
	}
	if top < dist {
		best, dist = layout.EdgeTop, top
	}
	if bottom < dist {
		best = layout.EdgeBottom
	}
	return best
}

// ResolveTree resolves (x, y) against the tree itself laid out in bounds,
// without any rendered geometry.
func ResolveTree(tree layout.Node, bounds layout.Rect, x, y int) (Hover, bool) {
	if bounds.Empty() || !bounds.Contains(x, y) {
		return Hover{}, false
	}
	pos := layout.Point{
		X: (float64(x-bounds.X) + 0.5) / float64(bounds.W),
		Y: (float64(y-bounds.Y) + 0.5) / float64(bounds.H),
	}
	hit, ok := layout.FindPathAndEdge(tree, pos)
	if !ok {
		return Hover{}, false
	}
	return Hover{TargetID: hit.ID, Edge: hit.Edge}, true
}

// RectMeasure adapts a precomputed map of boxes to a MeasureFunc.
func RectMeasure(rects map[string]layout.Rect) MeasureFunc {
	return func(id string) (layout.Rect, bool) {
		r, ok := rects[id]
		return r, ok
	}
}
