package layout

// Rect is a cell-aligned box on screen.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SplitSize returns how many of total cells go to the first child of a split
// with percentage pct. Both children keep at least one cell when total allows.
func SplitSize(total int, pct float64) int {
	if total <= 1 {
		return total
	}
	n := int(float64(total)*pct/100 + 0.5)
	if n < 1 {
		n = 1
	}
	if n > total-1 {
		n = total - 1
	}
	return n
}

// Rects lays the tree out inside bounds and returns every leaf's box.
func Rects(tree Node, bounds Rect) map[string]Rect {
	out := map[string]Rect{}
	layoutRects(tree, bounds, out)
	return out
}

func layoutRects(n Node, r Rect, out map[string]Rect) {
	switch t := n.(type) {
	case Leaf:
		out[t.ID] = r
	case Split:
		a, b := SplitRect(r, t.Direction, t.SplitPercentage)
		layoutRects(t.First, a, out)
		layoutRects(t.Second, b, out)
	}
}

// SplitRect divides r between the two children of a split.
func SplitRect(r Rect, dir Direction, pct float64) (Rect, Rect) {
	if dir == Column {
		h := SplitSize(r.H, pct)
		return Rect{X: r.X, Y: r.Y, W: r.W, H: h}, Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	}
	w := SplitSize(r.W, pct)
	return Rect{X: r.X, Y: r.Y, W: w, H: r.H}, Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
}
