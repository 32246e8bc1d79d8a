package layout

// Point is a position relative to a bounding box, each axis in [0,1].
type Point struct {
	X float64
	Y float64
}

// Branch names which child of a split a path step takes.
type Branch string

const (
	First  Branch = "first"
	Second Branch = "second"
)

// Hit is the leaf under a pointer, the path from the root to it and the edge
// of that leaf nearest to the pointer.
type Hit struct {
	ID   string
	Path []Branch
	Edge Edge
}

// FindPathAndEdge descends the tree using each split's direction and
// percentage, rescaling pos into the chosen child's local box at every step.
// ok is false only for an empty tree.
func FindPathAndEdge(tree Node, pos Point) (Hit, bool) {
	if tree == nil {
		return Hit{}, false
	}
	pos = Point{X: clamp01(pos.X), Y: clamp01(pos.Y)}

	var path []Branch
	n := tree
	for {
		switch t := n.(type) {
		case Leaf:
			return Hit{ID: t.ID, Path: path, Edge: NearestEdge(pos)}, true
		case Split:
			share := t.SplitPercentage / 100
			v := pos.X
			if t.Direction == Column {
				v = pos.Y
			}
			var local float64
			if v < share {
				path = append(path, First)
				n = t.First
				local = v / share
			} else {
				path = append(path, Second)
				n = t.Second
				local = (v - share) / (1 - share)
			}
			if t.Direction == Column {
				pos.Y = clamp01(local)
			} else {
				pos.X = clamp01(local)
			}
		default:
			return Hit{}, false
		}
	}
}

// NearestEdge picks the edge of the unit box closest to pos. Ties resolve in
// the order left, right, top, bottom.
func NearestEdge(pos Point) Edge {
	best := EdgeLeft
	dist := pos.X
	for _, c := range []struct {
		edge Edge
		d    float64
	}{
		{EdgeRight, 1 - pos.X},
		{EdgeTop, pos.Y},
		{EdgeBottom, 1 - pos.Y},
	} {
		if c.d < dist {
			best, dist = c.edge, c.d
		}
	}
	return best
}

// At follows path from the root and returns the node it ends on.
func At(tree Node, path []Branch) (Node, bool) {
	n := tree
	for _, b := range path {
		s, ok := n.(Split)
		if !ok {
			return nil, false
		}
		if b == First {
			n = s.First
		} else {
			n = s.Second
		}
	}
	return n, n != nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
