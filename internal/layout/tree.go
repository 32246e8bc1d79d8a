package layout

// InsertAppend places newID to the right of the whole tree. An empty tree
// becomes a single leaf.
func InsertAppend(tree Node, newID string) Node {
	if tree == nil {
		return Leaf{ID: newID}
	}
	return NewSplit(Row, tree, Leaf{ID: newID})
}

// InsertRelative replaces the leaf targetID with a split holding both the
// target and newID, oriented by edge. When targetID is not in the tree the tree
// is returned unchanged and ok is false; a stale drop target is expected, not
// an error.
func InsertRelative(tree Node, targetID, newID string, edge Edge) (out Node, ok bool) {
	if tree == nil {
		return nil, false
	}
	target := Leaf{ID: targetID}
	var first, second Node = target, Leaf{ID: newID}
	if edge.Before() {
		first, second = second, first
	}
	replacement := NewSplit(edge.Direction(), first, second)
	return replaceLeaf(tree, targetID, replacement)
}

func replaceLeaf(n Node, id string, with Node) (Node, bool) {
	switch t := n.(type) {
	case Leaf:
		if t.ID == id {
			return with, true
		}
		return t, false
	case Split:
		first, ok := replaceLeaf(t.First, id, with)
		if ok {
			t.First = first
			return t, true
		}
		second, ok := replaceLeaf(t.Second, id, with)
		if ok {
			t.Second = second
			return t, true
		}
		return n, false
	default:
		return n, false
	}
}

// RemoveLeaf drops the leaf id and collapses any split left with a single
// child into that child. Removing the last leaf yields nil.
func RemoveLeaf(tree Node, id string) Node {
	switch t := tree.(type) {
	case Leaf:
		if t.ID == id {
			return nil
		}
		return t
	case Split:
		first := RemoveLeaf(t.First, id)
		second := RemoveLeaf(t.Second, id)
		switch {
		case first == nil && second == nil:
			return nil
		case first == nil:
			return second
		case second == nil:
			return first
		}
		t.First = first
		t.Second = second
		return t
	default:
		return nil
	}
}

// Resize shifts the percentage of the split that directly contains leaf id by
// delta, clamped to [5,95]. ok is false when id is the root or absent.
func Resize(tree Node, id string, delta float64) (Node, bool) {
	s, ok := tree.(Split)
	if !ok {
		return tree, false
	}
	if l, isLeaf := s.First.(Leaf); isLeaf && l.ID == id {
		s.SplitPercentage = clampPercentage(s.SplitPercentage + delta)
		return s, true
	}
	if l, isLeaf := s.Second.(Leaf); isLeaf && l.ID == id {
		s.SplitPercentage = clampPercentage(s.SplitPercentage + delta)
		return s, true
	}
	if first, ok := Resize(s.First, id, delta); ok {
		s.First = first
		return s, true
	}
	if second, ok := Resize(s.Second, id, delta); ok {
		s.Second = second
		return s, true
	}
	return tree, false
}

func clampPercentage(p float64) float64 {
	if p < 5 {
		return 5
	}
	if p > 95 {
		return 95
	}
	return p
}
