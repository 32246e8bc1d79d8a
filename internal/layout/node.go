// Package layout implements the binary split tree that models a dashboard's
// screen real estate.
//
// A tree is either nil (no tiles), a Leaf naming one tile, or a Split dividing
// its area between two non-nil children. All operations are pure: they never
// mutate their input and may share untouched subtrees with it.
package layout

import (
	"errors"
	"fmt"
)

// DefaultSplitPercentage is the share given to a split's first child when none
// is specified.
const DefaultSplitPercentage = 50.0

var ErrInvalidLayout = errors.New("invalid layout")

type Direction string

const (
	Row    Direction = "row"
	Column Direction = "column"
)

func (d Direction) Valid() bool {
	return d == Row || d == Column
}

type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

func ParseEdge(s string) (Edge, error) {
	switch e := Edge(s); e {
	case EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
		return e, nil
	default:
		return "", fmt.Errorf("unknown edge: %q (want left|right|top|bottom)", s)
	}
}

// Direction returns the split direction produced by inserting next to e.
func (e Edge) Direction() Direction {
	if e == EdgeTop || e == EdgeBottom {
		return Column
	}
	return Row
}

// Before reports whether a leaf inserted at e becomes the first child.
func (e Edge) Before() bool {
	return e == EdgeLeft || e == EdgeTop
}

// Node is a layout tree node. The only implementations are Leaf and Split.
type Node interface {
	isNode()
}

type Leaf struct {
	ID string
}

type Split struct {
	Direction       Direction
	First           Node
	Second          Node
	SplitPercentage float64
}

func (Leaf) isNode()  {}
func (Split) isNode() {}

// NewSplit builds a split with the default percentage.
func NewSplit(dir Direction, first, second Node) Split {
	return Split{Direction: dir, First: first, Second: second, SplitPercentage: DefaultSplitPercentage}
}

// Leaves returns leaf ids in depth-first, first-before-second order.
func Leaves(n Node) []string {
	var out []string
	walkLeaves(n, func(id string) { out = append(out, id) })
	return out
}

func walkLeaves(n Node, fn func(id string)) {
	switch t := n.(type) {
	case Leaf:
		fn(t.ID)
	case Split:
		walkLeaves(t.First, fn)
		walkLeaves(t.Second, fn)
	}
}

func Contains(n Node, id string) bool {
	found := false
	walkLeaves(n, func(leaf string) {
		if leaf == id {
			found = true
		}
	})
	return found
}

// Validate checks the structural invariants: splits have a valid direction,
// two non-nil children and a percentage in (0,100); leaf ids are non-empty and
// appear at most once.
func Validate(n Node) error {
	seen := map[string]bool{}
	return validate(n, seen, true)
}

func validate(n Node, seen map[string]bool, root bool) error {
	switch t := n.(type) {
	case nil:
		if root {
			return nil
		}
		return fmt.Errorf("%w: split has a nil child", ErrInvalidLayout)
	case Leaf:
		if t.ID == "" {
			return fmt.Errorf("%w: empty leaf id", ErrInvalidLayout)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate leaf %q", ErrInvalidLayout, t.ID)
		}
		seen[t.ID] = true
		return nil
	case Split:
		if !t.Direction.Valid() {
			return fmt.Errorf("%w: unknown direction %q", ErrInvalidLayout, t.Direction)
		}
		if t.SplitPercentage <= 0 || t.SplitPercentage >= 100 {
			return fmt.Errorf("%w: split percentage %v out of range", ErrInvalidLayout, t.SplitPercentage)
		}
		if err := validate(t.First, seen, false); err != nil {
			return err
		}
		return validate(t.Second, seen, false)
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrInvalidLayout, n)
	}
}
