package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// notPlacedError reports a tile that is registered but not in the layout tree,
// so it cannot be a drop target or be resized.
type notPlacedError struct {
	id string
}

func (e notPlacedError) Error() string {
	return fmt.Sprintf("tile %s is not placed in a split", e.id)
}
