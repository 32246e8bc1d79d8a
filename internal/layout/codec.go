package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire shape: a leaf is a bare JSON string, a split is an object with
// direction/first/second/splitPercentage keys, an empty tree is null.

type wireSplit struct {
	Direction       Direction       `json:"direction"`
	First           json.RawMessage `json:"first"`
	Second          json.RawMessage `json:"second"`
	SplitPercentage *float64        `json:"splitPercentage,omitempty"`
}

func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ID)
}

func (s Split) MarshalJSON() ([]byte, error) {
	first, err := Marshal(s.First)
	if err != nil {
		return nil, err
	}
	second, err := Marshal(s.Second)
	if err != nil {
		return nil, err
	}
	pct := s.SplitPercentage
	return json.Marshal(wireSplit{
		Direction:       s.Direction,
		First:           first,
		Second:          second,
		SplitPercentage: &pct,
	})
}

// Marshal encodes a tree; nil encodes as null.
func Marshal(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n)
}

// Unmarshal decodes and validates a tree. A split without splitPercentage gets
// DefaultSplitPercentage.
func Unmarshal(b []byte) (Node, error) {
	n, err := decodeNode(b)
	if err != nil {
		return nil, err
	}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeNode(b []byte) (Node, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	switch b[0] {
	case '"':
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return nil, err
		}
		return Leaf{ID: id}, nil
	case '{':
		var w wireSplit
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		first, err := decodeNode(w.First)
		if err != nil {
			return nil, err
		}
		second, err := decodeNode(w.Second)
		if err != nil {
			return nil, err
		}
		if first == nil || second == nil {
			return nil, fmt.Errorf("%w: split has a nil child", ErrInvalidLayout)
		}
		pct := DefaultSplitPercentage
		if w.SplitPercentage != nil {
			pct = *w.SplitPercentage
		}
		return Split{Direction: w.Direction, First: first, Second: second, SplitPercentage: pct}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected json %.20q", ErrInvalidLayout, b)
	}
}
