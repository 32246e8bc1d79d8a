package layout

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestMarshal_WireShape(t *testing.T) {
	t.Parallel()

	tree := Split{Direction: Row, First: leaf("tile1"), Second: col(leaf("tile2"), leaf("tile3")), SplitPercentage: 40}
	b, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"direction":"row","first":"tile1","second":{"direction":"column","first":"tile2","second":"tile3","splitPercentage":50},"splitPercentage":40}`
	if string(b) != want {
		t.Fatalf("wire shape mismatch:\nwant: %s\ngot:  %s", want, b)
	}

	b, err = Marshal(nil)
	if err != nil || string(b) != "null" {
		t.Fatalf("nil tree: %s %v", b, err)
	}
}

func TestUnmarshal_RoundTripDeepTree(t *testing.T) {
	t.Parallel()

	tree := row(
		col(leaf("a"), Split{Direction: Row, First: leaf("b"), Second: col(leaf("c"), leaf("d")), SplitPercentage: 33.5}),
		leaf("e"),
	)
	b, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, Node(tree)) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", tree, got)
	}
}

func TestUnmarshal_DefaultsMissingPercentage(t *testing.T) {
	t.Parallel()

	got, err := Unmarshal([]byte(`{"direction":"row","first":"tile1","second":{"direction":"column","first":"tile2","second":"tile3"}}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := row(leaf("tile1"), col(leaf("tile2"), leaf("tile3")))
	if !reflect.DeepEqual(got, Node(want)) {
		t.Fatalf("want %#v got %#v", want, got)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		`{"direction":"row","first":"a"}`,
		`{"direction":"row","first":"a","second":"a"}`,
		`{"direction":"row","first":"a","second":"b","splitPercentage":0}`,
		`{"direction":"sideways","first":"a","second":"b"}`,
		`42`,
	}
	for _, c := range cases {
		if _, err := Unmarshal([]byte(c)); !errors.Is(err, ErrInvalidLayout) {
			t.Fatalf("%s: expected ErrInvalidLayout, got %v", c, err)
		}
	}

	if _, err := Unmarshal([]byte(`{"direction":`)); err == nil {
		t.Fatalf("expected syntax error")
	}

	n, err := Unmarshal([]byte(`null`))
	if err != nil || n != nil {
		t.Fatalf("null: got %#v %v", n, err)
	}
}

func TestMarshal_NodeInsideStruct(t *testing.T) {
	t.Parallel()

	v := struct {
		Layout Node `json:"layout"`
	}{Layout: row(leaf("a"), leaf("b"))}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	want := `{"layout":{"direction":"row","first":"a","second":"b","splitPercentage":50}}`
	if string(b) != want {
		t.Fatalf("want %s got %s", want, b)
	}
}
