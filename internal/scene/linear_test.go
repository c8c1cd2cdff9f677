package scene

import "testing"

func TestDuplicateSelectedPointsInsertsAfterEach(t *testing.T) {
	line := &Element{
		ID:     "L",
		Type:   TypeLine,
		Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}},
	}

	out, selected, ok := DuplicateSelectedPoints(line, []int{0, 2})
	if !ok {
		t.Fatalf("expected ok")
	}
	want := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 0}}
	if len(out.Points) != len(want) {
		t.Fatalf("points = %v, want %v", out.Points, want)
	}
	for i := range want {
		if out.Points[i] != want[i] {
			t.Fatalf("points[%d] = %v, want %v", i, out.Points[i], want[i])
		}
	}
	if len(selected) != 2 || selected[0] != 1 || selected[1] != 4 {
		t.Fatalf("selected = %v, want [1 4]", selected)
	}
	if len(line.Points) != 3 {
		t.Fatalf("input mutated")
	}
}

func TestDuplicateSelectedPointsRejectsNonLinear(t *testing.T) {
	r := rect("R", 0, 0)
	if _, _, ok := DuplicateSelectedPoints(r, []int{0}); ok {
		t.Fatalf("non-linear element must not duplicate points")
	}
}

func TestDuplicateSelectedPointsOutOfRangeIgnored(t *testing.T) {
	line := &Element{ID: "L", Type: TypeLine, Points: []Point{{X: 0, Y: 0}}}
	if _, _, ok := DuplicateSelectedPoints(line, []int{-1, 5}); ok {
		t.Fatalf("out-of-range indices alone must not duplicate")
	}
}

func TestDuplicateSelectedPointsNilElement(t *testing.T) {
	if _, _, ok := DuplicateSelectedPoints(nil, []int{0}); ok {
		t.Fatalf("nil element must not duplicate")
	}
}
