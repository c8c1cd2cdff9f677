package scene

import "testing"

func rect(id string, x, y float64) *Element {
	return &Element{ID: id, Type: TypeRectangle, X: x, Y: y, Width: 40, Height: 30}
}

func frameEl(id string, x, y float64) *Element {
	return &Element{ID: id, Type: TypeFrame, X: x, Y: y, Width: 200, Height: 120}
}

func textEl(id string, containerID string) *Element {
	el := &Element{ID: id, Type: TypeText, Text: "label"}
	if containerID != "" {
		el.ContainerID = &containerID
	}
	return el
}

func arrowEl(id string) *Element {
	return &Element{
		ID:     id,
		Type:   TypeArrow,
		Points: []Point{{X: 0, Y: 0}, {X: 50, Y: 0}},
	}
}

func ptr(s string) *string {
	return &s
}

func selState(ids ...string) AppState {
	st := NewAppState()
	for _, id := range ids {
		st.SelectedElementIDs[id] = true
	}
	return st
}

func idsOf(elements []*Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}

func indexOf(t *testing.T, elements []*Element, id string) int {
	t.Helper()
	for i, el := range elements {
		if el.ID == id {
			return i
		}
	}
	t.Fatalf("element %q not found in %v", id, idsOf(elements))
	return -1
}

func countID(elements []*Element, id string) int {
	n := 0
	for _, el := range elements {
		if el.ID == id {
			n++
		}
	}
	return n
}

// newIDs returns the elements of out whose ids were not present in in,
// preserving out's order.
func newIDs(in, out []*Element) []*Element {
	known := map[string]bool{}
	for _, el := range in {
		known[el.ID] = true
	}
	var fresh []*Element
	for _, el := range out {
		if !known[el.ID] {
			fresh = append(fresh, el)
		}
	}
	return fresh
}
