package scene

import "testing"

func TestSelectedGroupIDForElementOutermostWins(t *testing.T) {
	el := rect("A", 0, 0)
	el.GroupIDs = []string{"inner", "outer"}

	state := NewAppState()
	state.SelectedGroupIDs["inner"] = true
	state.SelectedGroupIDs["outer"] = true

	if got := SelectedGroupIDForElement(state, el); got != "outer" {
		t.Fatalf("group = %q, want outer", got)
	}

	delete(state.SelectedGroupIDs, "outer")
	if got := SelectedGroupIDForElement(state, el); got != "inner" {
		t.Fatalf("group = %q, want inner", got)
	}

	delete(state.SelectedGroupIDs, "inner")
	if got := SelectedGroupIDForElement(state, el); got != "" {
		t.Fatalf("group = %q, want none", got)
	}
}

func TestElementsInGroupKeepsArrayOrder(t *testing.T) {
	a := rect("A", 0, 0)
	a.GroupIDs = []string{"g"}
	x := rect("X", 0, 0)
	b := rect("B", 0, 0)
	b.GroupIDs = []string{"g"}

	got := ElementsInGroup([]*Element{a, x, b}, "g")
	if len(got) != 2 || got[0].ID != "A" || got[1].ID != "B" {
		t.Fatalf("members = %v, want [A B]", idsOf(got))
	}
}

func TestGroupSelectionWrapsSelection(t *testing.T) {
	a := rect("A", 0, 0)
	b := rect("B", 0, 0)
	elements := []*Element{a, b}

	state := GroupSelection(elements, selState("A", "B"))
	if len(a.GroupIDs) != 1 || len(b.GroupIDs) != 1 || a.GroupIDs[0] != b.GroupIDs[0] {
		t.Fatalf("expected a shared fresh group: %v / %v", a.GroupIDs, b.GroupIDs)
	}
	if !state.SelectedGroupIDs[a.GroupIDs[0]] {
		t.Fatalf("new group must be selected: %v", state.SelectedGroupIDs)
	}
}

func TestGroupSelectionSingleElementNoOp(t *testing.T) {
	a := rect("A", 0, 0)
	state := GroupSelection([]*Element{a}, selState("A"))
	if len(a.GroupIDs) != 0 {
		t.Fatalf("single element must not be grouped: %v", a.GroupIDs)
	}
	if len(state.SelectedGroupIDs) != 0 {
		t.Fatalf("no group should be selected")
	}
}

func TestUngroupSelectionRemovesSelectedGroups(t *testing.T) {
	a := rect("A", 0, 0)
	a.GroupIDs = []string{"keep", "g"}
	b := rect("B", 0, 0)
	b.GroupIDs = []string{"g"}

	state := selState("A", "B")
	state.SelectedGroupIDs["g"] = true

	next := UngroupSelection([]*Element{a, b}, state)
	if len(a.GroupIDs) != 1 || a.GroupIDs[0] != "keep" {
		t.Fatalf("a groups = %v, want [keep]", a.GroupIDs)
	}
	if len(b.GroupIDs) != 0 {
		t.Fatalf("b groups = %v, want none", b.GroupIDs)
	}
	if len(next.SelectedGroupIDs) != 0 {
		t.Fatalf("group selection must be cleared")
	}
	if !next.SelectedElementIDs["A"] {
		t.Fatalf("element selection must survive ungrouping")
	}
}
