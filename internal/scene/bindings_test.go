package scene

import "testing"

func TestBoundTextOfIgnoresNonTextAndDeleted(t *testing.T) {
	c := rect("C", 0, 0)
	c.BoundElements = []BoundRef{{ID: "W", Type: TypeArrow}, {ID: "T", Type: TypeText}}
	tx := textEl("T", "C")
	arrow := arrowEl("W")
	byID := ByID([]*Element{c, tx, arrow})

	if got := BoundTextOf(c, byID); got != tx {
		t.Fatalf("bound text = %v, want T", got)
	}

	tx.Deleted = true
	if got := BoundTextOf(c, byID); got != nil {
		t.Fatalf("deleted bound text must not resolve")
	}
}

func TestContainerOf(t *testing.T) {
	c := rect("C", 0, 0)
	tx := textEl("T", "C")
	byID := ByID([]*Element{c, tx})

	if got := ContainerOf(tx, byID); got != c {
		t.Fatalf("container = %v, want C", got)
	}
	if got := ContainerOf(c, byID); got != nil {
		t.Fatalf("shape has no container")
	}
}

func TestFixBoundTextAfterDuplicationRewiresContainer(t *testing.T) {
	oldText := textEl("T", "C")
	newText := textEl("T2", "C")

	FixBoundTextAfterDuplication(
		[]*Element{newText},
		[]*Element{oldText},
		map[string]string{"T": "T2", "C": "C2"},
	)
	if *newText.ContainerID != "C2" {
		t.Fatalf("container = %q, want C2", *newText.ContainerID)
	}
}

func TestFixBoundTextLeavesUnmappedContainer(t *testing.T) {
	oldText := textEl("T", "OUTSIDE")
	newText := textEl("T2", "OUTSIDE")

	FixBoundTextAfterDuplication(
		[]*Element{newText},
		[]*Element{oldText},
		map[string]string{"T": "T2"},
	)
	if *newText.ContainerID != "OUTSIDE" {
		t.Fatalf("container = %q, want OUTSIDE untouched", *newText.ContainerID)
	}
}

func TestFixBindingsRewritesOnlyMappedIDs(t *testing.T) {
	oldArrow := arrowEl("W")
	newArrow := arrowEl("W2")
	newArrow.StartBinding = &PointBinding{ElementID: "A"}
	newArrow.EndBinding = &PointBinding{ElementID: "OUTSIDE"}
	newArrow.BoundElements = []BoundRef{{ID: "T", Type: TypeText}}

	FixBindingsAfterDuplication(
		[]*Element{newArrow},
		[]*Element{oldArrow},
		map[string]string{"W": "W2", "A": "A2", "T": "T2"},
	)
	if newArrow.StartBinding.ElementID != "A2" {
		t.Fatalf("start = %q, want A2", newArrow.StartBinding.ElementID)
	}
	if newArrow.EndBinding.ElementID != "OUTSIDE" {
		t.Fatalf("end = %q, want OUTSIDE untouched", newArrow.EndBinding.ElementID)
	}
	if newArrow.BoundElements[0].ID != "T2" {
		t.Fatalf("bound ref = %q, want T2", newArrow.BoundElements[0].ID)
	}
}

func TestFixFrameMembership(t *testing.T) {
	oldMember := rect("M", 0, 0)
	oldMember.FrameID = ptr("F")
	newMember := rect("M2", 0, 0)
	newMember.FrameID = ptr("F")
	outside := rect("O2", 0, 0)
	outside.FrameID = ptr("ELSEWHERE")
	oldOutside := rect("O", 0, 0)

	FixFrameMembershipAfterDuplication(
		[]*Element{newMember, outside},
		[]*Element{oldMember, oldOutside},
		map[string]string{"M": "M2", "F": "F2", "O": "O2"},
	)
	if *newMember.FrameID != "F2" {
		t.Fatalf("frame = %q, want F2", *newMember.FrameID)
	}
	if *outside.FrameID != "ELSEWHERE" {
		t.Fatalf("frame = %q, want ELSEWHERE untouched", *outside.FrameID)
	}
}
