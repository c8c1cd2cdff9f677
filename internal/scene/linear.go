package scene

// DuplicateSelectedPoints inserts a clone of each selected vertex of a
// linear element immediately after the original and moves the point
// selection onto the clones. The input element is never mutated; the
// returned element is a fresh value with its own Points slice. Returns
// ok=false when el is not linear or no valid vertex is selected.
func DuplicateSelectedPoints(el *Element, indices []int) (*Element, []int, bool) {
	if el == nil || !el.IsLinear() {
		return el, nil, false
	}
	selected := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(el.Points) {
			selected[idx] = true
		}
	}
	if len(selected) == 0 {
		return el, nil, false
	}

	nextPoints := make([]Point, 0, len(el.Points)+len(selected))
	var nextSelected []int
	for i, p := range el.Points {
		nextPoints = append(nextPoints, p)
		if selected[i] {
			nextPoints = append(nextPoints, p)
			nextSelected = append(nextSelected, len(nextPoints)-1)
		}
	}

	out := CloneElement(el)
	out.Points = nextPoints
	return out, nextSelected, true
}

// duplicateLinearPoints handles the in-progress linear edit path of
// Duplicate: vertex duplication scoped to the edited element, with the
// whole-element algorithm skipped entirely.
func duplicateLinearPoints(elements []*Element, state AppState) DuplicateResult {
	editing := state.EditingLinear
	target := ByID(elements)[editing.ElementID]

	next, nextSelected, ok := DuplicateSelectedPoints(target, editing.SelectedPoints)
	if !ok {
		return DuplicateResult{Elements: elements, State: state}
	}

	out := make([]*Element, len(elements))
	for i, el := range elements {
		if el.ID == target.ID {
			out[i] = next
		} else {
			out[i] = el
		}
	}

	nextState := state.Clone()
	nextState.EditingLinear = &LinearEditing{
		ElementID:      target.ID,
		SelectedPoints: nextSelected,
	}
	return DuplicateResult{Elements: out, State: nextState, CommitToHistory: true}
}
