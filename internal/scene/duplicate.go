package scene

// DuplicateResult is the outcome of a duplication: the next scene array,
// the next selection state, and whether the host should record an undo
// step. A no-op (nothing to duplicate) returns the inputs unchanged with
// CommitToHistory false.
type DuplicateResult struct {
	Elements        []*Element
	State           AppState
	CommitToHistory bool
}

// Duplicate clones the current selection, keeping every structural unit
// atomic: a selected group brings all of its members (frames inside the
// group bring their children), a container brings its bound text, a frame
// brings its members. Clones are interleaved right after the unit they
// copy, offset by half a grid cell on both axes. Inputs are never mutated;
// originals are shared into the output, clones are fresh.
//
// While a point-level edit of a linear element is active, duplication
// applies to the selected vertices of that element instead.
func Duplicate(elements []*Element, state AppState) DuplicateResult {
	if state.EditingLinear != nil {
		return duplicateLinearPoints(elements, state)
	}

	sorted := NormalizeOrder(elements)
	byID := ByID(sorted)
	offset := state.gridSize() / 2

	groupRemap := map[string]string{}
	oldIDToNewID := map[string]string{}
	var oldElements []*Element
	var newElements []*Element

	dup := func(el *Element) *Element {
		next := DuplicateElement(state.EditingGroupID, groupRemap, el, offset, offset)
		oldIDToNewID[el.ID] = next.ID
		oldElements = append(oldElements, el)
		newElements = append(newElements, next)
		return next
	}

	targets := map[string]*Element{}
	for _, el := range SelectedElements(sorted, state, SelectionOptions{
		IncludeBoundText:     true,
		IncludeFrameChildren: true,
	}) {
		targets[el.ID] = el
	}
	if len(targets) == 0 {
		return DuplicateResult{Elements: elements, State: state}
	}

	processed := map[string]bool{}
	mark := func(els []*Element) []*Element {
		for _, el := range els {
			processed[el.ID] = true
		}
		return els
	}

	var withClones []*Element
	for _, el := range sorted {
		if processed[el.ID] {
			continue
		}

		if _, isTarget := targets[el.ID]; isTarget {
			// Atomic-unit precedence: selected group, then bound-text
			// pairing, then frame. A grouped frame goes through the group
			// branch, which expands frames found among the members.
			if groupID := SelectedGroupIDForElement(state, el); groupID != "" {
				var unit []*Element
				for _, member := range ElementsInGroup(sorted, groupID) {
					if member.IsFrame() {
						unit = append(unit, FrameChildren(sorted, member.ID)...)
					}
					unit = append(unit, member)
				}
				withClones = append(withClones, mark(unit)...)
				for _, member := range unit {
					// Tombstoned members keep their place in the array but
					// are never cloned.
					if member.Deleted {
						continue
					}
					withClones = append(withClones, dup(member))
				}
				continue
			}
			if text := BoundTextOf(el, byID); text != nil {
				withClones = append(withClones, mark([]*Element{el, text})...)
				withClones = append(withClones, dup(el), dup(text))
				continue
			}
			if el.IsFrame() {
				children := FrameChildren(sorted, el.ID)
				unit := make([]*Element, 0, len(children)+1)
				unit = append(unit, children...)
				unit = append(unit, el)
				withClones = append(withClones, mark(unit)...)
				for _, child := range children {
					if child.Deleted {
						continue
					}
					withClones = append(withClones, dup(child))
				}
				withClones = append(withClones, dup(el))
				continue
			}
		}

		// Members of a frame that is itself being duplicated are emitted
		// when their frame is processed; emitting them here too would
		// double them up.
		if el.FrameID != nil {
			if _, frameTargeted := targets[*el.FrameID]; frameTargeted {
				continue
			}
		}

		withClones = append(withClones, mark([]*Element{el})...)
		if _, isTarget := targets[el.ID]; isTarget {
			withClones = append(withClones, dup(el))
		}
	}

	merged := dedupeKeepLast(withClones)

	FixBoundTextAfterDuplication(merged, oldElements, oldIDToNewID)
	FixBindingsAfterDuplication(merged, oldElements, oldIDToNewID)
	FixFrameMembershipAfterDuplication(merged, oldElements, oldIDToNewID)

	nextState := SelectionForDuplicated(newElements, merged, state)

	return DuplicateResult{
		Elements:        merged,
		State:           nextState,
		CommitToHistory: true,
	}
}

// dedupeKeepLast removes repeated ids from the emitted sequence, keeping
// the last forward occurrence of each: the scan runs from the end keeping
// first-seen, then the kept sequence is reversed back. Later occurrences
// reflect the contiguous unit expansion that should win, so this tie-break
// must not be simplified to first-occurrence-wins.
func dedupeKeepLast(elements []*Element) []*Element {
	seen := make(map[string]bool, len(elements))
	out := make([]*Element, 0, len(elements))
	for i := len(elements) - 1; i >= 0; i-- {
		el := elements[i]
		if seen[el.ID] {
			continue
		}
		seen[el.ID] = true
		out = append(out, el)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
