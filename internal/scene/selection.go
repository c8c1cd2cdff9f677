package scene

// SelectionOptions widens selection resolution beyond the directly
// selected ids.
type SelectionOptions struct {
	// IncludeBoundText pulls in the text label of any selected container.
	IncludeBoundText bool
	// IncludeFrameChildren pulls in every member of any selected frame.
	IncludeFrameChildren bool
}

// SelectedElements resolves the current selection against the scene, in
// canonical array order. Deleted elements and stale selected ids (ids not
// present in the scene) are ignored.
func SelectedElements(elements []*Element, state AppState, opts SelectionOptions) []*Element {
	byID := ByID(elements)
	include := make(map[string]bool, len(state.SelectedElementIDs))

	for _, el := range elements {
		if el.Deleted || !state.SelectedElementIDs[el.ID] {
			continue
		}
		include[el.ID] = true
		if opts.IncludeBoundText {
			if text := BoundTextOf(el, byID); text != nil {
				include[text.ID] = true
			}
		}
		if opts.IncludeFrameChildren && el.IsFrame() {
			for _, child := range FrameChildren(elements, el.ID) {
				if !child.Deleted {
					include[child.ID] = true
				}
			}
		}
	}

	out := make([]*Element, 0, len(include))
	for _, el := range elements {
		if include[el.ID] {
			out = append(out, el)
		}
	}
	return out
}

// SelectionForDuplicated derives the selection state that follows a
// duplication: the newly created elements are selected, except frame
// members (they inherit selection through their frame) and bound text
// (never independently selectable). Groups duplicated whole are marked in
// SelectedGroupIDs as well.
func SelectionForDuplicated(newElements []*Element, elements []*Element, state AppState) AppState {
	newIDs := make(map[string]bool, len(newElements))
	for _, el := range newElements {
		newIDs[el.ID] = true
	}

	selected := map[string]bool{}
	for _, el := range newElements {
		if el.FrameID != nil && newIDs[*el.FrameID] {
			continue
		}
		if el.IsBoundText() {
			continue
		}
		selected[el.ID] = true
	}

	selectedGroups := map[string]bool{}
	for _, el := range newElements {
		if !selected[el.ID] {
			continue
		}
		gid := outermostGroupID(el)
		if gid == "" || selectedGroups[gid] {
			continue
		}
		if groupFullySelected(elements, gid, selected) {
			selectedGroups[gid] = true
		}
	}

	next := state.Clone()
	next.SelectedElementIDs = selected
	next.SelectedGroupIDs = selectedGroups
	next.EditingLinear = nil
	return next
}

// SelectGroupsForSelection recomputes SelectedGroupIDs from the current
// per-element selection: a group is selected as a unit exactly when all of
// its live members are selected.
func SelectGroupsForSelection(elements []*Element, state AppState) AppState {
	next := state.Clone()
	next.SelectedGroupIDs = map[string]bool{}
	for _, el := range elements {
		if el.Deleted || !next.SelectedElementIDs[el.ID] {
			continue
		}
		gid := outermostGroupID(el)
		if gid == "" || next.SelectedGroupIDs[gid] {
			continue
		}
		if groupFullySelected(elements, gid, next.SelectedElementIDs) {
			next.SelectedGroupIDs[gid] = true
		}
	}
	return next
}

// groupFullySelected reports whether every live member of the group is in
// the selected set. Bound text members don't count against the group: they
// are excluded from direct selection by construction.
func groupFullySelected(elements []*Element, groupID string, selected map[string]bool) bool {
	found := false
	for _, el := range elements {
		if el.Deleted || !elementInGroup(el, groupID) {
			continue
		}
		if el.IsBoundText() {
			continue
		}
		if !selected[el.ID] {
			return false
		}
		found = true
	}
	return found
}
