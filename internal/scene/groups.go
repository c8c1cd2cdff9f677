package scene

import "github.com/google/uuid"

// SelectedGroupIDForElement resolves the outermost group of el that is
// currently selected as a unit, or "" when none of its groups is selected.
// GroupIDs is innermost-first, so the scan runs from the end.
func SelectedGroupIDForElement(state AppState, el *Element) string {
	for i := len(el.GroupIDs) - 1; i >= 0; i-- {
		if state.SelectedGroupIDs[el.GroupIDs[i]] {
			return el.GroupIDs[i]
		}
	}
	return ""
}

// ElementsInGroup returns every element carrying groupID, in canonical
// array order.
func ElementsInGroup(elements []*Element, groupID string) []*Element {
	var out []*Element
	for _, el := range elements {
		if elementInGroup(el, groupID) {
			out = append(out, el)
		}
	}
	return out
}

func elementInGroup(el *Element, groupID string) bool {
	for _, gid := range el.GroupIDs {
		if gid == groupID {
			return true
		}
	}
	return false
}

// outermostGroupID returns the last (outermost) group id of el, or "".
func outermostGroupID(el *Element) string {
	if len(el.GroupIDs) == 0 {
		return ""
	}
	return el.GroupIDs[len(el.GroupIDs)-1]
}

// GroupSelection wraps the current selection into a fresh group. Elements
// are mutated in place (the scene array owns them); the returned state has
// the new group selected. Selections of fewer than two elements are left
// alone.
func GroupSelection(elements []*Element, state AppState) AppState {
	selected := SelectedElements(elements, state, SelectionOptions{})
	if len(selected) < 2 {
		return state
	}
	gid := uuid.NewString()
	for _, el := range selected {
		el.GroupIDs = append(el.GroupIDs, gid)
	}
	next := state.Clone()
	next.SelectedGroupIDs = map[string]bool{gid: true}
	return next
}

// UngroupSelection removes every currently selected group from its
// members. Per-element selection is preserved.
func UngroupSelection(elements []*Element, state AppState) AppState {
	if len(state.SelectedGroupIDs) == 0 {
		return state
	}
	for _, el := range elements {
		if len(el.GroupIDs) == 0 {
			continue
		}
		kept := el.GroupIDs[:0]
		for _, gid := range el.GroupIDs {
			if !state.SelectedGroupIDs[gid] {
				kept = append(kept, gid)
			}
		}
		if len(kept) == 0 {
			el.GroupIDs = nil
		} else {
			el.GroupIDs = kept
		}
	}
	next := state.Clone()
	next.SelectedGroupIDs = map[string]bool{}
	return next
}
