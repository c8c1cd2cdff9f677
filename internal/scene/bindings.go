package scene

// BoundTextOf resolves the text element bound to el (its label), or nil.
// The lookup goes through el's BoundElements references.
func BoundTextOf(el *Element, byID map[string]*Element) *Element {
	for _, ref := range el.BoundElements {
		if ref.Type != TypeText {
			continue
		}
		if text, ok := byID[ref.ID]; ok && !text.Deleted {
			return text
		}
	}
	return nil
}

// ContainerOf resolves the container a bound text element labels, or nil.
func ContainerOf(el *Element, byID map[string]*Element) *Element {
	if el.ContainerID == nil {
		return nil
	}
	if container, ok := byID[*el.ContainerID]; ok {
		return container
	}
	return nil
}

// FixBoundTextAfterDuplication rewires ContainerID on duplicated bound
// text elements so each new label points at its own duplicated container.
// References to containers outside the remap table are left untouched.
func FixBoundTextAfterDuplication(elements []*Element, duplicated []*Element, oldIDToNewID map[string]string) {
	byID := ByID(elements)
	for _, old := range duplicated {
		next, ok := byID[oldIDToNewID[old.ID]]
		if !ok || next.ContainerID == nil {
			continue
		}
		if mapped, ok := oldIDToNewID[*next.ContainerID]; ok {
			cid := mapped
			next.ContainerID = &cid
		}
	}
}

// FixBindingsAfterDuplication rewires BoundElements references and arrow
// start/end bindings on duplicated elements. Ids absent from the remap
// table point outside the duplicated set and stay as they are, preserving
// links to elements that were not cloned.
func FixBindingsAfterDuplication(elements []*Element, duplicated []*Element, oldIDToNewID map[string]string) {
	byID := ByID(elements)
	for _, old := range duplicated {
		next, ok := byID[oldIDToNewID[old.ID]]
		if !ok {
			continue
		}
		for i, ref := range next.BoundElements {
			if mapped, ok := oldIDToNewID[ref.ID]; ok {
				next.BoundElements[i].ID = mapped
			}
		}
		if next.StartBinding != nil {
			if mapped, ok := oldIDToNewID[next.StartBinding.ElementID]; ok {
				b := *next.StartBinding
				b.ElementID = mapped
				next.StartBinding = &b
			}
		}
		if next.EndBinding != nil {
			if mapped, ok := oldIDToNewID[next.EndBinding.ElementID]; ok {
				b := *next.EndBinding
				b.ElementID = mapped
				next.EndBinding = &b
			}
		}
	}
}

// FixFrameMembershipAfterDuplication rewires FrameID on duplicated
// elements whose frame was cloned along with them. A duplicate of a frame
// member made without its frame keeps the original FrameID and so stays in
// that frame.
func FixFrameMembershipAfterDuplication(elements []*Element, duplicated []*Element, oldIDToNewID map[string]string) {
	byID := ByID(elements)
	for _, old := range duplicated {
		next, ok := byID[oldIDToNewID[old.ID]]
		if !ok || next.FrameID == nil {
			continue
		}
		if mapped, ok := oldIDToNewID[*next.FrameID]; ok {
			fid := mapped
			next.FrameID = &fid
		}
	}
}
