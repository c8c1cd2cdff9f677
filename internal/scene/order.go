package scene

// NormalizeOrder returns the elements in canonical z-order: a bound text
// element rides immediately after its container, and a frame's members
// (keeping their relative order) sit immediately before the frame itself.
// Everything else keeps its relative order. The input is never mutated.
//
// Dangling references are tolerated: a bound text whose container is gone,
// or a frame member whose frame is gone, stays where it was.
func NormalizeOrder(elements []*Element) []*Element {
	byID := ByID(elements)
	out := make([]*Element, 0, len(elements))
	emitted := make(map[string]bool, len(elements))

	emit := func(el *Element) {
		if emitted[el.ID] {
			return
		}
		emitted[el.ID] = true
		out = append(out, el)
		if text := BoundTextOf(el, byID); text != nil && !emitted[text.ID] {
			emitted[text.ID] = true
			out = append(out, text)
		}
	}

	for _, el := range elements {
		if emitted[el.ID] {
			continue
		}
		// Bound text waits for its container, frame members for their
		// frame, unless the owner no longer exists.
		if el.ContainerID != nil {
			if _, ok := byID[*el.ContainerID]; ok {
				continue
			}
		}
		if el.FrameID != nil {
			if _, ok := byID[*el.FrameID]; ok {
				continue
			}
		}
		if el.IsFrame() {
			for _, child := range FrameChildren(elements, el.ID) {
				// Bound text children follow their container instead.
				if child.ContainerID != nil {
					if _, ok := byID[*child.ContainerID]; ok {
						continue
					}
				}
				emit(child)
			}
		}
		emit(el)
	}

	// Anything left over had an inconsistent owner reference (e.g. a
	// container that never listed its text back). Keep it rather than
	// dropping it.
	for _, el := range elements {
		if !emitted[el.ID] {
			emitted[el.ID] = true
			out = append(out, el)
		}
	}
	return out
}
