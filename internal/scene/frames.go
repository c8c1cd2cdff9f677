package scene

// FrameChildren returns every element whose FrameID equals frameID, in
// canonical array order. The frame element itself is not included.
func FrameChildren(elements []*Element, frameID string) []*Element {
	var out []*Element
	for _, el := range elements {
		if el.FrameID != nil && *el.FrameID == frameID {
			out = append(out, el)
		}
	}
	return out
}
