package scene

import "github.com/google/uuid"

// NewElement creates a shape at the given position with a fresh identity.
func NewElement(t ElementType, x, y, width, height float64) *Element {
	el := &Element{
		ID:     uuid.NewString(),
		Type:   t,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
	if el.IsLinear() {
		el.Points = []Point{{X: 0, Y: 0}, {X: width, Y: height}}
	}
	return el
}

// BindText attaches text as the label of container, wiring both sides of
// the pairing. An existing label reference is replaced.
func BindText(container, text *Element) {
	cid := container.ID
	text.ContainerID = &cid

	for i, ref := range container.BoundElements {
		if ref.Type == TypeText {
			container.BoundElements[i].ID = text.ID
			return
		}
	}
	container.BoundElements = append(container.BoundElements, BoundRef{ID: text.ID, Type: TypeText})
}

// AddToFrame sets el's frame containment.
func AddToFrame(el *Element, frame *Element) {
	fid := frame.ID
	el.FrameID = &fid
}

// MoveSelection shifts every resolved selected element (labels and frame
// members ride along) by the given delta, mutating in place.
func MoveSelection(elements []*Element, state AppState, dx, dy float64) {
	for _, el := range SelectedElements(elements, state, SelectionOptions{
		IncludeBoundText:     true,
		IncludeFrameChildren: true,
	}) {
		el.X += dx
		el.Y += dy
	}
}

// DeleteSelection marks the resolved selection deleted and clears the
// selection state. The array keeps the records; Deleted elements are
// filtered out of queries.
func DeleteSelection(elements []*Element, state AppState) AppState {
	for _, el := range SelectedElements(elements, state, SelectionOptions{
		IncludeBoundText:     true,
		IncludeFrameChildren: true,
	}) {
		el.Deleted = true
	}
	next := state.Clone()
	next.SelectedElementIDs = map[string]bool{}
	next.SelectedGroupIDs = map[string]bool{}
	return next
}
