package scene

// LinearEditing records an in-progress point-level edit of a single linear
// element. While it is active, duplication operates on the selected
// vertices instead of whole elements.
type LinearEditing struct {
	ElementID      string
	SelectedPoints []int
}

// AppState is the ambient editor state the duplication algorithm consumes.
// It is treated as a value: operations return a fresh state rather than
// mutating the one they were handed.
type AppState struct {
	SelectedElementIDs map[string]bool
	SelectedGroupIDs   map[string]bool
	EditingGroupID     *string
	EditingLinear      *LinearEditing
	GridSize           float64
}

func NewAppState() AppState {
	return AppState{
		SelectedElementIDs: map[string]bool{},
		SelectedGroupIDs:   map[string]bool{},
		GridSize:           DefaultGridSize,
	}
}

// Clone deep-copies the state so callers can derive a new value without
// aliasing the selection maps.
func (s AppState) Clone() AppState {
	out := s
	out.SelectedElementIDs = make(map[string]bool, len(s.SelectedElementIDs))
	for id, v := range s.SelectedElementIDs {
		out.SelectedElementIDs[id] = v
	}
	out.SelectedGroupIDs = make(map[string]bool, len(s.SelectedGroupIDs))
	for id, v := range s.SelectedGroupIDs {
		out.SelectedGroupIDs[id] = v
	}
	if s.EditingGroupID != nil {
		gid := *s.EditingGroupID
		out.EditingGroupID = &gid
	}
	if s.EditingLinear != nil {
		le := LinearEditing{ElementID: s.EditingLinear.ElementID}
		if s.EditingLinear.SelectedPoints != nil {
			le.SelectedPoints = append([]int{}, s.EditingLinear.SelectedPoints...)
		}
		out.EditingLinear = &le
	}
	return out
}

// HasSelection reports whether any element or group is currently selected.
func (s AppState) HasSelection() bool {
	for _, v := range s.SelectedElementIDs {
		if v {
			return true
		}
	}
	return false
}

func (s AppState) gridSize() float64 {
	if s.GridSize > 0 {
		return s.GridSize
	}
	return DefaultGridSize
}
