package scene

import "github.com/google/uuid"

// CloneElement returns a deep copy of el, same identity included. Every
// slice and pointer field is re-allocated so the clone shares no memory
// with the source.
func CloneElement(el *Element) *Element {
	out := *el
	if el.GroupIDs != nil {
		out.GroupIDs = append([]string{}, el.GroupIDs...)
	}
	if el.FrameID != nil {
		fid := *el.FrameID
		out.FrameID = &fid
	}
	if el.ContainerID != nil {
		cid := *el.ContainerID
		out.ContainerID = &cid
	}
	if el.BoundElements != nil {
		out.BoundElements = append([]BoundRef{}, el.BoundElements...)
	}
	if el.StartBinding != nil {
		b := *el.StartBinding
		out.StartBinding = &b
	}
	if el.EndBinding != nil {
		b := *el.EndBinding
		out.EndBinding = &b
	}
	if el.Points != nil {
		out.Points = append([]Point{}, el.Points...)
	}
	return &out
}

// DuplicateElement deep-clones el under a fresh identity, remaps its group
// ids through groupRemap (allocating fresh group ids on first sight), and
// offsets its position. When editingGroupID is set, that group id is kept
// as-is so a duplicate made inside a group stays in the group.
func DuplicateElement(editingGroupID *string, groupRemap map[string]string, el *Element, dx, dy float64) *Element {
	out := CloneElement(el)
	out.ID = uuid.NewString()
	out.GroupIDs = remapGroupIDs(el.GroupIDs, groupRemap, editingGroupID)
	out.X += dx
	out.Y += dy
	return out
}

func remapGroupIDs(groupIDs []string, remap map[string]string, editingGroupID *string) []string {
	if len(groupIDs) == 0 {
		return nil
	}
	out := make([]string, 0, len(groupIDs))
	for _, gid := range groupIDs {
		if editingGroupID != nil && gid == *editingGroupID {
			out = append(out, gid)
			continue
		}
		mapped, ok := remap[gid]
		if !ok {
			mapped = uuid.NewString()
			remap[gid] = mapped
		}
		out = append(out, mapped)
	}
	return out
}
