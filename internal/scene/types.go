package scene

type ElementType string

const (
	TypeRectangle ElementType = "rectangle"
	TypeEllipse   ElementType = "ellipse"
	TypeDiamond   ElementType = "diamond"
	TypeArrow     ElementType = "arrow"
	TypeLine      ElementType = "line"
	TypeText      ElementType = "text"
	TypeFrame     ElementType = "frame"
)

// DefaultGridSize is the grid cell length used when the ambient state
// carries no configured value.
const DefaultGridSize = 20.0

// Point is a vertex of a linear element, relative to the element's x/y.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundRef records one element bound to another (a container's text label,
// or an arrow attached to a shape).
type BoundRef struct {
	ID   string      `json:"id"`
	Type ElementType `json:"type"`
}

// PointBinding attaches an arrow endpoint to a bindable element.
type PointBinding struct {
	ElementID string  `json:"elementId"`
	Focus     float64 `json:"focus"`
	Gap       float64 `json:"gap"`
}

// Element is one entry of the flat, z-ordered scene array. Group
// membership, frame containment and bindings are all encoded through id
// references rather than pointers, so relationships survive cloning by
// plain id remapping.
type Element struct {
	ID     string      `json:"id"`
	Type   ElementType `json:"type"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Angle  float64     `json:"angle,omitempty"`

	// GroupIDs is ordered innermost-first: the last entry is the
	// outermost group the element belongs to.
	GroupIDs []string `json:"groupIds,omitempty"`

	// FrameID points at the containing frame element, if any.
	FrameID *string `json:"frameId,omitempty"`

	Deleted bool `json:"isDeleted,omitempty"`

	// Text carries the content of text elements.
	Text string `json:"text,omitempty"`

	// ContainerID is set on a bound text element and points at the shape
	// it labels.
	ContainerID *string `json:"containerId,omitempty"`

	// BoundElements is the reverse side: a container's label, or arrows
	// attached to this element.
	BoundElements []BoundRef `json:"boundElements,omitempty"`

	// Arrow endpoint attachments.
	StartBinding *PointBinding `json:"startBinding,omitempty"`
	EndBinding   *PointBinding `json:"endBinding,omitempty"`

	// Points holds the vertices of linear elements.
	Points []Point `json:"points,omitempty"`
}

func (e *Element) IsFrame() bool {
	return e.Type == TypeFrame
}

func (e *Element) IsLinear() bool {
	return e.Type == TypeArrow || e.Type == TypeLine
}

// IsBoundText reports whether the element is a text label owned by a
// container. Bound text is never an independent duplication unit.
func (e *Element) IsBoundText() bool {
	return e.Type == TypeText && e.ContainerID != nil
}

// ByID builds an id lookup over the given elements. Later entries win on
// (invalid) duplicate ids, matching array semantics where the last
// occurrence is authoritative.
func ByID(elements []*Element) map[string]*Element {
	m := make(map[string]*Element, len(elements))
	for _, el := range elements {
		m[el.ID] = el
	}
	return m
}

// NonDeleted filters out elements whose Deleted flag is set.
func NonDeleted(elements []*Element) []*Element {
	out := make([]*Element, 0, len(elements))
	for _, el := range elements {
		if !el.Deleted {
			out = append(out, el)
		}
	}
	return out
}
