package cli

import "github.com/inkwell-tools/scrawl/internal/scene"

// DemoScene builds a small scene exercising every structural relationship:
// a labelled container, a two-shape group, a frame with a member, and an
// arrow bound to two shapes.
func DemoScene() []*scene.Element {
	g := scene.DefaultGridSize

	container := scene.NewElement(scene.TypeRectangle, 2*g, 2*g, 12*g, 4*g)
	label := scene.NewElement(scene.TypeText, 4*g, 3*g, 0, g)
	label.Text = "start"
	scene.BindText(container, label)

	left := scene.NewElement(scene.TypeEllipse, 2*g, 10*g, 8*g, 4*g)
	right := scene.NewElement(scene.TypeDiamond, 14*g, 10*g, 8*g, 4*g)
	gid := "demo-pair"
	left.GroupIDs = []string{gid}
	right.GroupIDs = []string{gid}

	frame := scene.NewElement(scene.TypeFrame, 28*g, 2*g, 16*g, 10*g)
	member := scene.NewElement(scene.TypeRectangle, 30*g, 4*g, 8*g, 3*g)
	scene.AddToFrame(member, frame)

	arrow := scene.NewElement(scene.TypeArrow, 14*g, 4*g, 0, 0)
	arrow.Points = []scene.Point{{X: 0, Y: 0}, {X: 14 * g, Y: 2 * g}}
	arrow.StartBinding = &scene.PointBinding{ElementID: container.ID}
	arrow.EndBinding = &scene.PointBinding{ElementID: member.ID}
	container.BoundElements = append(container.BoundElements, scene.BoundRef{ID: arrow.ID, Type: scene.TypeArrow})
	member.BoundElements = append(member.BoundElements, scene.BoundRef{ID: arrow.ID, Type: scene.TypeArrow})

	return []*scene.Element{container, label, left, right, member, frame, arrow}
}
