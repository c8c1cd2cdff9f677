package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/scrawl/internal/scene"
)

// beginLabelEdit opens the label input for the single selected shape.
// Bound text is edited through its container, never directly.
func (m Model) beginLabelEdit() (tea.Model, tea.Cmd) {
	selected := scene.SelectedElements(m.elements, m.state, scene.SelectionOptions{})
	if len(selected) != 1 {
		m.statusMsg = "select exactly one shape to label"
		return m, nil
	}
	target := selected[0]
	if target.Type == scene.TypeText || target.IsLinear() {
		m.statusMsg = "this element cannot hold a label"
		return m, nil
	}

	m.mode = ModeEditLabel
	m.labelTarget = target.ID
	m.labelInput.SetValue(currentLabel(m.elements, target))
	m.labelInput.CursorEnd()
	return m, m.labelInput.Focus()
}

func currentLabel(elements []*scene.Element, container *scene.Element) string {
	if text := scene.BoundTextOf(container, scene.ByID(elements)); text != nil {
		return text.Text
	}
	return ""
}

func (m Model) updateLabelEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.labelTarget = ""
		m.labelInput.Blur()
		return m, nil
	case "enter":
		m.commitLabel()
		m.mode = ModeNormal
		m.labelTarget = ""
		m.labelInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

// commitLabel writes the entered text onto the container's bound text,
// creating the text element and the pairing when none exists yet. The text
// element rides immediately after its container in the array.
func (m *Model) commitLabel() {
	byID := scene.ByID(m.elements)
	container, ok := byID[m.labelTarget]
	if !ok {
		return
	}
	value := m.labelInput.Value()

	m.pushHistory()
	if text := scene.BoundTextOf(container, byID); text != nil {
		text.Text = value
		m.statusMsg = "label updated"
		return
	}

	g := m.gridSize()
	text := scene.NewElement(scene.TypeText, container.X+g, container.Y+g, 0, g)
	text.Text = value
	scene.BindText(container, text)
	// A label of a framed shape lives in the same frame.
	if container.FrameID != nil {
		fid := *container.FrameID
		text.FrameID = &fid
	}

	idx := indexOfElement(m.elements, container.ID)
	out := make([]*scene.Element, 0, len(m.elements)+1)
	out = append(out, m.elements[:idx+1]...)
	out = append(out, text)
	out = append(out, m.elements[idx+1:]...)
	m.elements = out
	m.statusMsg = "label added"
}

func indexOfElement(elements []*scene.Element, id string) int {
	for i, el := range elements {
		if el.ID == id {
			return i
		}
	}
	return len(elements) - 1
}
