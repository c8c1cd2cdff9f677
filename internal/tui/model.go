package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/scrawl/internal/clip"
	"github.com/inkwell-tools/scrawl/internal/config"
	"github.com/inkwell-tools/scrawl/internal/scene"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditLabel
)

// Model is the bubbletea model hosting the editor. The scene array and the
// ambient selection state live here; every structural operation is
// delegated to the scene package.
type Model struct {
	elements []*scene.Element
	state    scene.AppState
	cfg      config.ResolvedConfig

	// Cursor position in grid cells.
	cursorX int
	cursorY int

	mode        Mode
	labelInput  textinput.Model
	labelTarget string

	history []snapshot

	windowWidth  int
	windowHeight int
	statusMsg    string
}

func NewModel(cfg config.ResolvedConfig, elements []*scene.Element) Model {
	state := scene.NewAppState()
	state.GridSize = float64(cfg.Canvas.GridCellSize)

	input := textinput.New()
	input.Placeholder = "label"
	input.CharLimit = 120

	return Model{
		elements:   elements,
		state:      state,
		cfg:        cfg,
		cursorX:    2,
		cursorY:    2,
		labelInput: input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == ModeEditLabel {
			return m.updateLabelEdit(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up":
		m.cursorY = maxInt(0, m.cursorY-1)
	case "down":
		m.cursorY++
	case "left":
		m.cursorX = maxInt(0, m.cursorX-1)
	case "right":
		m.cursorX++

	case "shift+up":
		m.moveSelection(0, -1)
	case "shift+down":
		m.moveSelection(0, 1)
	case "shift+left":
		m.moveSelection(-1, 0)
	case "shift+right":
		m.moveSelection(1, 0)

	case "enter", " ", "space":
		m.toggleSelectUnderCursor()
	case "esc":
		m.clearSelection()

	case "r":
		m.createShape(scene.TypeRectangle)
	case "o":
		m.createShape(scene.TypeEllipse)
	case "i":
		m.createShape(scene.TypeDiamond)
	case "f":
		m.createShape(scene.TypeFrame)
	case "a":
		m.createShape(scene.TypeArrow)
	case "t":
		m.createText()

	case "g":
		m.groupSelection()
	case "u":
		m.ungroupSelection()

	case "d", "ctrl+d":
		m.duplicateSelection()

	case "y":
		m.copySelection()
	case "p":
		m.paste()

	case "x", "backspace", "delete":
		m.deleteSelection()

	case "z", "ctrl+z":
		m.undo()

	case "l":
		return m.beginLabelEdit()
	}
	return m, nil
}

// duplicateSelection runs the duplication orchestrator and records an undo
// step only when the result says so.
func (m *Model) duplicateSelection() {
	res := scene.Duplicate(m.elements, m.state)
	if !res.CommitToHistory {
		m.statusMsg = "nothing to duplicate"
		return
	}
	m.pushHistory()
	m.elements = res.Elements
	m.state = res.State
	m.statusMsg = "duplicated selection"
}

func (m *Model) copySelection() {
	n, err := clip.CopySelection(m.elements, m.state)
	if err != nil {
		m.statusMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	if n == 0 {
		m.statusMsg = "nothing selected"
		return
	}
	m.statusMsg = fmt.Sprintf("copied %d element(s)", n)
}

func (m *Model) paste() {
	res, err := clip.Paste(m.elements, m.state)
	if err != nil {
		m.statusMsg = fmt.Sprintf("paste failed: %v", err)
		return
	}
	if res.Pasted == 0 {
		m.statusMsg = "clipboard is empty"
		return
	}
	m.pushHistory()
	m.elements = res.Elements
	m.state = res.State
	m.statusMsg = fmt.Sprintf("pasted %d element(s)", res.Pasted)
}

func (m *Model) createShape(t scene.ElementType) {
	g := m.gridSize()
	el := scene.NewElement(t, float64(m.cursorX)*g, float64(m.cursorY)*g, 10*g, 4*g)
	m.pushHistory()
	m.elements = append(m.elements, el)
	m.selectOnly(el.ID)
}

func (m *Model) createText() {
	g := m.gridSize()
	el := scene.NewElement(scene.TypeText, float64(m.cursorX)*g, float64(m.cursorY)*g, 6*g, g)
	el.Text = "text"
	m.pushHistory()
	m.elements = append(m.elements, el)
	m.selectOnly(el.ID)
}

func (m *Model) groupSelection() {
	selected := scene.SelectedElements(m.elements, m.state, scene.SelectionOptions{})
	if len(selected) < 2 {
		m.statusMsg = "select at least two elements to group"
		return
	}
	m.pushHistory()
	m.state = scene.GroupSelection(m.elements, m.state)
	m.statusMsg = "grouped selection"
}

func (m *Model) ungroupSelection() {
	if len(m.state.SelectedGroupIDs) == 0 {
		m.statusMsg = "no group selected"
		return
	}
	m.pushHistory()
	m.state = scene.UngroupSelection(m.elements, m.state)
	m.statusMsg = "ungrouped selection"
}

func (m *Model) deleteSelection() {
	if !m.state.HasSelection() {
		m.statusMsg = "nothing selected"
		return
	}
	m.pushHistory()
	m.state = scene.DeleteSelection(m.elements, m.state)
	m.statusMsg = "deleted selection"
}

func (m *Model) moveSelection(dx, dy int) {
	if !m.state.HasSelection() {
		return
	}
	g := m.gridSize()
	m.pushHistory()
	scene.MoveSelection(m.elements, m.state, float64(dx)*g, float64(dy)*g)
}

func (m *Model) toggleSelectUnderCursor() {
	el := m.elementAt(m.cursorX, m.cursorY)
	if el == nil {
		m.statusMsg = "nothing under cursor"
		return
	}
	next := m.state.Clone()
	if next.SelectedElementIDs[el.ID] {
		delete(next.SelectedElementIDs, el.ID)
	} else {
		next.SelectedElementIDs[el.ID] = true
	}
	// Keep group selection in sync: a group is selected as a unit when
	// all of its members are.
	m.state = scene.SelectGroupsForSelection(m.elements, next)
}

func (m *Model) clearSelection() {
	next := m.state.Clone()
	next.SelectedElementIDs = map[string]bool{}
	next.SelectedGroupIDs = map[string]bool{}
	m.state = next
}

func (m *Model) selectOnly(id string) {
	next := m.state.Clone()
	next.SelectedElementIDs = map[string]bool{id: true}
	next.SelectedGroupIDs = map[string]bool{}
	m.state = next
}

// elementAt returns the topmost live element whose footprint covers the
// given cell. A hit on a container's label resolves to the container:
// bound text is selected and moved through the shape it annotates.
func (m Model) elementAt(cx, cy int) *scene.Element {
	live := scene.NonDeleted(m.elements)
	for i := len(live) - 1; i >= 0; i-- {
		if !m.covers(live[i], cx, cy) {
			continue
		}
		el := live[i]
		if el.IsBoundText() {
			if container := scene.ContainerOf(el, scene.ByID(m.elements)); container != nil {
				return container
			}
		}
		return el
	}
	return nil
}

func (m Model) covers(el *scene.Element, cx, cy int) bool {
	x0, y0, x1, y1 := m.cellBounds(el)
	return cx >= x0 && cx <= x1 && cy >= y0 && cy <= y1
}

func (m Model) cellBounds(el *scene.Element) (int, int, int, int) {
	if el.IsLinear() && len(el.Points) > 0 {
		minX, minY := el.X+el.Points[0].X, el.Y+el.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range el.Points[1:] {
			minX = math.Min(minX, el.X+p.X)
			minY = math.Min(minY, el.Y+p.Y)
			maxX = math.Max(maxX, el.X+p.X)
			maxY = math.Max(maxY, el.Y+p.Y)
		}
		return m.toCell(minX), m.toCell(minY), m.toCell(maxX), m.toCell(maxY)
	}
	if el.Type == scene.TypeText {
		w := float64(len([]rune(el.Text))) * m.gridSize()
		if w < m.gridSize() {
			w = m.gridSize()
		}
		return m.toCell(el.X), m.toCell(el.Y), m.toCell(el.X + w - 1), m.toCell(el.Y)
	}
	return m.toCell(el.X), m.toCell(el.Y), m.toCell(el.X + el.Width), m.toCell(el.Y + el.Height)
}

func (m Model) toCell(v float64) int {
	return int(math.Floor(v/m.gridSize() + 0.5))
}

func (m Model) gridSize() float64 {
	return float64(m.cfg.Canvas.GridCellSize)
}

func (m Model) isSelected(el *scene.Element) bool {
	if m.state.SelectedElementIDs[el.ID] {
		return true
	}
	for _, gid := range el.GroupIDs {
		if m.state.SelectedGroupIDs[gid] {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
