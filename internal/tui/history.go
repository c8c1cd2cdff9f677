package tui

import "github.com/inkwell-tools/scrawl/internal/scene"

// snapshot is one undoable step: a deep copy of the scene plus the
// selection state that accompanied it.
type snapshot struct {
	elements []*scene.Element
	state    scene.AppState
}

const maxHistoryDepth = 100

// pushHistory records the current scene before a committing mutation.
func (m *Model) pushHistory() {
	copied := make([]*scene.Element, len(m.elements))
	for i, el := range m.elements {
		copied[i] = scene.CloneElement(el)
	}
	m.history = append(m.history, snapshot{elements: copied, state: m.state.Clone()})
	if len(m.history) > maxHistoryDepth {
		m.history = m.history[len(m.history)-maxHistoryDepth:]
	}
}

func (m *Model) undo() {
	if len(m.history) == 0 {
		m.statusMsg = "nothing to undo"
		return
	}
	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.elements = last.elements
	m.state = last.state
	m.statusMsg = "undone"
}
