package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-tools/scrawl/internal/scene"
)

var (
	barStyle    = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m Model) View() string {
	width := m.windowWidth
	height := m.windowHeight
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	reserved := 1 // bottom bar
	if m.statusMsg != "" {
		reserved++
	}
	if m.mode == ModeEditLabel {
		reserved += 3
	}
	canvas := m.renderCanvas(width, maxInt(1, height-reserved))

	var b strings.Builder
	b.WriteString(canvas)
	b.WriteString("\n")
	if m.mode == ModeEditLabel {
		b.WriteString(inputStyle.Render("label: " + m.labelInput.View()))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.renderBottomBar(width))
	return b.String()
}

func (m Model) renderBottomBar(width int) string {
	if !m.cfg.TUI.ShowHelpBar {
		return barStyle.Render(m.barCounts())
	}
	hints := []string{
		"[r]ect", "[o]val", "[i]diamond", "[f]rame", "[a]rrow", "[t]ext",
		"[l]abel", "[d]uplicate", "[g]roup", "[u]ngroup",
		"[y]copy", "[p]aste", "[x]delete", "[z]undo", "[q]uit",
	}
	left := strings.Join(hints, " ")
	right := m.barCounts()
	return barStyle.Render(layoutBar(left, right, width-2))
}

func (m Model) barCounts() string {
	live := scene.NonDeleted(m.elements)
	selected := scene.SelectedElements(m.elements, m.state, scene.SelectionOptions{})
	return fmt.Sprintf("elements:%d selected:%d", len(live), len(selected))
}

func layoutBar(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}
