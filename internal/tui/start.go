package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/scrawl/internal/config"
	"github.com/inkwell-tools/scrawl/internal/scene"
)

// Start runs the editor over the given scene until the user quits.
func Start(cfg config.ResolvedConfig, elements []*scene.Element) error {
	program := tea.NewProgram(NewModel(cfg, elements), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
