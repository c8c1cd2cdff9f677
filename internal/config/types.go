package config

const (
	SchemaVersion = 1

	DefaultGridCellSize = 20
	DefaultShowGrid     = true
	DefaultShowHelpBar  = true

	MinGridCellSize = 2
	MaxGridCellSize = 200
)

type RawConfig struct {
	SchemaVersion *int       `json:"schemaVersion,omitempty"`
	Canvas        *RawCanvas `json:"canvas,omitempty"`
	TUI           *RawTUI    `json:"tui,omitempty"`
}

type RawCanvas struct {
	GridCellSize *int  `json:"gridCellSize,omitempty"`
	ShowGrid     *bool `json:"showGrid,omitempty"`
}

type RawTUI struct {
	ShowHelpBar *bool `json:"showHelpBar,omitempty"`
}

type ResolvedConfig struct {
	SchemaVersion int            `json:"schemaVersion"`
	Canvas        ResolvedCanvas `json:"canvas"`
	TUI           ResolvedTUI    `json:"tui"`
}

type ResolvedCanvas struct {
	GridCellSize int  `json:"gridCellSize"`
	ShowGrid     bool `json:"showGrid"`
}

type ResolvedTUI struct {
	ShowHelpBar bool `json:"showHelpBar"`
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		Canvas: ResolvedCanvas{
			GridCellSize: DefaultGridCellSize,
			ShowGrid:     DefaultShowGrid,
		},
		TUI: ResolvedTUI{
			ShowHelpBar: DefaultShowHelpBar,
		},
	}
}
