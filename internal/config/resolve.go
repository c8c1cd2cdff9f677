package config

// ResolveConfig merges project/global configs with built-in defaults.
// Precedence per key: project > global > defaults; the grid cell size is
// clamped to its bounds.
func ResolveConfig(project RawConfig, global RawConfig) ResolvedConfig {
	out := DefaultResolvedConfig()

	out.Canvas.GridCellSize = clampGridCellSize(resolveInt(
		canvasInt(project, func(c RawCanvas) *int { return c.GridCellSize }),
		canvasInt(global, func(c RawCanvas) *int { return c.GridCellSize }),
		out.Canvas.GridCellSize,
	))
	out.Canvas.ShowGrid = resolveBool(
		canvasBool(project, func(c RawCanvas) *bool { return c.ShowGrid }),
		canvasBool(global, func(c RawCanvas) *bool { return c.ShowGrid }),
		out.Canvas.ShowGrid,
	)
	out.TUI.ShowHelpBar = resolveBool(
		tuiBool(project, func(t RawTUI) *bool { return t.ShowHelpBar }),
		tuiBool(global, func(t RawTUI) *bool { return t.ShowHelpBar }),
		out.TUI.ShowHelpBar,
	)

	return out
}

func resolveInt(project *int, global *int, fallback int) int {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return fallback
}

func resolveBool(project *bool, global *bool, fallback bool) bool {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return fallback
}

func clampGridCellSize(v int) int {
	if v < MinGridCellSize {
		return MinGridCellSize
	}
	if v > MaxGridCellSize {
		return MaxGridCellSize
	}
	return v
}

func canvasInt(cfg RawConfig, pick func(RawCanvas) *int) *int {
	if cfg.Canvas == nil {
		return nil
	}
	return pick(*cfg.Canvas)
}

func canvasBool(cfg RawConfig, pick func(RawCanvas) *bool) *bool {
	if cfg.Canvas == nil {
		return nil
	}
	return pick(*cfg.Canvas)
}

func tuiBool(cfg RawConfig, pick func(RawTUI) *bool) *bool {
	if cfg.TUI == nil {
		return nil
	}
	return pick(*cfg.TUI)
}
