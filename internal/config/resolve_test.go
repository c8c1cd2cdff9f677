package config

import "testing"

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestResolveConfigPrecedence(t *testing.T) {
	project := RawConfig{
		Canvas: &RawCanvas{GridCellSize: intPtr(12)},
	}
	global := RawConfig{
		Canvas: &RawCanvas{GridCellSize: intPtr(30), ShowGrid: boolPtr(false)},
		TUI:    &RawTUI{ShowHelpBar: boolPtr(false)},
	}

	resolved := ResolveConfig(project, global)
	if resolved.Canvas.GridCellSize != 12 {
		t.Fatalf("gridCellSize = %d, want 12", resolved.Canvas.GridCellSize)
	}
	if resolved.Canvas.ShowGrid != false {
		t.Fatalf("showGrid = %v, want false", resolved.Canvas.ShowGrid)
	}
	if resolved.TUI.ShowHelpBar != false {
		t.Fatalf("showHelpBar = %v, want false", resolved.TUI.ShowHelpBar)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	resolved := ResolveConfig(RawConfig{}, RawConfig{})
	if resolved.Canvas.GridCellSize != DefaultGridCellSize {
		t.Fatalf("gridCellSize = %d, want %d", resolved.Canvas.GridCellSize, DefaultGridCellSize)
	}
	if resolved.Canvas.ShowGrid != DefaultShowGrid {
		t.Fatalf("showGrid = %v, want %v", resolved.Canvas.ShowGrid, DefaultShowGrid)
	}
	if resolved.TUI.ShowHelpBar != DefaultShowHelpBar {
		t.Fatalf("showHelpBar = %v, want %v", resolved.TUI.ShowHelpBar, DefaultShowHelpBar)
	}
}

func TestResolveConfigClampsGridCellSize(t *testing.T) {
	low := ResolveConfig(RawConfig{Canvas: &RawCanvas{GridCellSize: intPtr(0)}}, RawConfig{})
	if low.Canvas.GridCellSize != MinGridCellSize {
		t.Fatalf("gridCellSize = %d, want clamped to %d", low.Canvas.GridCellSize, MinGridCellSize)
	}
	high := ResolveConfig(RawConfig{Canvas: &RawCanvas{GridCellSize: intPtr(10000)}}, RawConfig{})
	if high.Canvas.GridCellSize != MaxGridCellSize {
		t.Fatalf("gridCellSize = %d, want clamped to %d", high.Canvas.GridCellSize, MaxGridCellSize)
	}
}
