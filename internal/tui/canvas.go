package tui

import (
	"strings"

	"github.com/inkwell-tools/scrawl/internal/scene"
)

type border struct {
	tl, tr, bl, br rune
	horiz, vert    rune
}

var (
	rectBorder    = border{'┌', '┐', '└', '┘', '─', '│'}
	rectSelected  = border{'╔', '╗', '╚', '╝', '═', '║'}
	roundBorder   = border{'╭', '╮', '╰', '╯', '─', '│'}
	roundSelected = border{'╭', '╮', '╰', '╯', '═', '║'}
	dimdBorder    = border{'/', '\\', '\\', '/', '-', '|'}
	dimdSelected  = border{'/', '\\', '\\', '/', '=', '|'}
	frameBorder   = border{'┌', '┐', '└', '┘', '┄', '┆'}
	frameSelected = border{'╔', '╗', '╚', '╝', '═', '║'}
)

const (
	lineRune     = '·'
	lineSelected = '•'
	cursorRune   = '┼'
	gridRune     = '∙'
)

// renderCanvas rasterizes the live scene onto a rune grid of the given
// size. One terminal cell corresponds to one grid cell.
func (m Model) renderCanvas(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	if m.cfg.Canvas.ShowGrid {
		for y := 0; y < height; y += 4 {
			for x := 0; x < width; x += 8 {
				grid[y][x] = gridRune
			}
		}
	}

	for _, el := range m.elements {
		if el.Deleted {
			continue
		}
		m.drawElement(grid, el)
	}

	set(grid, m.cursorX, m.cursorY, cursorRune)

	lines := make([]string, height)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return strings.Join(lines, "\n")
}

func (m Model) drawElement(grid [][]rune, el *scene.Element) {
	selected := m.isSelected(el)
	switch {
	case el.IsLinear():
		m.drawLinear(grid, el, selected)
	case el.Type == scene.TypeText:
		m.drawText(grid, el, selected)
	default:
		m.drawBox(grid, el, selected)
	}
}

func (m Model) drawBox(grid [][]rune, el *scene.Element, selected bool) {
	x0, y0, x1, y1 := m.cellBounds(el)
	b := boxBorder(el.Type, selected)

	for x := x0 + 1; x < x1; x++ {
		set(grid, x, y0, b.horiz)
		set(grid, x, y1, b.horiz)
	}
	for y := y0 + 1; y < y1; y++ {
		set(grid, x0, y, b.vert)
		set(grid, x1, y, b.vert)
	}
	set(grid, x0, y0, b.tl)
	set(grid, x1, y0, b.tr)
	set(grid, x0, y1, b.bl)
	set(grid, x1, y1, b.br)
}

func (m Model) drawText(grid [][]rune, el *scene.Element, selected bool) {
	x, y, _, _ := m.cellBounds(el)
	runes := []rune(el.Text)
	if selected {
		runes = append(append([]rune{'['}, runes...), ']')
		x--
	}
	for i, r := range runes {
		set(grid, x+i, y, r)
	}
}

func (m Model) drawLinear(grid [][]rune, el *scene.Element, selected bool) {
	if len(el.Points) == 0 {
		return
	}
	mark := lineRune
	if selected {
		mark = lineSelected
	}
	prevX := m.toCell(el.X + el.Points[0].X)
	prevY := m.toCell(el.Y + el.Points[0].Y)
	for _, p := range el.Points[1:] {
		cx := m.toCell(el.X + p.X)
		cy := m.toCell(el.Y + p.Y)
		drawSegment(grid, prevX, prevY, cx, cy, mark)
		prevX, prevY = cx, cy
	}
	if el.Type == scene.TypeArrow && len(el.Points) >= 2 {
		last := el.Points[len(el.Points)-1]
		prev := el.Points[len(el.Points)-2]
		set(grid, m.toCell(el.X+last.X), m.toCell(el.Y+last.Y), arrowHead(prev, last))
	}
}

func arrowHead(from, to scene.Point) rune {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▼'
	}
	return '▲'
}

// drawSegment walks a straight line between two cells, one step at a time
// along the dominant axis.
func drawSegment(grid [][]rune, x0, y0, x1, y1 int, mark rune) {
	dx := x1 - x0
	dy := y1 - y0
	steps := maxInt(absInt(dx), absInt(dy))
	if steps == 0 {
		set(grid, x0, y0, mark)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		set(grid, x, y, mark)
	}
}

func boxBorder(t scene.ElementType, selected bool) border {
	switch t {
	case scene.TypeEllipse:
		if selected {
			return roundSelected
		}
		return roundBorder
	case scene.TypeDiamond:
		if selected {
			return dimdSelected
		}
		return dimdBorder
	case scene.TypeFrame:
		if selected {
			return frameSelected
		}
		return frameBorder
	default:
		if selected {
			return rectSelected
		}
		return rectBorder
	}
}

func set(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
