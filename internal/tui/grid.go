// internal/tui/grid.go
package tui

import (
	"math"

	"go-arena-survival/internal/config"
	"go-arena-survival/pkg/geom"
)

// Одна клетка терминала покрывает CellWidth×CellHeight пикселей арены.
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// hudRows is the number of rows above the arena.
	hudRows = 1
)

// GridSize returns the arena size in cells.
func GridSize() (cols, rows int) {
	return int(math.Ceil(config.ScreenWidth / CellWidth)), int(math.Ceil(config.ScreenHeight / CellHeight))
}

// PixelToCell maps an arena position to its cell.
func PixelToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// CellToPixel maps a cell to the arena position of its centre.
func CellToPixel(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// cellSpan returns the inclusive cell range covered by r. Anything smaller
// than a cell still covers the cell holding its origin.
func cellSpan(r geom.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = PixelToCell(r.X, r.Y)
	c1 = int(math.Ceil((r.X+r.W)/CellWidth)) - 1
	r1 = int(math.Ceil((r.Y+r.H)/CellHeight)) - 1
	return c0, r0, max(c0, c1), max(r0, r1)
}
