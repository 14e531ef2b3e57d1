// internal/tui/frame.go
package tui

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of a frame.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is an off-screen character buffer, copied to the terminal with Blit.
type Frame struct {
	Cols, Rows int
	cells      []Cell
}

func NewFrame(cols, rows int) *Frame {
	f := &Frame{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
	f.Clear()
	return f
}

// Clear fills the frame with blanks.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Set writes one cell. Writes outside the frame are dropped.
func (f *Frame) Set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return
	}
	f.cells[row*f.Cols+col] = Cell{Rune: r, Style: style}
}

// At returns the cell at (col, row), or a blank outside the frame.
func (f *Frame) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return Cell{Rune: ' '}
	}
	return f.cells[row*f.Cols+col]
}

// Text writes s starting at (col, row).
func (f *Frame) Text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(col, row, r, style)
		col++
	}
}

// CenteredText writes s centred on the row.
func (f *Frame) CenteredText(row int, s string, style tcell.Style) {
	f.Text((f.Cols-len([]rune(s)))/2, row, s, style)
}

// Row returns the runes of one row as a string.
func (f *Frame) Row(row int) string {
	rs := make([]rune, f.Cols)
	for col := range rs {
		rs[col] = f.At(col, row).Rune
	}
	return string(rs)
}

// Blit copies the frame to the screen.
func (f *Frame) Blit(screen tcell.Screen) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			c := f.cells[row*f.Cols+col]
			screen.SetContent(col, row, c.Rune, nil, c.Style)
		}
	}
}
