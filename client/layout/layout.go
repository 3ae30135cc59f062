package layout

import (
	"github.com/solarlune/resolv"
)

const (
	// TagColumn marks the hit areas that cover each board column.
	TagColumn = "column"
	// TagPointer marks the probe used to find the column under the cursor.
	TagPointer = "pointer"

	// LabelHeight is the strip at the top of the screen for the turn label.
	LabelHeight = 40
	Margin      = 20
)

// Layout maps board cells to screen coordinates and screen points back to columns.
type Layout struct {
	Rows     int
	Cols     int
	CellSize float64
	// OriginX and OriginY are the top-left corner of the grid.
	OriginX float64
	OriginY float64

	space   *resolv.Space
	pointer *resolv.Object
}

// New fits a rows by cols grid into a width by height screen.
func New(width, height, rows, cols int) *Layout {
	// One extra row of cells above the grid holds the hovering piece.
	cell := max(min((width-2*Margin)/cols, (height-LabelHeight-Margin)/(rows+1)), 1)
	gridW, gridH := cell*cols, cell*(rows+1)
	top := LabelHeight + (height-LabelHeight-Margin-gridH)/2
	l := &Layout{
		Rows:     rows,
		Cols:     cols,
		CellSize: float64(cell),
		OriginX:  float64((width - gridW) / 2),
		OriginY:  float64(top + cell),
	}

	// Space cells are board-cell sized, padded by one so the last column is
	// covered when the screen is not a multiple of the cell size.
	l.space = resolv.NewSpace(width+cell, height+cell, cell, cell)
	for c := 0; c < cols; c++ {
		x := l.OriginX + float64(c*cell)
		l.space.Add(resolv.NewObject(x, 0, float64(cell), float64(height), TagColumn))
	}
	l.pointer = resolv.NewObject(0, 0, 1, 1, TagPointer)
	l.space.Add(l.pointer)
	return l
}

// ColumnAt returns the column under the screen point (x, y), if any.
func (l *Layout) ColumnAt(x, y float64) (int, bool) {
	l.pointer.Position.X = x
	l.pointer.Position.Y = y
	l.pointer.Update()

	collision := l.pointer.Check(0, 0, TagColumn)
	if collision == nil {
		return -1, false
	}
	for _, obj := range collision.Objects {
		if x >= obj.Position.X && x < obj.Position.X+obj.Size.X {
			return int((obj.Position.X - l.OriginX) / l.CellSize), true
		}
	}
	return -1, false
}

// CellCenter returns the screen center of a cell. Row 0 is the bottom row.
func (l *Layout) CellCenter(row, col int) (float64, float64) {
	x := l.OriginX + (float64(col)+0.5)*l.CellSize
	y := l.OriginY + (float64(l.Rows-1-row)+0.5)*l.CellSize
	return x, y
}

// HoverY is the vertical center of a piece waiting above the board.
func (l *Layout) HoverY() float64 {
	return l.OriginY - l.CellSize/2
}

// Radius is the radius of a piece.
func (l *Layout) Radius() float64 {
	return l.CellSize * 0.4
}

func (l *Layout) Width() float64 {
	return l.CellSize * float64(l.Cols)
}

func (l *Layout) Height() float64 {
	return l.CellSize * float64(l.Rows)
}
