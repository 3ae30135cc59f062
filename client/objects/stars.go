package objects

import (
	"image"
	"image/color"
	"math"

	"github.com/cbodonnell/connectn/client/layout"
	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WinObject marks every cell of a winning run with a star.
type WinObject struct {
	*BaseObject

	cells  []board.Position
	layout *layout.Layout
	frames int
}

func NewWinObject(id string, l *layout.Layout, run board.Run, zIndex int) *WinObject {
	return &WinObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		cells:      runCells(run),
		layout:     l,
	}
}

func runCells(run board.Run) []board.Position {
	n := run.Len()
	dr, dc := sign(run.To.Row-run.From.Row), sign(run.To.Col-run.From.Col)
	cells := make([]board.Position, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, board.Position{Row: run.From.Row + i*dr, Col: run.From.Col + i*dc})
	}
	return cells
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func (o *WinObject) Update() error {
	o.frames++
	return nil
}

func (o *WinObject) Draw(screen *ebiten.Image) {
	// Slow pulse so the run stands out against the pieces.
	pulse := 0.85 + 0.15*math.Sin(float64(o.frames)/8)
	outer := o.layout.Radius() * 0.6 * pulse
	for _, p := range o.cells {
		x, y := o.layout.CellCenter(p.Row, p.Col)
		drawStar(screen, x, y, outer, outer*0.45, color.White)
	}
}

func drawStar(screen *ebiten.Image, cx, cy, outer, inner float64, clr color.Color) {
	var path vector.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
