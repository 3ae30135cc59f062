package objects

import (
	"image/color"

	"github.com/cbodonnell/connectn/client/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	BoardColor      = color.RGBA{R: 0x1f, G: 0x3a, B: 0x93, A: 0xff}
	BackgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// BoardObject draws the grid with an empty hole in every cell. Pieces are
// separate objects drawn above it.
type BoardObject struct {
	*BaseObject

	layout *layout.Layout
}

func NewBoardObject(id string, l *layout.Layout, zIndex int) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		layout:     l,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	l := o.layout
	pad := float32(l.CellSize * 0.1)
	vector.DrawFilledRect(screen, float32(l.OriginX)-pad, float32(l.OriginY)-pad, float32(l.Width())+2*pad, float32(l.Height())+2*pad, BoardColor, true)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			x, y := l.CellCenter(r, c)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(l.Radius()), BackgroundColor, true)
		}
	}
}
