package objects

import (
	"image/color"
	"time"

	"github.com/cbodonnell/connectn/client/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DropDuration is how long a piece takes to fall from above the board to the
// bottom row. Shorter falls take proportionally less time.
const DropDuration = 600 * time.Millisecond

// PieceObject is a disc. It either hovers at a fixed point or falls along a tween.
type PieceObject struct {
	*BaseObject

	x, y   float64
	radius float64
	clr    color.Color
	drop   *tween.Tween
	hidden bool
}

type NewPieceObjectOptions struct {
	X      float64
	Y      float64
	Radius float64
	Color  color.Color
	ZIndex int
}

func NewPieceObject(id string, opts NewPieceObjectOptions) *PieceObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &PieceObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		x:          opts.X,
		y:          opts.Y,
		radius:     opts.Radius,
		clr:        clr,
	}
}

// MoveTo places the piece immediately.
func (o *PieceObject) MoveTo(x, y float64) {
	o.x, o.y = x, y
	o.drop = nil
}

// DropTo starts a fall from the current position to toY. fullFall is the
// distance of a fall to the bottom row and scales the duration.
func (o *PieceObject) DropTo(toY, fullFall float64) {
	d := DropDuration
	if fullFall > 0 {
		d = time.Duration(float64(DropDuration) * (toY - o.y) / fullFall)
	}
	o.drop = tween.New(o.y, toY, d, tween.BounceOut)
}

func (o *PieceObject) SetColor(clr color.Color) {
	o.clr = clr
}

func (o *PieceObject) Show() {
	o.hidden = false
}

func (o *PieceObject) Hide() {
	o.hidden = true
}

// Landed reports whether the piece is at rest.
func (o *PieceObject) Landed() bool {
	return o.drop == nil || o.drop.Done()
}

func (o *PieceObject) Update() error {
	if o.drop != nil {
		o.y = o.drop.Step(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (o *PieceObject) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	vector.DrawFilledCircle(screen, float32(o.x), float32(o.y), float32(o.radius), o.clr, true)
}
