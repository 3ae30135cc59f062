package objects

import (
	"image/color"

	"github.com/cbodonnell/connectn/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LabelObject is a line of text centered on (x, y).
type LabelObject struct {
	*BaseObject

	text string
	x, y float64
	face font.Face
	clr  color.Color
}

type NewLabelObjectOptions struct {
	Text string
	X    float64
	Y    float64
	// Face defaults to fonts.MPlusNormalFont.
	Face   font.Face
	Color  color.Color
	ZIndex int
}

func NewLabelObject(id string, opts NewLabelObjectOptions) *LabelObject {
	face := opts.Face
	if face == nil {
		face = fonts.MPlusNormalFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &LabelObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		face:       face,
		clr:        clr,
	}
}

func (o *LabelObject) SetText(t string, clr color.Color) {
	o.text = t
	if clr != nil {
		o.clr = clr
	}
}

func (o *LabelObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	bounds, _ := font.BoundString(o.face, o.text)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	h := float64((bounds.Max.Y - bounds.Min.Y).Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-w/2, o.y+h/2)
	op.ColorScale.ScaleWithColor(o.clr)
	text.DrawWithOptions(screen, o.text, o.face, op)
}
