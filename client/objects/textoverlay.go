package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/connectn/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject centers a title and an optional detail line on the screen.
type TextOverlayObject struct {
	*BaseObject

	title  string
	detail string
}

func NewTextOverlayObject(id string, title, detail string) GameObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		title:      strings.ToUpper(title),
		detail:     detail,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	cx, cy := float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2
	drawCentered(screen, o.title, fonts.TTFLargeFont, cx, cy-20, color.White)
	if o.detail != "" {
		drawCentered(screen, o.detail, fonts.TTFSmallFont, cx, cy+30, color.Gray{Y: 0xc0})
	}
}

func drawCentered(screen *ebiten.Image, t string, f font.Face, cx, cy float64, clr color.Color) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Max.X>>6)/2, cy-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
}
