package scenes

import (
	"image/color"

	"github.com/cbodonnell/connectn/client/fonts"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	neutralButtonImage = &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	positiveButtonImage = &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 80, G: 170, B: 80, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 65, G: 135, B: 65, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 50, G: 100, B: 50, A: 255}),
	}
	negativeButtonImage = &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 170, G: 80, B: 80, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 135, G: 65, B: 65, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 50, B: 50, A: 255}),
	}

	buttonTextColor = &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
)

// colorButtonImage fills a button with a player's color, darkening it on hover
// and press.
func colorButtonImage(c color.RGBA) *widget.ButtonImage {
	shade := func(f float64) *eimage.NineSlice {
		return eimage.NewNineSliceColor(color.NRGBA{
			R: uint8(float64(c.R) * f),
			G: uint8(float64(c.G) * f),
			B: uint8(float64(c.B) * f),
			A: 255,
		})
	}
	return &widget.ButtonImage{
		Idle:    shade(1),
		Hover:   shade(0.8),
		Pressed: shade(0.6),
	}
}

func newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, fonts.TTFNormalFont, buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   15,
			Right:  15,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newRow(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}
