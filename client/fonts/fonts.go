package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

var (
	// MPlusNormalFont is used for player names, which may not be ASCII.
	MPlusNormalFont font.Face

	TTFSmallFont  font.Face
	TTFNormalFont font.Face
	TTFLargeFont  font.Face
)

const dpi = 72

func loadFonts() error {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	MPlusNormalFont, err = opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	TTFSmallFont = truetype.NewFace(regular, &truetype.Options{Size: 16, DPI: dpi, Hinting: font.HintingFull})
	TTFNormalFont = truetype.NewFace(regular, &truetype.Options{Size: 24, DPI: dpi, Hinting: font.HintingFull})
	TTFLargeFont = truetype.NewFace(bold, &truetype.Options{Size: 40, DPI: dpi, Hinting: font.HintingFull})
	return nil
}
