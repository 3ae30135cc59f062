package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed reports a click, tap, Enter or gamepad confirm.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			continue
		}
		// The button 0 might not be A.
		if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsResetJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsLeftJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
}

func IsRightJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
}

// PointerPosition returns the position of the first touch, or the cursor when
// nothing is touching the screen.
func PointerPosition() (float64, float64) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// PointerTracker notices cursor movement between frames.
type PointerTracker struct {
	x, y  int
	ready bool
}

func (p *PointerTracker) Moved() bool {
	x, y := ebiten.CursorPosition()
	moved := !p.ready || x != p.x || y != p.y
	p.x, p.y, p.ready = x, y, true
	return moved
}

func IsEnterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
