package scenes

import "github.com/cbodonnell/connectn/client/objects"

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

// NewErrorScene shows msg with the cause underneath. The game returns to player
// selection on the next confirm.
func NewErrorScene(msg string, cause error) (Scene, error) {
	detail := "Click to continue"
	if cause != nil {
		detail = cause.Error()
	}
	return &ErrorScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-error", msg, detail)),
	}, nil
}
