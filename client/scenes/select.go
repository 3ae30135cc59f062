package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/cbodonnell/connectn/client/fonts"
	"github.com/cbodonnell/connectn/client/input"
	"github.com/cbodonnell/connectn/client/objects"
	"github.com/cbodonnell/connectn/client/ui"
	"github.com/cbodonnell/connectn/pkg/config"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSelectScene lets the player pick each seat's color and who controls it
// before a game.
type PlayerSelectScene struct {
	*BaseScene

	ui       *ebitenui.UI
	specs    []players.Spec
	board    config.BoardConfig
	onStart  func(specs []players.Spec) error
	startErr string
}

type PlayerSelectSceneOpts struct {
	// Specs are the players in turn order. Their colors and kinds can be changed
	// here; colors stay distinct.
	Specs []players.Spec
	Board config.BoardConfig
	// OnStart is called with the chosen players when the start button is pressed.
	OnStart func(specs []players.Spec) error
}

var _ Scene = &PlayerSelectScene{}

func NewPlayerSelectScene(opts PlayerSelectSceneOpts) (Scene, error) {
	if len(opts.Specs) == 0 {
		return nil, fmt.Errorf("no players to select")
	}
	return &PlayerSelectScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("player-select-root", nil)),
		specs:     append([]players.Spec(nil), opts.Specs...),
		board:     opts.Board,
		onStart:   opts.OnStart,
	}, nil
}

func (s *PlayerSelectScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *PlayerSelectScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    80,
				Left:   120,
				Right:  120,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Connect %d", s.board.Streak), fonts.TTFLargeFont, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	))
	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("%d rows by %d columns", s.board.Rows, s.board.Cols), fonts.TTFSmallFont, color.Gray{Y: 0xc0}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	))

	for i := range s.specs {
		spec := &s.specs[i]
		clr, err := config.ParseColor(spec.Color)
		if err != nil {
			log.Warn("Unknown color %s: %v", spec.Color, err)
			clr = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}

		row := newRow(20)
		row.AddChild(newButton(spec.Color, colorButtonImage(clr), func() {
			spec.Color = players.NextColor(s.specs, i)
			s.renderUI()
		}))
		row.AddChild(newButton(spec.Kind.String(), neutralButtonImage, func() {
			spec.Kind = spec.Kind.Next()
			s.renderUI()
		}))
		rootContainer.AddChild(row)
	}

	rootContainer.AddChild(newButton("Start", positiveButtonImage, s.start))

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		))
		s.startErr = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *PlayerSelectScene) start() {
	if err := s.onStart(append([]players.Spec(nil), s.specs...)); err != nil {
		log.Error("Failed to start game: %v", err)
		var actionableErr *ui.ActionableError
		if errors.As(err, &actionableErr) {
			s.startErr = actionableErr.Message
		} else {
			s.startErr = "Failed to start game"
		}
		s.renderUI()
	}
}

func (s *PlayerSelectScene) Update() error {
	s.ui.Update()
	if input.IsEnterJustPressed() {
		s.start()
		return nil
	}
	return s.BaseScene.Update()
}

func (s *PlayerSelectScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
