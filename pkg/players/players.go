package players

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cbodonnell/connectn/pkg/board"
)

// Kind selects the logic behind a player.
type Kind int

const (
	KindHuman Kind = iota
	KindAI
	KindBetterAI
)

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAI:
		return "ai"
	case KindBetterAI:
		return "better-ai"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Next cycles through the kinds in order, wrapping back to KindHuman.
func (k Kind) Next() Kind {
	return (k + 1) % (KindBetterAI + 1)
}

// ParseKind converts a kind name as written in config files and flags.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return KindHuman, nil
	case "ai":
		return KindAI, nil
	case "better-ai", "betterai":
		return KindBetterAI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

var (
	ErrUnknownKind = errors.New("unknown player kind")
	ErrEmptyColor  = errors.New("player color must not be empty")
	// ErrBadChoice is returned when the presentation answers a request with
	// something other than a column number.
	ErrBadChoice = errors.New("choice is not a column")
	// ErrNoMoves is returned by ChooseMove on a full board.
	ErrNoMoves = errors.New("no legal moves")
)

// Link is the worker's side of the rendezvous with the presentation.
type Link interface {
	RequestChoice(ctx context.Context, identity string) (any, error)
	ReportChoice(ctx context.Context, identity string, value any) error
}

// Player takes turns on a board. Its color doubles as the identity used on the
// board and on the rendezvous channel.
type Player interface {
	Name() string
	Color() string
	Kind() Kind
	// Human reports whether moves come from the presentation.
	Human() bool
	// ChooseMove returns the column to play. It must not leave the board modified.
	ChooseMove(ctx context.Context, b *board.Board, link Link) (int, error)
}

type basePlayer struct {
	name  string
	color string
	kind  Kind
}

func (p *basePlayer) Name() string {
	return p.name
}

func (p *basePlayer) Color() string {
	return p.color
}

func (p *basePlayer) Kind() Kind {
	return p.kind
}

func newBase(color, name string, kind Kind) basePlayer {
	if name == "" {
		name = capitalize(color) + " player"
	}
	return basePlayer{name: name, color: color, kind: kind}
}

// HumanPlayer waits for the presentation to supply each move.
type HumanPlayer struct {
	basePlayer
}

func NewHumanPlayer(color, name string) *HumanPlayer {
	return &HumanPlayer{basePlayer: newBase(color, name, KindHuman)}
}

func (p *HumanPlayer) Human() bool {
	return true
}

func (p *HumanPlayer) ChooseMove(ctx context.Context, b *board.Board, link Link) (int, error) {
	if b.IsFull() {
		return -1, ErrNoMoves
	}
	v, err := link.RequestChoice(ctx, p.color)
	if err != nil {
		return -1, err
	}
	col, ok := v.(int)
	if !ok {
		return -1, fmt.Errorf("%w: %T from %s", ErrBadChoice, v, p.name)
	}
	return col, nil
}

// Spec describes a player to create.
type Spec struct {
	Color string
	Kind  Kind
	// Name overrides the generated name when set.
	Name string
}

// Palette is the set of colors offered when picking players.
var Palette = []string{"red", "blue", "green", "orange", "magenta", "cyan", "brown"}

// NextColor returns the palette color after the one seat i holds, skipping colors
// held by other seats. A color outside the palette moves to the first free one.
// When every other color is taken the seat keeps its color.
func NextColor(specs []Spec, i int) string {
	current := strings.ToLower(specs[i].Color)
	taken := make(map[string]bool, len(specs))
	for j, s := range specs {
		if j != i {
			taken[strings.ToLower(s.Color)] = true
		}
	}

	start := -1
	for j, c := range Palette {
		if c == current {
			start = j
			break
		}
	}
	for step := 1; step <= len(Palette); step++ {
		c := Palette[(start+step)%len(Palette)]
		if c != current && !taken[c] {
			return c
		}
	}
	return specs[i].Color
}

// MakePlayers builds players for a new game. Generated names depend on the mix:
// an all-human game names each player after its color, several computers get
// "<Color> AI player" and "<Color> human player", otherwise "AI player" and
// "Human player". AI players share rng.
func MakePlayers(specs []Spec, rng *rand.Rand) ([]Player, error) {
	humans, computers := 0, 0
	for _, s := range specs {
		if s.Kind == KindHuman {
			humans++
		} else {
			computers++
		}
	}

	result := make([]Player, 0, len(specs))
	for _, s := range specs {
		if s.Color == "" {
			return nil, ErrEmptyColor
		}
		name := s.Name
		switch s.Kind {
		case KindHuman:
			if name == "" && humans != len(specs) {
				if computers > 1 {
					name = capitalize(s.Color) + " human player"
				} else {
					name = "Human player"
				}
			}
			result = append(result, NewHumanPlayer(s.Color, name))
		case KindAI, KindBetterAI:
			if name == "" {
				if computers > 1 {
					name = capitalize(s.Color) + " AI player"
				} else {
					name = "AI player"
				}
			}
			if s.Kind == KindAI {
				result = append(result, NewAIPlayer(s.Color, name, rng))
			} else {
				result = append(result, NewBetterAIPlayer(s.Color, name, rng))
			}
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind))
		}
	}
	return result, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
