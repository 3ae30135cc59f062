package turn

import (
	"context"
	"fmt"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/rendezvous"
)

// Phase is the coordinator's view of the current turn.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingHumanChoice
	PhaseAwaitingAIReveal
	PhaseAnimating
	PhaseComplete
	PhaseResetting
	// PhaseFailed ends a session whose worker crashed or broke the protocol.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAwaitingHumanChoice:
		return "AwaitingHumanChoice"
	case PhaseAwaitingAIReveal:
		return "AwaitingAIReveal"
	case PhaseAnimating:
		return "Animating"
	case PhaseComplete:
		return "Complete"
	case PhaseResetting:
		return "Resetting"
	case PhaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Awaiting reports whether the phase waits on the presentation for a choice.
func (p Phase) Awaiting() bool {
	return p == PhaseAwaitingHumanChoice || p == PhaseAwaitingAIReveal
}

// Terminal reports whether only Reset can leave the phase.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// Engine is the game state a session's worker drives. The coordinator reads it
// only while the worker is blocked on the channel or after it has exited.
type Engine interface {
	Cols() int
	IsLegalMove(col int) bool
	LegalMoves() []int
	NextRow(col int) int
	ApplyMove(identity string, col int) (int, error)
	UndoLastMove() bool
	LastMove() (board.Position, bool)
	Winner() (string, bool)
	WinningRun() (board.Run, bool)
	IsFull() bool
}

// Session is one game: the engine and the routine that plays it on a worker.
type Session struct {
	Engine Engine
	// Run plays the game, talking to the presentation through ch.
	Run func(ctx context.Context, ch *rendezvous.Channel) error
	// IsHuman reports whether requests from identity are answered by a person.
	// Nil means every identity is human.
	IsHuman func(identity string) bool
}

// SessionFactory builds a fresh session. It is called at start and on every reset.
type SessionFactory func() (*Session, error)

// Chooser answers a request from a non-human identity on the presentation side.
// It serves player logic that asks the presentation on behalf of automated
// identities. Players from pkg/players compute their own moves and push them,
// so the bundled client and commands leave it unset.
type Chooser func(identity string, legal []int) int

// Prompt is the payload of AwaitingHumanChoice.
type Prompt struct {
	Identity string
	Legal    []int
}

// Move is a piece landing on the board. It is the payload of Animating.
type Move struct {
	Identity string
	Row      int
	Col      int
}

// Reveal is the payload of AwaitingAIReveal. Fakes lists columns to hover over
// before dropping; its last two entries are Move.Col.
type Reveal struct {
	Move  Move
	Fakes []int
}

// Outcome is the payload of Complete. A session whose worker stopped before the
// game ended has neither a winner nor a draw.
type Outcome struct {
	Winner string
	Draw   bool
	Run    board.Run
}

// Event records a phase change.
type Event struct {
	SessionID string
	Phase     Phase
	Identity  string
	Payload   any
}
