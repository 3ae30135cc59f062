package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
)

var (
	ErrNoPlayers      = errors.New("a match needs at least one player")
	ErrDuplicateColor = errors.New("players must have distinct colors")
)

// Match is the game loop run on the worker goroutine. It owns the board while
// it runs; the presentation only reads the board while the match is blocked on
// its link or after it has returned.
type Match struct {
	board   *board.Board
	players []players.Player
	current int
	winner  players.Player
	logger  *log.Logger
}

func New(b *board.Board, ps []players.Player, logger *log.Logger) (*Match, error) {
	if len(ps) == 0 {
		return nil, ErrNoPlayers
	}
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if seen[p.Color()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColor, p.Color())
		}
		seen[p.Color()] = true
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Match{
		board:   b,
		players: ps,
		logger:  logger,
	}, nil
}

func (m *Match) Board() *board.Board {
	return m.board
}

func (m *Match) Players() []players.Player {
	return m.players
}

// Current returns the player whose turn it is.
func (m *Match) Current() players.Player {
	return m.players[m.current]
}

// Winner returns the player who completed a streak, or nil.
func (m *Match) Winner() players.Player {
	return m.winner
}

// Advance passes the turn to the next player, wrapping around.
func (m *Match) Advance() {
	m.current = (m.current + 1) % len(m.players)
}

// TakeTurn has p choose a column and drops its piece there. Computer moves are
// reported on link after the board is updated, and TakeTurn waits until the
// report is acknowledged.
func (m *Match) TakeTurn(ctx context.Context, p players.Player, link players.Link) (int, error) {
	col, err := p.ChooseMove(ctx, m.board, link)
	if err != nil {
		return -1, err
	}
	if !m.board.IsLegalMove(col) {
		return -1, &board.IllegalMoveError{Identity: p.Color(), Column: col}
	}
	row, err := m.board.ApplyMove(p.Color(), col)
	if err != nil {
		return -1, err
	}
	m.logger.Debug("%s played column %d, row %d", p.Name(), col, row)
	if !p.Human() {
		if err := link.ReportChoice(ctx, p.Color(), col); err != nil {
			return col, err
		}
	}
	return col, nil
}

// Run plays turns until a player wins or the board fills up.
func (m *Match) Run(ctx context.Context, link players.Link) error {
	for !m.board.IsFull() {
		p := m.Current()
		if _, err := m.TakeTurn(ctx, p, link); err != nil {
			return err
		}
		if winner, ok := m.board.Winner(); ok && winner == p.Color() {
			m.winner = p
			m.logger.Info("%s wins after %d moves", p.Name(), m.board.MoveCount())
			return nil
		}
		m.Advance()
	}
	m.logger.Info("Board is full, the game is a draw")
	return nil
}
