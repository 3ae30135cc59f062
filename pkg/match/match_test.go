package match

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLink answers requests from a fixed list of columns and records reports.
type scriptedLink struct {
	answers  []any
	requests []string
	reports  []report
	// boardAtReport captures the move count seen when a report is made.
	board         *board.Board
	boardAtReport []int
}

type report struct {
	identity string
	value    any
}

func (l *scriptedLink) RequestChoice(ctx context.Context, identity string) (any, error) {
	l.requests = append(l.requests, identity)
	if len(l.answers) == 0 {
		return nil, errors.New("script exhausted")
	}
	v := l.answers[0]
	l.answers = l.answers[1:]
	return v, nil
}

func (l *scriptedLink) ReportChoice(ctx context.Context, identity string, value any) error {
	l.reports = append(l.reports, report{identity, value})
	if l.board != nil {
		l.boardAtReport = append(l.boardAtReport, l.board.MoveCount())
	}
	return nil
}

// fixedPlayer always plays the same column.
type fixedPlayer struct {
	players.HumanPlayer
	col int
}

func (p *fixedPlayer) Human() bool {
	return false
}

func (p *fixedPlayer) ChooseMove(ctx context.Context, b *board.Board, link players.Link) (int, error) {
	return p.col, nil
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0, log.LogLevelError)
}

func newMatch(t *testing.T, rows, cols, streak int, ps ...players.Player) *Match {
	t.Helper()
	b, err := board.New(rows, cols, streak)
	require.NoError(t, err)
	m, err := New(b, ps, quietLogger())
	require.NoError(t, err)
	return m
}

func TestNew_Validation(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)

	_, err = New(b, nil, nil)
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = New(b, []players.Player{
		players.NewHumanPlayer("red", ""),
		players.NewAIPlayer("red", "", nil),
	}, nil)
	assert.ErrorIs(t, err, ErrDuplicateColor)
}

func TestMatch_Advance(t *testing.T) {
	red := players.NewHumanPlayer("red", "")
	blue := players.NewHumanPlayer("blue", "")
	green := players.NewHumanPlayer("green", "")
	m := newMatch(t, 6, 7, 4, red, blue, green)

	var order []string
	for i := 0; i < 4; i++ {
		order = append(order, m.Current().Color())
		m.Advance()
	}
	assert.Equal(t, []string{"red", "blue", "green", "red"}, order)
}

func TestMatch_Run_HumansToWin(t *testing.T) {
	red := players.NewHumanPlayer("red", "")
	blue := players.NewHumanPlayer("blue", "")
	m := newMatch(t, 6, 7, 4, red, blue)

	link := &scriptedLink{answers: []any{0, 1, 0, 1, 0, 1, 0}}
	require.NoError(t, m.Run(context.Background(), link))

	assert.Same(t, red, m.Winner())
	assert.Equal(t, []string{"red", "blue", "red", "blue", "red", "blue", "red"}, link.requests)
	assert.Empty(t, link.reports, "human moves are never reported")
	assert.Equal(t, 7, m.Board().MoveCount())
}

func TestMatch_Run_ComputerReportsAfterMove(t *testing.T) {
	red := players.NewHumanPlayer("red", "")
	blue := players.NewAIPlayer("blue", "", rand.New(rand.NewSource(3)))
	m := newMatch(t, 1, 2, 1, red, blue)

	link := &scriptedLink{answers: []any{1}, board: m.Board()}
	require.NoError(t, m.Run(context.Background(), link))

	assert.Same(t, red, m.Winner(), "a one-streak game ends on the first move")
	assert.Empty(t, link.reports)

	m = newMatch(t, 1, 2, 2, red, blue)
	link = &scriptedLink{answers: []any{1}, board: m.Board()}
	require.NoError(t, m.Run(context.Background(), link))

	assert.Nil(t, m.Winner())
	assert.True(t, m.Board().IsFull())
	require.Len(t, link.reports, 1)
	assert.Equal(t, report{"blue", 0}, link.reports[0])
	assert.Equal(t, []int{2}, link.boardAtReport, "the board is updated before the report")
}

func TestMatch_Run_IllegalColumnIsAFault(t *testing.T) {
	tests := []struct {
		name   string
		player players.Player
		link   *scriptedLink
	}{
		{
			name:   "human off the board",
			player: players.NewHumanPlayer("red", ""),
			link:   &scriptedLink{answers: []any{9}},
		},
		{
			name:   "computer off the board",
			player: &fixedPlayer{HumanPlayer: *players.NewHumanPlayer("red", ""), col: -1},
			link:   &scriptedLink{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t, 6, 7, 4, tt.player)
			err := m.Run(context.Background(), tt.link)
			var illegal *board.IllegalMoveError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, "red", illegal.Identity)
			assert.Equal(t, 0, m.Board().MoveCount())
		})
	}
}

func TestMatch_Run_FullColumn(t *testing.T) {
	p := &fixedPlayer{HumanPlayer: *players.NewHumanPlayer("red", ""), col: 0}
	m := newMatch(t, 2, 2, 2, p, &fixedPlayer{HumanPlayer: *players.NewHumanPlayer("blue", ""), col: 0})

	err := m.Run(context.Background(), &scriptedLink{})
	var illegal *board.IllegalMoveError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, 0, illegal.Column)
	assert.Equal(t, 2, m.Board().MoveCount())
}

func TestMatch_Run_LinkError(t *testing.T) {
	m := newMatch(t, 6, 7, 4, players.NewHumanPlayer("red", ""))
	err := m.Run(context.Background(), &scriptedLink{})
	assert.EqualError(t, err, "script exhausted")
}

func TestNewSessionFactory(t *testing.T) {
	ps, err := players.MakePlayers([]players.Spec{
		{Color: "red", Kind: players.KindHuman},
		{Color: "blue", Kind: players.KindAI},
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	var matches []*Match
	factory := NewSessionFactory(Dimensions{Rows: 6, Cols: 7, Streak: 4}, ps, quietLogger(), func(m *Match) {
		matches = append(matches, m)
	})

	first, err := factory()
	require.NoError(t, err)
	second, err := factory()
	require.NoError(t, err)

	assert.NotSame(t, first.Engine, second.Engine)
	require.Len(t, matches, 2)
	assert.Equal(t, ps, matches[0].Players())
	assert.Equal(t, ps, matches[1].Players())

	assert.True(t, first.IsHuman("red"))
	assert.False(t, first.IsHuman("blue"))
	assert.False(t, first.IsHuman("green"))

	_, err = NewSessionFactory(Dimensions{Rows: 0, Cols: 7, Streak: 4}, ps, nil, nil)()
	assert.ErrorIs(t, err, board.ErrInvalidDimensions)
}
