package autoplay

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/match"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/cbodonnell/connectn/pkg/rendezvous"
	"github.com/cbodonnell/connectn/pkg/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0, log.LogLevelError)
}

func newGame(t *testing.T, seed int64, specs []players.Spec, reveal bool, onMatch func(*match.Match)) *turn.Coordinator {
	t.Helper()
	ps, err := players.MakePlayers(specs, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	c, err := turn.NewCoordinator(turn.NewCoordinatorOptions{
		NewSession: match.NewSessionFactory(match.Dimensions{Rows: 6, Cols: 7, Streak: 4}, ps, quietLogger(), onMatch),
		Reveal:     reveal,
		FakeOuts:   turn.DefaultFakeOuts,
		Rand:       rand.New(rand.NewSource(seed)),
		Logger:     quietLogger(),
		Silent:     true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Shutdown()
	})
	return c
}

func TestDriver_PlaysToTheEnd(t *testing.T) {
	tests := []struct {
		name   string
		specs  []players.Spec
		reveal bool
	}{
		{
			name:  "ai against better ai",
			specs: []players.Spec{{Color: "red", Kind: players.KindAI}, {Color: "blue", Kind: players.KindBetterAI}},
		},
		{
			name:   "human against ai with reveal",
			specs:  []players.Spec{{Color: "red", Kind: players.KindHuman}, {Color: "blue", Kind: players.KindAI}},
			reveal: true,
		},
		{
			name:  "three humans",
			specs: []players.Spec{{Color: "red"}, {Color: "blue"}, {Color: "green"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m *match.Match
			c := newGame(t, 5, tt.specs, tt.reveal, func(mm *match.Match) { m = mm })

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			outcome, err := NewDriver(c, NewDriverOptions{Choose: RandomChooser(rand.New(rand.NewSource(5)))}).Run(ctx)
			require.NoError(t, err)

			b := m.Board()
			if outcome.Draw {
				assert.True(t, b.IsFull())
				assert.Nil(t, m.Winner())
				return
			}
			require.NotEmpty(t, outcome.Winner)
			require.NotNil(t, m.Winner())
			assert.Equal(t, m.Winner().Color(), outcome.Winner)
			assert.GreaterOrEqual(t, outcome.Run.Len(), b.Streak())
		})
	}
}

func TestDriver_NeedsHuman(t *testing.T) {
	c := newGame(t, 1, []players.Spec{{Color: "red"}, {Color: "blue", Kind: players.KindAI}}, false, nil)
	_, err := NewDriver(c, NewDriverOptions{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrNeedsHuman)
}

func TestDriver_Failed(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	c, err := turn.NewCoordinator(turn.NewCoordinatorOptions{
		NewSession: func() (*turn.Session, error) {
			return &turn.Session{
				Engine: b,
				Run: func(ctx context.Context, ch *rendezvous.Channel) error {
					panic("player logic bug")
				},
			}, nil
		},
		Logger: quietLogger(),
		Silent: true,
	})
	require.NoError(t, err)
	defer c.Shutdown()

	_, err = NewDriver(c, NewDriverOptions{}).Run(context.Background())
	var crashed *turn.WorkerCrashedError
	assert.ErrorAs(t, err, &crashed)
}

func TestDriver_Cancelled(t *testing.T) {
	b, err := board.New(6, 7, 4)
	require.NoError(t, err)
	c, err := turn.NewCoordinator(turn.NewCoordinatorOptions{
		NewSession: func() (*turn.Session, error) {
			return &turn.Session{
				Engine: b,
				Run: func(ctx context.Context, ch *rendezvous.Channel) error {
					<-ctx.Done()
					return ctx.Err()
				},
			}, nil
		},
		Logger: quietLogger(),
	})
	require.NoError(t, err)
	defer c.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = NewDriver(c, NewDriverOptions{}).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulate(t *testing.T) {
	specs := []players.Spec{{Color: "red", Kind: players.KindBetterAI}, {Color: "yellow", Kind: players.KindAI}}
	tally, err := Simulate(context.Background(), 8, 3, func(game int) (*turn.Coordinator, error) {
		return newGame(t, int64(game), specs, false, nil), nil
	}, NewDriverOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8, tally.Games)
	assert.Zero(t, tally.Stopped)
	total := tally.Draws
	for color, wins := range tally.Wins {
		assert.Contains(t, []string{"red", "yellow"}, color)
		total += wins
	}
	assert.Equal(t, 8, total)
}

func TestSimulate_FactoryError(t *testing.T) {
	boom := errors.New("no board")
	_, err := Simulate(context.Background(), 3, 1, func(game int) (*turn.Coordinator, error) {
		return nil, boom
	}, NewDriverOptions{})
	assert.ErrorIs(t, err, boom)
}
