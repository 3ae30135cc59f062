package match

import (
	"context"

	"github.com/cbodonnell/connectn/pkg/board"
	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/players"
	"github.com/cbodonnell/connectn/pkg/rendezvous"
	"github.com/cbodonnell/connectn/pkg/turn"
)

var _ turn.Engine = (*board.Board)(nil)

// Dimensions sizes the board of every session.
type Dimensions struct {
	Rows   int
	Cols   int
	Streak int
}

// NewSessionFactory returns a factory that gives every session a fresh board and
// match. The same player objects carry over from one session to the next.
// onMatch, if set, is called with each new match before it starts.
func NewSessionFactory(dims Dimensions, ps []players.Player, logger *log.Logger, onMatch func(*Match)) turn.SessionFactory {
	humans := make(map[string]bool, len(ps))
	for _, p := range ps {
		humans[p.Color()] = p.Human()
	}
	return func() (*turn.Session, error) {
		b, err := board.New(dims.Rows, dims.Cols, dims.Streak)
		if err != nil {
			return nil, err
		}
		m, err := New(b, ps, logger)
		if err != nil {
			return nil, err
		}
		if onMatch != nil {
			onMatch(m)
		}
		return &turn.Session{
			Engine: b,
			Run: func(ctx context.Context, ch *rendezvous.Channel) error {
				return m.Run(ctx, ch)
			},
			IsHuman: func(identity string) bool {
				return humans[identity]
			},
		}, nil
	}
}
