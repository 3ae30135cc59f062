package autoplay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/turn"
	"golang.org/x/sync/errgroup"
)

const DefaultPollInterval = time.Millisecond

// ChooseFunc answers a human prompt without a person at the keyboard.
type ChooseFunc func(prompt turn.Prompt) int

// RandomChooser picks uniformly among the legal columns. The returned func may
// be shared by concurrent games.
func RandomChooser(rng *rand.Rand) ChooseFunc {
	var mu sync.Mutex
	return func(prompt turn.Prompt) int {
		mu.Lock()
		defer mu.Unlock()
		return prompt.Legal[rng.Intn(len(prompt.Legal))]
	}
}

// Driver plays a coordinator to the end with no graphics: reveals and
// animations finish the moment they start.
type Driver struct {
	coordinator  *turn.Coordinator
	choose       ChooseFunc
	pollInterval time.Duration
}

type NewDriverOptions struct {
	// Choose answers human prompts. Without it a prompt ends the game with an error.
	Choose       ChooseFunc
	PollInterval time.Duration
}

func NewDriver(c *turn.Coordinator, opts NewDriverOptions) *Driver {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Driver{
		coordinator:  c,
		choose:       opts.Choose,
		pollInterval: opts.PollInterval,
	}
}

var ErrNeedsHuman = errors.New("game is waiting on a human and no chooser is set")

// Run ticks the coordinator until the session completes, fails or ctx is done.
func (d *Driver) Run(ctx context.Context) (turn.Outcome, error) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()
	for {
		phase := d.coordinator.Tick()
		_, _, payload := d.coordinator.PollState()
		switch phase {
		case turn.PhaseAwaitingHumanChoice:
			if d.choose == nil {
				return turn.Outcome{}, ErrNeedsHuman
			}
			if err := d.coordinator.Submit(d.choose(payload.(turn.Prompt))); err != nil {
				return turn.Outcome{}, fmt.Errorf("failed to submit choice: %w", err)
			}
			continue
		case turn.PhaseAwaitingAIReveal:
			if err := d.coordinator.Submit(payload.(turn.Reveal).Move.Col); err != nil {
				return turn.Outcome{}, fmt.Errorf("failed to finish reveal: %w", err)
			}
			continue
		case turn.PhaseAnimating:
			if err := d.coordinator.AnimationDone(); err != nil {
				return turn.Outcome{}, fmt.Errorf("failed to finish animation: %w", err)
			}
			continue
		case turn.PhaseComplete:
			return payload.(turn.Outcome), nil
		case turn.PhaseFailed:
			return turn.Outcome{}, payload.(error)
		}

		select {
		case <-ctx.Done():
			return turn.Outcome{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tally counts the results of many games.
type Tally struct {
	Games   int
	Wins    map[string]int
	Draws   int
	Stopped int
}

func (t *Tally) add(o turn.Outcome) {
	t.Games++
	switch {
	case o.Winner != "":
		t.Wins[o.Winner]++
	case o.Draw:
		t.Draws++
	default:
		t.Stopped++
	}
}

// Simulate plays games sessions, at most parallel at a time, each on its own
// coordinator from newCoordinator. The first failing game cancels the rest.
func Simulate(ctx context.Context, games, parallel int, newCoordinator func(game int) (*turn.Coordinator, error), opts NewDriverOptions) (*Tally, error) {
	tally := &Tally{Wins: make(map[string]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := 0; i < games; i++ {
		game := i
		g.Go(func() error {
			c, err := newCoordinator(game)
			if err != nil {
				return fmt.Errorf("failed to create game %d: %w", game, err)
			}
			defer func() {
				if err := c.Shutdown(); err != nil {
					log.Warn("Failed to shut down game %d: %v", game, err)
				}
			}()

			outcome, err := NewDriver(c, opts).Run(ctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", game, err)
			}
			log.Debug("Game %d finished: %+v", game, outcome)

			mu.Lock()
			defer mu.Unlock()
			tally.add(outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally, err
	}
	return tally, nil
}
