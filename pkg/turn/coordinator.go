package turn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/cbodonnell/connectn/pkg/queue"
	"github.com/cbodonnell/connectn/pkg/rendezvous"
	"github.com/cbodonnell/connectn/pkg/workers"
	"github.com/google/uuid"
)

const (
	DefaultJoinTimeout = 2 * time.Second
	DefaultFakeOuts    = 2
)

// Coordinator turns the traffic on a session's rendezvous channel into phases
// the presentation can animate. It owns one channel and one worker per session.
//
// A Coordinator is not safe for concurrent use. All of its methods are meant to
// be called from the presentation's frame loop, and none of them block except
// Reset and Shutdown, which wait up to the join timeout for the old worker.
type Coordinator struct {
	newSession  SessionFactory
	chooser     Chooser
	reveal      bool
	fakeOuts    int
	rng         *rand.Rand
	joinTimeout time.Duration
	silent      bool
	baseLogger  *log.Logger
	logger      *log.Logger
	events      *queue.InMemoryQueue[Event]

	sessionID string
	session   *Session
	channel   *rendezvous.Channel
	worker    *workers.CancelableWorker

	phase    Phase
	identity string
	payload  any
	// deferredAck is set while animating a pushed move. The worker stays blocked
	// in ReportChoice until AnimationDone acknowledges it.
	deferredAck bool
	// answered is set while revealing a move the presentation chose itself. The
	// answer is posted when the reveal is submitted.
	answered bool
	closed   bool
}

type NewCoordinatorOptions struct {
	// NewSession builds the engine and player logic of each session. Required.
	NewSession SessionFactory
	// Chooser answers requests from non-human identities, for player logic that
	// asks instead of pushing. Without one such requests are presented as human
	// choices.
	Chooser Chooser
	// Reveal sends automated moves through AwaitingAIReveal before they animate.
	Reveal bool
	// FakeOuts is the number of decoy columns hovered during a reveal.
	FakeOuts int
	// Rand picks decoy columns. Defaults to a clock-seeded source.
	Rand *rand.Rand
	// JoinTimeout bounds how long Reset and Shutdown wait for the old worker.
	JoinTimeout time.Duration
	// Silent suppresses worker crash reports in the log.
	Silent bool
	Logger *log.Logger
	// EventQueueSize bounds the number of undrained events.
	EventQueueSize int
}

// NewCoordinator creates a coordinator and starts its first session.
func NewCoordinator(opts NewCoordinatorOptions) (*Coordinator, error) {
	if opts.NewSession == nil {
		return nil, errors.New("session factory is required")
	}
	if opts.JoinTimeout <= 0 {
		opts.JoinTimeout = DefaultJoinTimeout
	}
	if opts.FakeOuts < 0 {
		opts.FakeOuts = 0
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	c := &Coordinator{
		newSession:  opts.NewSession,
		chooser:     opts.Chooser,
		reveal:      opts.Reveal,
		fakeOuts:    opts.FakeOuts,
		rng:         opts.Rand,
		joinTimeout: opts.JoinTimeout,
		silent:      opts.Silent,
		baseLogger:  opts.Logger,
		logger:      opts.Logger,
		events:      queue.NewInMemoryQueue[Event](opts.EventQueueSize),
	}
	if err := c.startSession(); err != nil {
		return nil, err
	}
	return c, nil
}

// SessionID identifies the current session. It changes on every Reset.
func (c *Coordinator) SessionID() string {
	return c.sessionID
}

// Engine returns the current session's engine while the worker cannot write to
// it: in AwaitingHumanChoice, AwaitingAIReveal, Complete and Failed, and while a
// pushed move animates. In Idle, Resetting and after a submitted choice the
// worker may be playing on the engine, and Engine returns nil.
func (c *Coordinator) Engine() Engine {
	if c.session == nil || !c.engineSettled() {
		return nil
	}
	return c.session.Engine
}

// engineSettled reports whether the worker is parked on the channel or has
// stopped writing for good.
func (c *Coordinator) engineSettled() bool {
	switch c.phase {
	case PhaseAwaitingHumanChoice, PhaseAwaitingAIReveal, PhaseComplete, PhaseFailed:
		return true
	case PhaseAnimating:
		return c.deferredAck
	default:
		return false
	}
}

// Events holds a record of every phase change, oldest first.
func (c *Coordinator) Events() queue.Queue[Event] {
	return c.events
}

// PollState returns the current phase, the identity whose turn produced it and
// its payload: Prompt, Reveal, Move, Outcome or error depending on the phase.
func (c *Coordinator) PollState() (Phase, string, any) {
	return c.phase, c.identity, c.payload
}

// Tick advances the state machine by at most one transition without blocking.
// Only Idle reacts to the worker; the other phases wait on the presentation.
func (c *Coordinator) Tick() Phase {
	if c.closed || c.phase != PhaseIdle {
		return c.phase
	}

	status := c.worker.Status()
	if status.Crashed {
		c.fail(&WorkerCrashedError{Err: status.Err})
		return c.phase
	}

	if c.channel.IsBlocked() {
		msg, ok := c.channel.Poll()
		if !ok {
			return c.phase
		}
		if msg.Push {
			c.onPush(msg)
		} else {
			c.onRequest(msg)
		}
		return c.phase
	}

	if !status.Alive {
		c.onWorkerExit(status.Err)
	}
	return c.phase
}

func (c *Coordinator) onPush(msg rendezvous.Message) {
	col, ok := msg.Payload.(int)
	if !ok {
		c.abort(fmt.Errorf("%w: %s pushed %T, want a column", ErrProtocol, msg.Identity, msg.Payload))
		return
	}
	last, ok := c.session.Engine.LastMove()
	if !ok || last.Col != col {
		c.abort(fmt.Errorf("%w: %s pushed column %d before playing it", ErrProtocol, msg.Identity, col))
		return
	}
	move := Move{Identity: msg.Identity, Row: last.Row, Col: col}
	c.deferredAck = true
	if c.reveal {
		c.transition(PhaseAwaitingAIReveal, msg.Identity, Reveal{Move: move, Fakes: c.chooseFakes(col)})
		return
	}
	c.transition(PhaseAnimating, msg.Identity, move)
}

func (c *Coordinator) onRequest(msg rendezvous.Message) {
	engine := c.session.Engine
	legal := engine.LegalMoves()
	if c.chooser == nil || c.isHuman(msg.Identity) {
		c.transition(PhaseAwaitingHumanChoice, msg.Identity, Prompt{Identity: msg.Identity, Legal: legal})
		return
	}

	col := c.chooser(msg.Identity, legal)
	if !engine.IsLegalMove(col) {
		c.abort(fmt.Errorf("%w: chooser picked illegal column %d for %s", ErrProtocol, col, msg.Identity))
		return
	}
	move := Move{Identity: msg.Identity, Row: engine.NextRow(col), Col: col}
	if !c.reveal {
		c.answer(move)
		return
	}
	c.answered = true
	c.transition(PhaseAwaitingAIReveal, msg.Identity, Reveal{Move: move, Fakes: c.chooseFakes(col)})
}

func (c *Coordinator) onWorkerExit(exitErr error) {
	engine := c.session.Engine
	outcome := Outcome{}
	if winner, ok := engine.Winner(); ok {
		outcome.Winner = winner
		outcome.Run, _ = engine.WinningRun()
	} else if engine.IsFull() {
		outcome.Draw = true
	} else {
		c.logger.Warn("Worker stopped before the game ended: %v", exitErr)
	}
	c.transition(PhaseComplete, outcome.Winner, outcome)
}

func (c *Coordinator) isHuman(identity string) bool {
	if c.session.IsHuman == nil {
		return true
	}
	return c.session.IsHuman(identity)
}

// Submit answers the pending choice. In AwaitingHumanChoice col must be legal;
// in AwaitingAIReveal it must be the revealed column.
func (c *Coordinator) Submit(col int) error {
	if c.closed {
		return ErrClosed
	}
	switch c.phase {
	case PhaseAwaitingHumanChoice:
		engine := c.session.Engine
		if !engine.IsLegalMove(col) {
			return &IllegalMoveError{Identity: c.identity, Column: col}
		}
		c.answer(Move{Identity: c.identity, Row: engine.NextRow(col), Col: col})
		return nil
	case PhaseAwaitingAIReveal:
		reveal := c.payload.(Reveal)
		if col != reveal.Move.Col {
			return &IllegalMoveError{Identity: c.identity, Column: col}
		}
		if c.answered {
			c.answered = false
			c.answer(reveal.Move)
			return nil
		}
		c.transition(PhaseAnimating, c.identity, reveal.Move)
		return nil
	default:
		return &InvalidTransitionError{Op: "submit", Phase: c.phase}
	}
}

// answer hands move to the blocked worker and starts its animation.
func (c *Coordinator) answer(move Move) {
	if err := c.channel.Post(rendezvous.Message{Identity: move.Identity, Push: true, Payload: move.Col}); err != nil {
		c.abort(fmt.Errorf("%w: failed to answer %s: %v", ErrProtocol, move.Identity, err))
		return
	}
	c.channel.Unblock()
	c.transition(PhaseAnimating, move.Identity, move)
}

// AnimationDone reports that the current move has come to rest. A pushed move
// is acknowledged here, releasing the worker.
func (c *Coordinator) AnimationDone() error {
	if c.closed {
		return ErrClosed
	}
	if c.phase != PhaseAnimating {
		return &InvalidTransitionError{Op: "animation done", Phase: c.phase}
	}
	if c.deferredAck {
		c.deferredAck = false
		move := c.payload.(Move)
		if err := c.channel.Post(rendezvous.Message{Identity: move.Identity, Push: true, Payload: move.Col}); err != nil {
			c.abort(fmt.Errorf("%w: failed to acknowledge %s: %v", ErrProtocol, move.Identity, err))
			return nil
		}
		c.channel.Unblock()
	}
	c.transition(PhaseIdle, "", nil)
	return nil
}

// Reset abandons the current session and starts a new one. It is valid in any
// phase. The old worker is killed and joined for at most the join timeout; if it
// outlives that it is left behind, holding only the old channel and engine.
func (c *Coordinator) Reset() error {
	if c.closed {
		return ErrClosed
	}
	c.transition(PhaseResetting, "", nil)
	c.teardown()
	if err := c.startSession(); err != nil {
		c.fail(err)
		return err
	}
	return nil
}

// Shutdown stops the worker and releases the session. Every later call fails
// with ErrClosed. Calling Shutdown twice is a no-op.
func (c *Coordinator) Shutdown() error {
	if c.closed {
		return nil
	}
	err := c.teardown()
	c.closed = true
	c.session = nil
	c.payload = nil
	if clearErr := c.events.ClearQueue(); clearErr != nil {
		c.logger.Warn("Failed to clear event queue: %v", clearErr)
	}
	c.logger.Info("Coordinator shut down")
	return err
}

func (c *Coordinator) teardown() error {
	if err := c.worker.Kill(); err != nil {
		c.logger.Warn("Failed to kill worker: %v", err)
	}
	c.channel.Invalidate()
	c.deferredAck = false
	c.answered = false
	if err := c.worker.Join(c.joinTimeout); err != nil {
		c.logger.Warn("Worker did not stop: %v", err)
		return err
	}
	return nil
}

func (c *Coordinator) startSession() error {
	session, err := c.newSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if session.Engine == nil || session.Run == nil {
		return errors.New("session needs an engine and a run function")
	}
	id := uuid.New().String()
	channel := rendezvous.NewChannel()
	logger := c.baseLogger.With("session", id)
	worker := workers.NewCancelableWorker(workers.NewCancelableWorkerOptions{
		Name:       "match-" + id[:8],
		Silent:     c.silent,
		ExitErrors: []error{rendezvous.ErrChannelInvalidated},
		Logger:     logger,
	})
	if err := worker.Start(func(ctx context.Context) error {
		return session.Run(ctx, channel)
	}); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}

	c.sessionID = id
	c.session = session
	c.channel = channel
	c.worker = worker
	c.logger = logger
	c.logger.Info("Session started")
	c.transition(PhaseIdle, "", nil)
	return nil
}

// abort ends the session after a protocol violation. The worker is stopped so it
// cannot act on a half-finished exchange.
func (c *Coordinator) abort(err error) {
	if killErr := c.worker.Kill(); killErr != nil {
		c.logger.Warn("Failed to kill worker: %v", killErr)
	}
	c.channel.Invalidate()
	c.fail(err)
}

func (c *Coordinator) fail(err error) {
	c.logger.Error("Session failed: %v", err)
	c.deferredAck = false
	c.answered = false
	c.transition(PhaseFailed, "", err)
}

func (c *Coordinator) transition(phase Phase, identity string, payload any) {
	c.logger.Debug("%s -> %s %s", c.phase, phase, identity)
	c.phase = phase
	c.identity = identity
	c.payload = payload
	event := Event{SessionID: c.sessionID, Phase: phase, Identity: identity, Payload: payload}
	if err := c.events.Enqueue(event); err != nil {
		c.logger.Debug("Dropped event %s: %v", phase, err)
	}
}

// chooseFakes picks up to fakeOuts distinct legal columns other than col, each
// listed twice, followed by col twice.
func (c *Coordinator) chooseFakes(col int) []int {
	engine := c.session.Engine
	cols := engine.Cols()
	var result []int
	if len(engine.LegalMoves()) > 0 {
		for i := 0; i < c.fakeOuts; i++ {
			fake := c.rng.Intn(cols)
			for !engine.IsLegalMove(fake) {
				fake = (fake + 1) % cols
			}
			if fake != col && !contains(result, fake) {
				result = append(result, fake, fake)
			}
		}
	}
	return append(result, col, col)
}

func contains(cols []int, col int) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}
	return false
}
