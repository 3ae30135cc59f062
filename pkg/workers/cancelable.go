package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/google/uuid"
)

// Func is the computation run by a CancelableWorker. ctx is cancelled by Kill;
// blocking calls inside Func must honor it.
type Func func(ctx context.Context) error

// CancelableWorker runs foreign code on its own goroutine. Faults inside the
// code are contained: a panic or an unexpected error marks the worker as crashed
// and never reaches the goroutine that owns the worker.
type CancelableWorker struct {
	id         string
	name       string
	exitErrors []error
	logger     *log.Logger
	silent     atomic.Bool

	lock    sync.Mutex
	started bool
	alive   bool
	crashed bool
	killed  bool
	err     error
	cancel  context.CancelCauseFunc
	done    chan struct{}
}

type NewCancelableWorkerOptions struct {
	// Name identifies the worker in logs.
	Name string
	// Silent suppresses crash reports.
	Silent bool
	// ExitErrors are errors (matched with errors.Is) that count as a clean exit
	// rather than a crash, e.g. the error a torn down channel returns.
	ExitErrors []error
	// Logger receives crash reports. Defaults to the package logger.
	Logger *log.Logger
}

// NewCancelableWorker creates a worker that has not been started.
func NewCancelableWorker(opts NewCancelableWorkerOptions) *CancelableWorker {
	id := uuid.New().String()
	name := opts.Name
	if name == "" {
		name = "worker-" + id[:8]
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	w := &CancelableWorker{
		id:         id,
		name:       name,
		exitErrors: opts.ExitErrors,
		logger:     logger.With("worker", name),
		done:       make(chan struct{}),
	}
	w.silent.Store(opts.Silent)
	return w
}

func (w *CancelableWorker) ID() string {
	return w.id
}

func (w *CancelableWorker) Name() string {
	return w.name
}

// SetSilent controls whether a crash is logged.
func (w *CancelableWorker) SetSilent(silent bool) {
	w.silent.Store(silent)
}

func (w *CancelableWorker) Silent() bool {
	return w.silent.Load()
}

// Start runs fn on a new goroutine. It may be called once.
func (w *CancelableWorker) Start(fn Func) error {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.started {
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancelCause(context.Background())
	w.started = true
	w.alive = true
	w.cancel = cancel
	go w.run(ctx, fn)
	return nil
}

func (w *CancelableWorker) run(ctx context.Context, fn Func) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
		w.finish(err)
	}()
	err = fn(ctx)
}

func (w *CancelableWorker) finish(err error) {
	w.lock.Lock()
	crashed := err != nil && !w.killed && !w.isExitError(err)
	w.err = err
	w.crashed = crashed
	w.alive = false
	w.cancel(nil)
	w.lock.Unlock()
	close(w.done)

	if !crashed {
		w.logger.Debug("Worker stopped: %v", err)
		return
	}
	if w.Silent() {
		return
	}
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		w.logger.Error("Worker crashed: %v\n%s", panicErr, panicErr.Stack)
		return
	}
	w.logger.Error("Worker crashed: %v", err)
}

func (w *CancelableWorker) isExitError(err error) bool {
	for _, exitErr := range w.exitErrors {
		if errors.Is(err, exitErr) {
			return true
		}
	}
	return false
}

// Status is a consistent view of a worker's state.
type Status struct {
	Alive   bool
	Crashed bool
	Err     error
}

// Status reads the worker's state under one lock. A worker seen dead here has
// also had its crash recorded.
func (w *CancelableWorker) Status() Status {
	w.lock.Lock()
	defer w.lock.Unlock()
	return Status{Alive: w.alive, Crashed: w.crashed, Err: w.err}
}

// IsAlive reports whether the computation is still running.
func (w *CancelableWorker) IsAlive() bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.alive
}

// HasCrashed reports whether the computation ended with a fault.
func (w *CancelableWorker) HasCrashed() bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.crashed
}

// Err returns the error the computation ended with, if any.
func (w *CancelableWorker) Err() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.err
}

// Done is closed once the computation has returned.
func (w *CancelableWorker) Done() <-chan struct{} {
	return w.done
}

// Join waits for the computation to return. A non-positive timeout waits forever.
func (w *CancelableWorker) Join(timeout time.Duration) error {
	w.lock.Lock()
	started := w.started
	w.lock.Unlock()
	if !started {
		return ErrInvalidWorkerState
	}
	if timeout <= 0 {
		<-w.done
		return nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-w.done:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: %s after %s", ErrJoinTimeout, w.name, timeout)
	}
}

// Kill cancels the computation's context. The computation stops at its next
// blocking checkpoint, unwinding its deferred unlocks on the way out. Shared data
// it was writing must be treated as suspect.
func (w *CancelableWorker) Kill() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !w.started {
		return ErrInvalidWorkerState
	}
	if !w.alive {
		return nil
	}
	w.killed = true
	w.cancel(ErrKilled)
	return nil
}
