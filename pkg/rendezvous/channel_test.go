package rendezvous

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cbodonnell/connectn/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second
const tick = time.Millisecond

func TestChannel_PostPoll(t *testing.T) {
	c := NewChannel()

	_, ok := c.Poll()
	assert.False(t, ok)

	require.NoError(t, c.Post(Message{Identity: "red", Payload: 1}))
	assert.ErrorIs(t, c.Post(Message{Identity: "red", Payload: 2}), ErrSlotOccupied)

	msg, ok := c.Poll()
	require.True(t, ok)
	assert.Equal(t, Message{Identity: "red", Payload: 1}, msg)

	_, ok = c.Poll()
	assert.False(t, ok)
}

func TestChannel_InvalidIsPermanent(t *testing.T) {
	c := NewChannel()
	require.NoError(t, c.Post(Message{Identity: "red"}))
	c.Invalidate()

	assert.True(t, c.IsInvalid())
	_, ok := c.Poll()
	assert.False(t, ok, "poll on an invalid channel returns nothing")

	assert.NoError(t, c.Post(Message{Identity: "blue"}), "post on an invalid channel is a no-op")
	_, ok = c.Poll()
	assert.False(t, ok)

	c.Unblock()
	assert.True(t, c.IsInvalid())
}

func TestChannel_BlockAfterInvalidateFailsImmediately(t *testing.T) {
	c := NewChannel()
	c.Invalidate()

	done := make(chan error, 1)
	go func() {
		done <- c.Block(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrChannelInvalidated)
	case <-time.After(waitFor):
		t.Fatal("Block hung on an invalid channel")
	}
	assert.False(t, c.IsBlocked())
}

func TestChannel_InvalidateWakesBlocked(t *testing.T) {
	c := NewChannel()

	done := make(chan error, 1)
	go func() {
		done <- c.Block(context.Background())
	}()
	require.Eventually(t, c.IsBlocked, waitFor, tick)

	c.Invalidate()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrChannelInvalidated)
	case <-time.After(waitFor):
		t.Fatal("Invalidate did not wake the blocked caller")
	}
	assert.False(t, c.IsBlocked())
}

func TestChannel_UnblockReleases(t *testing.T) {
	c := NewChannel()

	done := make(chan error, 1)
	go func() {
		done <- c.Block(context.Background())
	}()
	require.Eventually(t, c.IsBlocked, waitFor, tick)

	c.Unblock()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Unblock did not release the blocked caller")
	}
	assert.False(t, c.IsBlocked())
}

func TestChannel_BlockHonorsContext(t *testing.T) {
	c := NewChannel()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- c.Block(ctx)
	}()
	require.Eventually(t, c.IsBlocked, waitFor, tick)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitFor):
		t.Fatal("cancel did not release the blocked caller")
	}
	assert.False(t, c.IsBlocked())
	assert.False(t, c.IsInvalid(), "cancelling one caller does not invalidate the channel")
}

func TestChannel_RequestChoice(t *testing.T) {
	tests := []struct {
		name    string
		answer  *Message
		want    any
		wantErr error
	}{
		{
			name:   "answer for the asking identity",
			answer: &Message{Identity: "red", Push: true, Payload: 3},
			want:   3,
		},
		{
			name:    "answer tagged for someone else",
			answer:  &Message{Identity: "blue", Push: true, Payload: 3},
			wantErr: &IdentityMismatchError{Want: "red", Got: "blue"},
		},
		{
			name:    "released without an answer",
			wantErr: ErrNoResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChannel()
			type result struct {
				value any
				err   error
			}
			done := make(chan result, 1)
			go func() {
				v, err := c.RequestChoice(context.Background(), "red")
				done <- result{v, err}
			}()

			require.Eventually(t, c.IsBlocked, waitFor, tick)
			req, ok := c.Poll()
			require.True(t, ok)
			assert.Equal(t, Message{Identity: "red"}, req)

			if tt.answer != nil {
				require.NoError(t, c.Post(*tt.answer))
			}
			c.Unblock()

			r := <-done
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, r.err)
				return
			}
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.value)
		})
	}
}

func TestChannel_ReportChoice(t *testing.T) {
	c := NewChannel()
	done := make(chan error, 1)
	go func() {
		done <- c.ReportChoice(context.Background(), "blue", 5)
	}()

	require.Eventually(t, c.IsBlocked, waitFor, tick)
	push, ok := c.Poll()
	require.True(t, ok)
	assert.Equal(t, Message{Identity: "blue", Push: true, Payload: 5}, push)

	select {
	case <-done:
		t.Fatal("ReportChoice returned before the acknowledgement")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, c.Post(Message{Identity: "blue", Push: true, Payload: 5}))
	c.Unblock()
	assert.NoError(t, <-done)

	_, ok = c.Poll()
	assert.False(t, ok, "the acknowledgement is consumed by the worker")
}

func TestChannel_EmptyIdentity(t *testing.T) {
	c := NewChannel()
	_, err := c.RequestChoice(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyIdentity)
	assert.ErrorIs(t, c.ReportChoice(context.Background(), "", 1), ErrEmptyIdentity)
	assert.False(t, c.IsBlocked())
}

// TestChannel_SlotNeverHoldsTwo runs many request/answer round trips. Every Post
// must find the slot empty and every answer must arrive exactly once, in order.
func TestChannel_SlotNeverHoldsTwo(t *testing.T) {
	const rounds = 500
	c := NewChannel()

	var answered []int
	workerDone := make(chan error, 1)
	go func() {
		for i := 0; i < rounds; i++ {
			v, err := c.RequestChoice(context.Background(), "red")
			if err != nil {
				workerDone <- err
				return
			}
			answered = append(answered, v.(int))
		}
		workerDone <- nil
	}()

	for i := 0; i < rounds; {
		if !c.IsBlocked() {
			continue
		}
		req, ok := c.Poll()
		require.True(t, ok)
		require.Equal(t, "red", req.Identity)
		require.False(t, req.Push)
		require.NoError(t, c.Post(Message{Identity: "red", Push: true, Payload: i}))
		c.Unblock()
		i++
	}

	require.NoError(t, <-workerDone)
	require.Len(t, answered, rounds)
	for i, v := range answered {
		assert.Equal(t, i, v)
	}
}

// TestChannel_KillReleasesLock kills a worker blocked inside Block and checks
// that it stops promptly and leaves the channel's lock free.
func TestChannel_KillReleasesLock(t *testing.T) {
	c := NewChannel()
	w := workers.NewCancelableWorker(workers.NewCancelableWorkerOptions{
		Name:       "blocked-worker",
		ExitErrors: []error{ErrChannelInvalidated},
	})
	require.NoError(t, w.Start(func(ctx context.Context) error {
		_, err := c.RequestChoice(ctx, "red")
		return err
	}))
	require.Eventually(t, c.IsBlocked, waitFor, tick)

	require.NoError(t, w.Kill())
	c.Invalidate()
	require.NoError(t, w.Join(waitFor))

	assert.False(t, w.IsAlive())
	assert.False(t, w.HasCrashed())
	err := w.Err()
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, ErrChannelInvalidated), "unexpected exit error %v", err)

	require.True(t, c.mu.TryLock(), "channel lock left held by the killed worker")
	c.mu.Unlock()
	assert.False(t, c.IsBlocked())

	assert.ErrorIs(t, c.Block(context.Background()), ErrChannelInvalidated)
}
