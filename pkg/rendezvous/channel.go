package rendezvous

import (
	"context"
	"fmt"
	"sync"
)

// Message is the unit carried by a Channel.
type Message struct {
	// Identity names the party the message is from or for.
	Identity string
	// Push is true when the worker reports a completed choice (or the presentation
	// answers one), false when the worker asks for a choice.
	Push bool
	// Payload is the choice, if any.
	Payload any
}

// Channel is a single-slot mailbox shared by exactly two goroutines. The worker
// posts and then blocks; the presentation polls and never blocks.
//
// Once invalidated a Channel stays invalid. Build a new one to resume play.
type Channel struct {
	mu      sync.Mutex
	cond    *sync.Cond
	slot    *Message
	blocked bool
	invalid bool
}

// NewChannel creates an empty, valid channel.
func NewChannel() *Channel {
	c := &Channel{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Post places msg in the slot. It is a no-op on an invalid channel and does not
// wake anyone.
func (c *Channel) Post(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalid {
		return nil
	}
	if c.slot != nil {
		return ErrSlotOccupied
	}
	c.slot = &msg
	return nil
}

// Block suspends the caller until Unblock is called, the channel is invalidated
// or ctx is done. It is the only suspension point of the worker and therefore
// the checkpoint at which a kill is honored.
func (c *Channel) Block(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalid {
		return ErrChannelInvalidated
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.cond.Broadcast()
	})
	defer stop()

	c.blocked = true
	for c.blocked {
		if c.invalid {
			c.blocked = false
			return ErrChannelInvalidated
		}
		if err := ctx.Err(); err != nil {
			c.blocked = false
			return err
		}
		c.cond.Wait()
	}
	return nil
}

// Unblock releases the blocked worker, if any. No-op on an invalid channel.
func (c *Channel) Unblock() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalid {
		return
	}
	c.blocked = false
	c.cond.Signal()
}

// Poll removes and returns the message in the slot. It never blocks.
func (c *Channel) Poll() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalid || c.slot == nil {
		return Message{}, false
	}
	msg := *c.slot
	c.slot = nil
	return msg, true
}

// IsBlocked reports whether the worker is waiting inside Block.
func (c *Channel) IsBlocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blocked
}

// IsInvalid reports whether the channel has been invalidated.
func (c *Channel) IsInvalid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalid
}

// Invalidate permanently disables the channel and wakes every waiter, which then
// returns ErrChannelInvalidated.
func (c *Channel) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalid = true
	c.slot = nil
	c.cond.Broadcast()
}

// RequestChoice asks the presentation for a choice on behalf of identity and
// waits for the answer. Worker side only.
func (c *Channel) RequestChoice(ctx context.Context, identity string) (any, error) {
	if identity == "" {
		return nil, ErrEmptyIdentity
	}
	if err := c.handshake(ctx, Message{Identity: identity}); err != nil {
		return nil, err
	}
	msg, ok := c.Poll()
	if !ok {
		if c.IsInvalid() {
			return nil, ErrChannelInvalidated
		}
		return nil, ErrNoResponse
	}
	if msg.Identity != identity {
		return nil, &IdentityMismatchError{Want: identity, Got: msg.Identity}
	}
	return msg.Payload, nil
}

// ReportChoice tells the presentation that identity chose value and waits for
// the acknowledgement. Worker side only.
func (c *Channel) ReportChoice(ctx context.Context, identity string, value any) error {
	if identity == "" {
		return ErrEmptyIdentity
	}
	if err := c.handshake(ctx, Message{Identity: identity, Push: true, Payload: value}); err != nil {
		return err
	}
	c.Poll()
	return nil
}

func (c *Channel) handshake(ctx context.Context, msg Message) error {
	if err := c.Post(msg); err != nil {
		return fmt.Errorf("failed to post message for %s: %w", msg.Identity, err)
	}
	return c.Block(ctx)
}
