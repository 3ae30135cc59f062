package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseEndpoints(t *testing.T) {
	tests := []struct {
		name string
		ease EaseFunc
	}{
		{name: "linear", ease: Linear},
		{name: "in quad", ease: EaseInQuad},
		{name: "out quad", ease: EaseOutQuad},
		{name: "bounce out", ease: BounceOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0, tt.ease(0), 1e-9)
			assert.InDelta(t, 1, tt.ease(1), 1e-9)
			for p := 0.0; p <= 1; p += 0.05 {
				v := tt.ease(p)
				assert.GreaterOrEqual(t, v, -1e-9)
				assert.LessOrEqual(t, v, 1+1e-9)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(-time.Second, time.Second))
	assert.Equal(t, 0.0, Progress(0, time.Second))
	assert.Equal(t, 0.25, Progress(250*time.Millisecond, time.Second))
	assert.Equal(t, 1.0, Progress(2*time.Second, time.Second))
	assert.Equal(t, 1.0, Progress(0, 0))
}

func TestTween(t *testing.T) {
	tw := New(10, 110, 100*time.Millisecond, nil)
	assert.False(t, tw.Done())
	assert.Equal(t, 10.0, tw.Value())

	assert.InDelta(t, 60, tw.Step(50*time.Millisecond), 1e-9)
	assert.False(t, tw.Done())

	assert.Equal(t, 110.0, tw.Step(80*time.Millisecond))
	assert.True(t, tw.Done())
	assert.Equal(t, 110.0, tw.Step(time.Second), "value stays at the end")

	tw.Reset()
	assert.Equal(t, 10.0, tw.Value())
}

func TestTween_Bounce(t *testing.T) {
	tw := New(0, 300, time.Second, BounceOut)
	prev := 0.0
	reachedBottom := false
	for !tw.Done() {
		v := tw.Step(10 * time.Millisecond)
		if v >= 299 {
			reachedBottom = true
		}
		assert.LessOrEqual(t, v, 300+1e-9)
		prev = v
	}
	assert.True(t, reachedBottom)
	assert.Equal(t, 300.0, prev)
}
