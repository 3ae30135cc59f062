package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[string](2)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrQueueFull)
	assert.Equal(t, 2, q.Size())

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", item)

	require.NoError(t, q.Enqueue("c"))
	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, messages)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	require.NoError(t, q.ClearQueue())
	assert.Equal(t, 0, q.Size())
}
