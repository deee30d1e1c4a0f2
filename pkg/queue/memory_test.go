package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue("down"))
	require.NoError(t, q.Enqueue("move"))
	require.NoError(t, q.Enqueue("up"))
	assert.Equal(t, 3, q.Size())

	got, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"down", "move", "up"}, got)
	assert.Equal(t, 0, q.Size())

	got, err = q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryQueue_EnqueueFull(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue(1))
	assert.ErrorIs(t, q.Enqueue(2), ErrQueueFull)
	assert.Equal(t, 1, q.Size())
}

func TestInMemoryQueue_DefaultSize(t *testing.T) {
	q := NewInMemoryQueue(0)
	assert.Equal(t, DefaultQueueSize, cap(q.ch))
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue(8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_ConcurrentProducer(t *testing.T) {
	q := NewInMemoryQueue(256)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = q.Enqueue(base + j)
			}
		}(i * 100)
	}
	wg.Wait()

	got, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Len(t, got, 200)
}
