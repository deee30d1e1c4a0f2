package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO of pending items drained once per game tick.
// Implementations must be safe for one producer goroutine and one consumer goroutine.
type Queue interface {
	// Enqueue adds an item without blocking.
	Enqueue(item interface{}) error
	// ReadAllMessages removes and returns every pending item in arrival order.
	ReadAllMessages() ([]interface{}, error)
	Size() int
	ClearQueue()
}
