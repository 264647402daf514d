// Package action provides the output channel between elements and the
// embedding application. Elements push application-defined payloads when a
// user interaction completes; the application drains them once per event
// cycle.
package action

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send after the queue has been closed. A closed
// queue while elements are still alive is a host misconfiguration; elements
// surface this error out of event dispatch rather than retrying.
var ErrClosed = errors.New("action: queue is closed")

// Queue is an unbounded FIFO of action payloads.
type Queue struct {
	mu      sync.Mutex
	actions []any
	closed  bool
}

// NewQueue creates an empty, open queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send appends a payload. It fails only if the queue has been closed.
func (q *Queue) Send(a any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.actions = append(q.actions, a)
	return nil
}

// Drain removes and returns all buffered payloads in send order.
func (q *Queue) Drain() []any {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.actions
	q.actions = nil
	return out
}

// Len returns the number of buffered payloads.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

// Close marks the queue closed. Buffered payloads stay drainable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
