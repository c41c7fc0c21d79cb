// Package queue provides an unbounded FIFO channel. Send never waits for a
// receiver, so a burst of values is buffered in memory rather than pushed back.
package queue

import (
	"context"
	"sync"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

var ErrClosed = errors.New("queue closed")

type Queue[T any] struct {
	in        chan T
	out       chan T
	done      chan struct{}
	closeOnce sync.Once
}

func New[T any]() *Queue[T] {
	q := &Queue[T]{
		in:   make(chan T),
		out:  make(chan T),
		done: make(chan struct{}),
	}
	go q.pump()
	return q
}

// pump moves values from in to out through an in-memory buffer. It always
// accepts from in, so Send only waits for the pump goroutine to be scheduled.
func (q *Queue[T]) pump() {
	defer close(q.out)

	var buffer deque.Deque[T]
	for {
		var out chan T
		var front T
		if buffer.Len() > 0 {
			out = q.out
			front = buffer.Front()
		}

		select {
		case v := <-q.in:
			buffer.PushBack(v)
		case out <- front:
			buffer.PopFront()
		case <-q.done:
			return
		}
	}
}

func (q *Queue[T]) Send(v T) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}

	select {
	case q.in <- v:
		return nil
	case <-q.done:
		return ErrClosed
	}
}

// TryRecv returns the oldest buffered value without waiting.
func (q *Queue[T]) TryRecv() (T, bool) {
	select {
	case v, ok := <-q.out:
		return v, ok
	default:
		var zero T
		return zero, false
	}
}

func (q *Queue[T]) Recv(ctx context.Context) (T, error) {
	select {
	case v, ok := <-q.out:
		if !ok {
			var zero T
			return zero, ErrClosed
		}
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Out is closed once the queue is closed; buffered values are dropped.
func (q *Queue[T]) Out() <-chan T {
	return q.out
}

func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}
