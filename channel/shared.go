// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package channel // import "go.opentelemetry.io/dataflow/channel"

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// sharedState is shared by every clone of a shared channel's halves. Unlike
// the confined variant, clone counting and close guards are synchronized so
// handles can be used from any goroutine.
type sharedState[T any] struct {
	ch       chan T
	prodDone chan struct{}
	consDone chan struct{}

	senders  *atomic.Int64
	prodOnce sync.Once
	consOnce sync.Once
}

// NewShared creates a bounded shared-affinity channel pair. The capacity is
// fixed for the lifetime of the channel and must be positive.
func NewShared[T any](capacity int) (*SharedSender[T], *SharedReceiver[T]) {
	if capacity < 1 {
		panic("channel: capacity must be positive")
	}
	st := &sharedState[T]{
		ch:       make(chan T, capacity),
		prodDone: make(chan struct{}),
		consDone: make(chan struct{}),
		senders:  atomic.NewInt64(1),
	}
	return &SharedSender[T]{st: st, closed: atomic.NewBool(false)}, &SharedReceiver[T]{st: st}
}

// SharedSender is a producer half of a shared channel, safe for concurrent
// use and cross-goroutine handoff.
type SharedSender[T any] struct {
	st     *sharedState[T]
	closed *atomic.Bool
}

// Clone returns a new producer handle backed by the same queue.
func (s *SharedSender[T]) Clone() *SharedSender[T] {
	s.st.senders.Inc()
	return &SharedSender[T]{st: s.st, closed: atomic.NewBool(false)}
}

// Send enqueues v, blocking while the queue is at capacity. It returns
// ErrClosed if the consumer end is gone.
func (s *SharedSender[T]) Send(ctx context.Context, v T) error {
	select {
	case <-s.st.consDone:
		return ErrClosed
	default:
	}
	select {
	case s.st.ch <- v:
		return nil
	case <-s.st.consDone:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases this producer handle. Closing the last handle signals the
// consumer that no further messages will arrive.
func (s *SharedSender[T]) Close() {
	if !s.closed.CAS(false, true) {
		return
	}
	if s.st.senders.Dec() == 0 {
		s.st.prodOnce.Do(func() { close(s.st.prodDone) })
	}
}

// SharedReceiver is the single consumer half of a shared channel.
type SharedReceiver[T any] struct {
	st *sharedState[T]
}

// Recv dequeues the next message. Buffered messages are drained before a
// producer-side close surfaces as ErrClosed.
func (r *SharedReceiver[T]) Recv(ctx context.Context) (T, error) {
	select {
	case v := <-r.st.ch:
		return v, nil
	default:
	}
	var zero T
	select {
	case v := <-r.st.ch:
		return v, nil
	case <-r.st.prodDone:
		select {
		case v := <-r.st.ch:
			return v, nil
		default:
			return zero, ErrClosed
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Chan exposes the underlying queue for select-based multiplexing.
func (r *SharedReceiver[T]) Chan() <-chan T {
	return r.st.ch
}

// Done is closed once every producer handle has been closed.
func (r *SharedReceiver[T]) Done() <-chan struct{} {
	return r.st.prodDone
}

// Close releases the consumer end. Subsequent sends fail with ErrClosed.
func (r *SharedReceiver[T]) Close() {
	r.st.consOnce.Do(func() { close(r.st.consDone) })
}
