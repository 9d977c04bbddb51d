// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package channel // import "go.opentelemetry.io/dataflow/channel"

import "context"

// confinedState is shared by every clone of a confined channel's halves.
// Clone counting and close guards are plain fields: they are only correct
// while all producer handles stay within one goroutine context, which is the
// confined affinity contract.
type confinedState[T any] struct {
	ch       chan T
	prodDone chan struct{}
	consDone chan struct{}

	senders    int
	prodClosed bool
	consClosed bool
}

// NewConfined creates a bounded confined-affinity channel pair. The capacity
// is fixed for the lifetime of the channel and must be positive.
func NewConfined[T any](capacity int) (*ConfinedSender[T], *ConfinedReceiver[T]) {
	if capacity < 1 {
		panic("channel: capacity must be positive")
	}
	st := &confinedState[T]{
		ch:       make(chan T, capacity),
		prodDone: make(chan struct{}),
		consDone: make(chan struct{}),
		senders:  1,
	}
	return &ConfinedSender[T]{st: st}, &ConfinedReceiver[T]{st: st}
}

// ConfinedSender is the producer half of a confined channel. Clones share the
// same queue; all of them must stay within the owning goroutine context.
type ConfinedSender[T any] struct {
	st     *confinedState[T]
	closed bool
}

// Clone returns a new producer handle backed by the same queue.
func (s *ConfinedSender[T]) Clone() *ConfinedSender[T] {
	s.st.senders++
	return &ConfinedSender[T]{st: s.st}
}

// Send enqueues v, blocking while the queue is at capacity. It returns
// ErrClosed if the consumer end is gone.
func (s *ConfinedSender[T]) Send(ctx context.Context, v T) error {
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
func (s *ConfinedSender[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.st.senders--
	if s.st.senders == 0 && !s.st.prodClosed {
		s.st.prodClosed = true
		close(s.st.prodDone)
	}
}

// ConfinedReceiver is the single consumer half of a confined channel.
type ConfinedReceiver[T any] struct {
	st *confinedState[T]
}

// Recv dequeues the next message. Buffered messages are drained before a
// producer-side close surfaces as ErrClosed.
func (r *ConfinedReceiver[T]) Recv(ctx context.Context) (T, error) {
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
		// Producers may have left messages behind; drain before reporting.
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
func (r *ConfinedReceiver[T]) Chan() <-chan T {
	return r.st.ch
}

// Done is closed once every producer handle has been closed.
func (r *ConfinedReceiver[T]) Done() <-chan struct{} {
	return r.st.prodDone
}

// Close releases the consumer end. Subsequent sends fail with ErrClosed.
func (r *ConfinedReceiver[T]) Close() {
	if r.st.consClosed {
		return
	}
	r.st.consClosed = true
	close(r.st.consDone)
}
