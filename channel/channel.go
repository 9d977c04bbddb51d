// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package channel provides the bounded MPSC channels used to wire receivers
// into the pipeline. Two physical implementations exist, one per concurrency
// affinity: confined channels keep their clone bookkeeping unsynchronized and
// must stay within a single goroutine context, shared channels may be handed
// across goroutines freely. The Sender and Receiver union types give code
// above this package a single send/receive surface that preserves the
// affinity tag of the channel it wraps.
package channel // import "go.opentelemetry.io/dataflow/channel"

import (
	"context"
	"errors"
)

// ErrClosed is returned by Send when the consumer end is gone and by Recv
// once all producers are gone and the buffer is drained.
var ErrClosed = errors.New("channel closed")

// Affinity identifies the concurrency regime a channel half belongs to.
type Affinity int

const (
	// AffinityConfined marks channel halves that must not leave the
	// goroutine context they were created for.
	AffinityConfined Affinity = iota
	// AffinityShared marks channel halves safe for cross-goroutine handoff.
	AffinityShared
)

func (a Affinity) String() string {
	switch a {
	case AffinityConfined:
		return "confined"
	case AffinityShared:
		return "shared"
	}
	return "unknown"
}

// Sender is the uniform producer handle over the two affinity variants.
// Exactly one variant is populated; the affinity is fixed at construction.
type Sender[T any] struct {
	affinity Affinity
	confined *ConfinedSender[T]
	shared   *SharedSender[T]
}

// FromConfinedSender wraps a confined producer in the uniform Sender type.
func FromConfinedSender[T any](s *ConfinedSender[T]) Sender[T] {
	return Sender[T]{affinity: AffinityConfined, confined: s}
}

// FromSharedSender wraps a shared producer in the uniform Sender type.
func FromSharedSender[T any](s *SharedSender[T]) Sender[T] {
	return Sender[T]{affinity: AffinityShared, shared: s}
}

// Affinity reports which variant this sender wraps.
func (s Sender[T]) Affinity() Affinity {
	return s.affinity
}

// Send enqueues v, blocking under backpressure. It returns ErrClosed if the
// consumer end is gone, or ctx.Err() if ctx is done first.
func (s Sender[T]) Send(ctx context.Context, v T) error {
	switch s.affinity {
	case AffinityConfined:
		return s.confined.Send(ctx, v)
	case AffinityShared:
		return s.shared.Send(ctx, v)
	}
	panic("channel: sender has no variant")
}

// Close releases this producer handle. The channel reports ErrClosed to the
// consumer once every producer handle has been closed and the buffer drained.
func (s Sender[T]) Close() {
	switch s.affinity {
	case AffinityConfined:
		s.confined.Close()
	case AffinityShared:
		s.shared.Close()
	default:
		panic("channel: sender has no variant")
	}
}

// Receiver is the uniform consumer handle over the two affinity variants.
type Receiver[T any] struct {
	affinity Affinity
	confined *ConfinedReceiver[T]
	shared   *SharedReceiver[T]
}

// FromConfinedReceiver wraps a confined consumer in the uniform Receiver type.
func FromConfinedReceiver[T any](r *ConfinedReceiver[T]) Receiver[T] {
	return Receiver[T]{affinity: AffinityConfined, confined: r}
}

// FromSharedReceiver wraps a shared consumer in the uniform Receiver type.
func FromSharedReceiver[T any](r *SharedReceiver[T]) Receiver[T] {
	return Receiver[T]{affinity: AffinityShared, shared: r}
}

// Affinity reports which variant this receiver wraps.
func (r Receiver[T]) Affinity() Affinity {
	return r.affinity
}

// Recv dequeues the next message, blocking until one is available. Buffered
// messages are drained before a producer-side close surfaces as ErrClosed.
func (r Receiver[T]) Recv(ctx context.Context) (T, error) {
	switch r.affinity {
	case AffinityConfined:
		return r.confined.Recv(ctx)
	case AffinityShared:
		return r.shared.Recv(ctx)
	}
	panic("channel: receiver has no variant")
}

// Chan exposes the underlying queue for select-based multiplexing.
func (r Receiver[T]) Chan() <-chan T {
	switch r.affinity {
	case AffinityConfined:
		return r.confined.Chan()
	case AffinityShared:
		return r.shared.Chan()
	}
	panic("channel: receiver has no variant")
}

// Done is closed once every producer handle has been closed. Buffered
// messages may still be pending; drain Chan before treating Done as final.
func (r Receiver[T]) Done() <-chan struct{} {
	switch r.affinity {
	case AffinityConfined:
		return r.confined.Done()
	case AffinityShared:
		return r.shared.Done()
	}
	panic("channel: receiver has no variant")
}

// Close releases the consumer end. Subsequent sends fail with ErrClosed.
func (r Receiver[T]) Close() {
	switch r.affinity {
	case AffinityConfined:
		r.confined.Close()
	case AffinityShared:
		r.shared.Close()
	default:
		panic("channel: receiver has no variant")
	}
}
