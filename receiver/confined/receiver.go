// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package confined defines the contract for receivers with confined
// concurrency affinity. A confined receiver's state, and the unsynchronized
// bookkeeping of its channel ends and effect handler clones, are owned by the
// single goroutine its Start method runs on. Nothing handed to a confined
// receiver may be moved to another goroutine.
package confined // import "go.opentelemetry.io/dataflow/receiver/confined"

import (
	"context"
	"net"

	"go.uber.org/zap"

	"go.opentelemetry.io/dataflow/channel"
	"go.opentelemetry.io/dataflow/msg"
	"go.opentelemetry.io/dataflow/receiver/receivererror"
)

// Receiver is a confined-affinity receiver implementation. Start runs the
// receiver loop until a shutdown control message is observed (return nil) or
// an unrecoverable error occurs (return it). The loop must multiplex control
// messages with its I/O; it must not drain the control channel to completion
// before doing I/O.
type Receiver[T any] interface {
	Start(ctx context.Context, ctrl ControlChannel, eh EffectHandler[T]) error
}

// ControlChannel is the consumer end of a confined receiver's control
// channel.
type ControlChannel struct {
	rx *channel.ConfinedReceiver[msg.ControlMsg]
}

// NewControlChannel wraps the confined control consumer.
func NewControlChannel(rx *channel.ConfinedReceiver[msg.ControlMsg]) ControlChannel {
	return ControlChannel{rx: rx}
}

// Recv returns the next control message. A channel.ErrClosed result means
// every control producer is gone and should be treated as an implicit
// shutdown signal.
func (c ControlChannel) Recv(ctx context.Context) (msg.ControlMsg, error) {
	return c.rx.Recv(ctx)
}

// Chan exposes the control queue for select-based multiplexing.
func (c ControlChannel) Chan() <-chan msg.ControlMsg {
	return c.rx.Chan()
}

// Done is closed once every control producer is gone. Drain Chan before
// treating Done as an implicit shutdown.
func (c ControlChannel) Done() <-chan struct{} {
	return c.rx.Done()
}

// EffectHandler is the capability object through which a confined receiver
// emits payload messages and acquires external resources. Clones share the
// same payload producer and must stay within the receiver's goroutine
// context.
type EffectHandler[T any] struct {
	name   string
	sender *channel.ConfinedSender[T]
	logger *zap.Logger
}

// NewEffectHandler builds an effect handler for the named receiver.
func NewEffectHandler[T any](name string, sender *channel.ConfinedSender[T], logger *zap.Logger) EffectHandler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return EffectHandler[T]{name: name, sender: sender, logger: logger}
}

// Name returns the receiver's display name.
func (eh EffectHandler[T]) Name() string {
	return eh.name
}

// Logger returns the receiver's logger.
func (eh EffectHandler[T]) Logger() *zap.Logger {
	return eh.logger
}

// SendMessage enqueues a payload message for the downstream stage, blocking
// under backpressure. It returns channel.ErrClosed if the downstream
// consumer is gone; the receiver decides whether that is fatal.
func (eh EffectHandler[T]) SendMessage(ctx context.Context, payload T) error {
	return eh.sender.Send(ctx, payload)
}

// ListenTCP binds a TCP listener on endpoint. The listener must only be used
// within the receiver's goroutine context. Failures are reported as a
// *receivererror.ListenError.
func (eh EffectHandler[T]) ListenTCP(ctx context.Context, endpoint string) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", endpoint)
	if err != nil {
		return nil, receivererror.NewListen(endpoint, err)
	}
	eh.logger.Debug("listener started",
		zap.String("receiver", eh.name),
		zap.String("endpoint", ln.Addr().String()))
	return ln, nil
}

// Clone returns an effect handler sharing the same payload producer, for
// sub-tasks driven by the receiver's own goroutine.
func (eh EffectHandler[T]) Clone() EffectHandler[T] {
	return eh
}
