// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package receivertest // import "go.opentelemetry.io/dataflow/receiver/receivertest"

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/dataflow/channel"
	"go.opentelemetry.io/dataflow/config"
	"go.opentelemetry.io/dataflow/msg"
	"go.opentelemetry.io/dataflow/obsreport"
	"go.opentelemetry.io/dataflow/receiver"
)

const testDeadline = 10 * time.Second

// Runtime owns the configuration, counters, and deadline context of one
// receiver test.
type Runtime[T any] struct {
	cfg      *config.ReceiverConfig
	counters *obsreport.ControlCounters
	ctx      context.Context
	done     chan error
}

// NewRuntime builds a runtime with a small default configuration and a test
// deadline tied to tb.
func NewRuntime[T any](tb testing.TB) *Runtime[T] {
	ctx, cancel := context.WithTimeout(context.Background(), testDeadline)
	tb.Cleanup(cancel)
	cfg := config.NewDefault("test-receiver")
	cfg.ControlChannel.Capacity = 16
	cfg.OutputChannel.Capacity = 16
	return &Runtime[T]{
		cfg:      cfg,
		counters: obsreport.NewControlCounters(),
		ctx:      ctx,
		done:     make(chan error, 1),
	}
}

// Config returns the runtime's receiver configuration.
func (r *Runtime[T]) Config() *config.ReceiverConfig {
	return r.cfg
}

// Counters returns the counters the receiver under test should update.
func (r *Runtime[T]) Counters() *obsreport.ControlCounters {
	return r.counters
}

// Context returns the test deadline context.
func (r *Runtime[T]) Context() context.Context {
	return r.ctx
}

// Start claims the wrapper's payload receiver and a control sender, then
// runs the wrapper on its own goroutine. It returns a Context for driving
// the scenario and the claimed payload receiver for validation.
func (r *Runtime[T]) Start(w *receiver.Wrapper[T]) (Context, channel.Receiver[T]) {
	payloadRx := w.TakePayloadReceiver()
	ctrlTx := w.ControlSender()
	go func() {
		r.done <- w.Start(r.ctx)
	}()
	return Context{ctx: r.ctx, ctrl: ctrlTx}, payloadRx
}

// Wait blocks until the receiver loop terminates and returns its result.
func (r *Runtime[T]) Wait(tb testing.TB) error {
	select {
	case err := <-r.done:
		return err
	case <-r.ctx.Done():
		tb.Fatal("timed out waiting for receiver to terminate")
		return nil
	}
}

// Context drives a test scenario against a running receiver through its
// control sender.
type Context struct {
	ctx  context.Context
	ctrl channel.Sender[msg.ControlMsg]
}

// ControlSender returns the underlying control sender.
func (c Context) ControlSender() channel.Sender[msg.ControlMsg] {
	return c.ctrl
}

// SendTimerTick delivers a timer tick control message.
func (c Context) SendTimerTick() error {
	return c.ctrl.Send(c.ctx, msg.TimerTick())
}

// SendConfig delivers a configuration update control message.
func (c Context) SendConfig(payload any) error {
	return c.ctrl.Send(c.ctx, msg.NewConfig(payload))
}

// SendShutdown delivers a shutdown control message.
func (c Context) SendShutdown(deadline time.Duration, reason string) error {
	return c.ctrl.Send(c.ctx, msg.Shutdown(deadline, reason))
}

// RecvPayload receives one payload message from rx, failing the test if none
// arrives within timeout.
func RecvPayload[T any](tb testing.TB, rx channel.Receiver[T], timeout time.Duration) T {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	v, err := rx.Recv(ctx)
	require.NoError(tb, err, "no payload message received")
	return v
}
