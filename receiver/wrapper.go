// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package receiver provides the Wrapper type the pipeline orchestrator holds
// to construct, start, and communicate with a receiver instance without
// knowing its concurrency affinity. The wrapper is a tagged union over the
// confined and shared variants; every operation dispatches on the variant
// tag, and no operation coerces one affinity into the other.
package receiver // import "go.opentelemetry.io/dataflow/receiver"

import (
	"context"

	"go.uber.org/zap"

	"go.opentelemetry.io/dataflow/channel"
	"go.opentelemetry.io/dataflow/config"
	"go.opentelemetry.io/dataflow/msg"
	"go.opentelemetry.io/dataflow/receiver/confined"
	"go.opentelemetry.io/dataflow/receiver/shared"
)

// Settings carries the ambient dependencies handed to a receiver at
// construction.
type Settings struct {
	// Logger is used by the receiver's effect handler. A nil Logger is
	// replaced with a no-op logger.
	Logger *zap.Logger
}

// Wrapper packages a receiver of either affinity behind one lifecycle
// surface. Exactly one variant is populated; the variant is fixed at
// construction and never changes.
//
// A Wrapper is not safe for concurrent use. The intended lifecycle is
// single-goroutine: construct, take the payload receiver, keep a control
// sender, then call Start.
type Wrapper[T any] struct {
	affinity channel.Affinity
	started  bool

	confinedReceiver confined.Receiver[T]
	confinedHandler  confined.EffectHandler[T]
	confinedCtrlTx   *channel.ConfinedSender[msg.ControlMsg]
	confinedCtrlRx   *channel.ConfinedReceiver[msg.ControlMsg]
	confinedDataTx   *channel.ConfinedSender[T]

	sharedReceiver shared.Receiver[T]
	sharedHandler  shared.EffectHandler[T]
	sharedCtrlTx   *channel.SharedSender[msg.ControlMsg]
	sharedCtrlRx   *channel.SharedReceiver[msg.ControlMsg]
	sharedDataTx   *channel.SharedSender[T]

	payloadRx *channel.Receiver[T]
}

// NewConfined wraps a confined-affinity receiver, creating its control and
// output channels with the configured capacities.
func NewConfined[T any](r confined.Receiver[T], cfg *config.ReceiverConfig, set Settings) *Wrapper[T] {
	ctrlTx, ctrlRx := channel.NewConfined[msg.ControlMsg](cfg.ControlChannel.Capacity)
	dataTx, dataRx := channel.NewConfined[T](cfg.OutputChannel.Capacity)
	payloadRx := channel.FromConfinedReceiver(dataRx)
	return &Wrapper[T]{
		affinity:         channel.AffinityConfined,
		confinedReceiver: r,
		confinedHandler:  confined.NewEffectHandler(cfg.Name, dataTx, set.Logger),
		confinedCtrlTx:   ctrlTx,
		confinedCtrlRx:   ctrlRx,
		confinedDataTx:   dataTx,
		payloadRx:        &payloadRx,
	}
}

// NewShared wraps a shared-affinity receiver, creating its control and
// output channels with the configured capacities.
func NewShared[T any](r shared.Receiver[T], cfg *config.ReceiverConfig, set Settings) *Wrapper[T] {
	ctrlTx, ctrlRx := channel.NewShared[msg.ControlMsg](cfg.ControlChannel.Capacity)
	dataTx, dataRx := channel.NewShared[T](cfg.OutputChannel.Capacity)
	payloadRx := channel.FromSharedReceiver(dataRx)
	return &Wrapper[T]{
		affinity:       channel.AffinityShared,
		sharedReceiver: r,
		sharedHandler:  shared.NewEffectHandler(cfg.Name, dataTx, set.Logger),
		sharedCtrlTx:   ctrlTx,
		sharedCtrlRx:   ctrlRx,
		sharedDataTx:   dataTx,
		payloadRx:      &payloadRx,
	}
}

// Affinity reports the wrapper's variant tag.
func (w *Wrapper[T]) Affinity() channel.Affinity {
	return w.affinity
}

// ControlSender returns a cloned control producer tagged with the wrapper's
// affinity. It may be called any number of times. Sends fail with
// channel.ErrClosed once the receiver loop has terminated.
func (w *Wrapper[T]) ControlSender() channel.Sender[msg.ControlMsg] {
	switch w.affinity {
	case channel.AffinityConfined:
		return channel.FromConfinedSender(w.confinedCtrlTx.Clone())
	case channel.AffinityShared:
		return channel.FromSharedSender(w.sharedCtrlTx.Clone())
	}
	panic("receiver: wrapper has no variant")
}

// Start builds the affinity-specific control channel and runs the receiver
// loop on the calling goroutine until it terminates, returning the
// receiver's result. After the loop returns, the output channel's producer
// side is closed so the downstream stage drains remaining payloads and then
// observes channel.ErrClosed, and the control consumer is closed so late
// control sends fail with channel.ErrClosed.
//
// Start consumes the wrapper; calling it twice panics.
func (w *Wrapper[T]) Start(ctx context.Context) error {
	if w.started {
		panic("receiver: Start called twice")
	}
	w.started = true

	switch w.affinity {
	case channel.AffinityConfined:
		// Release the wrapper's own control producer: once every handle
		// returned by ControlSender is closed too, the receiver observes
		// an implicit shutdown.
		w.confinedCtrlTx.Close()
		defer w.confinedDataTx.Close()
		defer w.confinedCtrlRx.Close()
		ctrl := confined.NewControlChannel(w.confinedCtrlRx)
		return w.confinedReceiver.Start(ctx, ctrl, w.confinedHandler)
	case channel.AffinityShared:
		w.sharedCtrlTx.Close()
		defer w.sharedDataTx.Close()
		defer w.sharedCtrlRx.Close()
		ctrl := shared.NewControlChannel(w.sharedCtrlRx)
		return w.sharedReceiver.Start(ctx, ctrl, w.sharedHandler)
	}
	panic("receiver: wrapper has no variant")
}

// TakePayloadReceiver hands off the sole consumer end of the output channel,
// tagged with the wrapper's affinity. It may be called exactly once; a
// second call is a programming error and panics.
func (w *Wrapper[T]) TakePayloadReceiver() channel.Receiver[T] {
	if w.payloadRx == nil {
		panic("receiver: payload receiver already taken")
	}
	rx := *w.payloadRx
	w.payloadRx = nil
	return rx
}
