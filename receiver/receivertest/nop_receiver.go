// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package receivertest provides helpers for testing receiver implementations
// of either affinity: no-op receivers, ready-made Settings, and a small
// runtime that drives a wrapped receiver through the scenario/validation
// cycle.
package receivertest // import "go.opentelemetry.io/dataflow/receiver/receivertest"

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go.opentelemetry.io/dataflow/channel"
	"go.opentelemetry.io/dataflow/receiver"
	"go.opentelemetry.io/dataflow/receiver/confined"
	"go.opentelemetry.io/dataflow/receiver/shared"
)

// NewNopSettings returns Settings backed by a no-op logger.
func NewNopSettings() receiver.Settings {
	return receiver.Settings{Logger: zap.NewNop()}
}

type nopConfined[T any] struct{}

// NewNopConfined returns a confined receiver that performs no I/O and idles
// until a shutdown control message arrives.
func NewNopConfined[T any]() confined.Receiver[T] {
	return nopConfined[T]{}
}

func (nopConfined[T]) Start(ctx context.Context, ctrl confined.ControlChannel, _ confined.EffectHandler[T]) error {
	for {
		m, err := ctrl.Recv(ctx)
		if errors.Is(err, channel.ErrClosed) {
			// All control producers gone: implicit shutdown.
			return nil
		}
		if err != nil {
			return err
		}
		if m.IsShutdown() {
			return nil
		}
	}
}

type nopShared[T any] struct{}

// NewNopShared returns a shared receiver that performs no I/O and idles
// until a shutdown control message arrives.
func NewNopShared[T any]() shared.Receiver[T] {
	return nopShared[T]{}
}

func (nopShared[T]) Start(ctx context.Context, ctrl shared.ControlChannel, _ shared.EffectHandler[T]) error {
	for {
		m, err := ctrl.Recv(ctx)
		if errors.Is(err, channel.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if m.IsShutdown() {
			return nil
		}
	}
}
