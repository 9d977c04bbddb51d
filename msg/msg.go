// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package msg defines the closed set of control messages the engine sends to
// receivers over their control channel.
package msg // import "go.opentelemetry.io/dataflow/msg"

import "time"

// Kind discriminates the control message variants.
type Kind int

const (
	// KindTimerTick is a periodic housekeeping signal.
	KindTimerTick Kind = iota
	// KindConfig carries a configuration update payload.
	KindConfig
	// KindShutdown asks the receiver to stop within a grace deadline.
	KindShutdown
	// KindAck acknowledges a previously emitted message.
	KindAck
	// KindNack reports a previously emitted message as not deliverable.
	KindNack
)

func (k Kind) String() string {
	switch k {
	case KindTimerTick:
		return "timer_tick"
	case KindConfig:
		return "config"
	case KindShutdown:
		return "shutdown"
	case KindAck:
		return "ack"
	case KindNack:
		return "nack"
	}
	return "unknown"
}

// ControlMsg is one lifecycle signal. Only the fields relevant to its Kind
// are populated.
type ControlMsg struct {
	// Kind identifies the variant.
	Kind Kind
	// Payload is the opaque configuration payload of a KindConfig message.
	Payload any
	// Deadline is the grace window of a KindShutdown message.
	Deadline time.Duration
	// Reason describes a KindShutdown or KindNack message.
	Reason string
	// ID identifies the message a KindAck or KindNack refers to.
	ID uint64
}

// TimerTick returns a periodic tick signal.
func TimerTick() ControlMsg {
	return ControlMsg{Kind: KindTimerTick}
}

// NewConfig returns a configuration update carrying an opaque payload.
func NewConfig(payload any) ControlMsg {
	return ControlMsg{Kind: KindConfig, Payload: payload}
}

// Shutdown returns a shutdown request with a grace deadline and a reason.
func Shutdown(deadline time.Duration, reason string) ControlMsg {
	return ControlMsg{Kind: KindShutdown, Deadline: deadline, Reason: reason}
}

// Ack returns an acknowledgment for the message identified by id.
func Ack(id uint64) ControlMsg {
	return ControlMsg{Kind: KindAck, ID: id}
}

// Nack returns a negative acknowledgment for the message identified by id.
func Nack(id uint64, reason string) ControlMsg {
	return ControlMsg{Kind: KindNack, ID: id, Reason: reason}
}

// IsShutdown reports whether the message is a shutdown request.
func (m ControlMsg) IsShutdown() bool {
	return m.Kind == KindShutdown
}
