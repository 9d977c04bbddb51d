// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the construction-time configuration of a receiver
// instance: its display name and the capacities of its control and output
// channels.
package config // import "go.opentelemetry.io/dataflow/config"

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const (
	defaultControlCapacity = 16
	defaultOutputCapacity  = 64
	defaultMaxInflight     = 32
)

// ChannelConfig configures one bounded channel. The capacity is fixed at
// channel construction and not resizable.
type ChannelConfig struct {
	// Capacity is the number of messages the channel buffers before
	// applying backpressure to senders. Must be positive.
	Capacity int `mapstructure:"capacity"`
}

// Validate checks the channel configuration.
func (c ChannelConfig) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	return nil
}

// ReceiverConfig configures one receiver instance.
type ReceiverConfig struct {
	// Name is the receiver's display name, used in logs and errors.
	Name string `mapstructure:"name"`

	// ControlChannel sizes the orchestrator-to-receiver control channel.
	ControlChannel ChannelConfig `mapstructure:"control_channel"`

	// OutputChannel sizes the receiver-to-downstream payload channel.
	OutputChannel ChannelConfig `mapstructure:"output_channel"`

	// MaxInflight bounds the connection-handling work a receiver
	// implementation may have in flight at once. Zero means unbounded.
	MaxInflight int `mapstructure:"max_inflight"`
}

// NewDefault returns a receiver configuration with default capacities.
func NewDefault(name string) *ReceiverConfig {
	return &ReceiverConfig{
		Name:           name,
		ControlChannel: ChannelConfig{Capacity: defaultControlCapacity},
		OutputChannel:  ChannelConfig{Capacity: defaultOutputCapacity},
		MaxInflight:    defaultMaxInflight,
	}
}

// Validate checks the receiver configuration, reporting every violation.
func (c *ReceiverConfig) Validate() error {
	var err error
	if c.Name == "" {
		err = multierr.Append(err, errors.New("name must not be empty"))
	}
	if cerr := c.ControlChannel.Validate(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("control_channel: %w", cerr))
	}
	if oerr := c.OutputChannel.Validate(); oerr != nil {
		err = multierr.Append(err, fmt.Errorf("output_channel: %w", oerr))
	}
	if c.MaxInflight < 0 {
		err = multierr.Append(err, fmt.Errorf("max_inflight must not be negative, got %d", c.MaxInflight))
	}
	return err
}
