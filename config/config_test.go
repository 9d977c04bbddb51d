// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault("otlp")
	assert.Equal(t, "otlp", cfg.Name)
	assert.Equal(t, 16, cfg.ControlChannel.Capacity)
	assert.Equal(t, 64, cfg.OutputChannel.Capacity)
	assert.Equal(t, 32, cfg.MaxInflight)
	require.NoError(t, cfg.Validate())
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := &ReceiverConfig{
		Name:           "",
		ControlChannel: ChannelConfig{Capacity: 0},
		OutputChannel:  ChannelConfig{Capacity: -3},
		MaxInflight:    -1,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), "control_channel")
	assert.Contains(t, err.Error(), "output_channel")
	assert.Contains(t, err.Error(), "max_inflight")
}

func TestValidateChannelConfig(t *testing.T) {
	assert.Error(t, ChannelConfig{Capacity: 0}.Validate())
	assert.NoError(t, ChannelConfig{Capacity: 1}.Validate())
}
