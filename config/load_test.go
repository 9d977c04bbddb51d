// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReceiverConfig(t *testing.T) {
	cfg, err := LoadReceiverConfig([]byte(`
name: otlp
control_channel:
  capacity: 8
output_channel:
  capacity: 128
max_inflight: 4
`))
	require.NoError(t, err)
	assert.Equal(t, "otlp", cfg.Name)
	assert.Equal(t, 8, cfg.ControlChannel.Capacity)
	assert.Equal(t, 128, cfg.OutputChannel.Capacity)
	assert.Equal(t, 4, cfg.MaxInflight)
}

func TestLoadReceiverConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadReceiverConfig([]byte(`name: syslog`))
	require.NoError(t, err)
	assert.Equal(t, "syslog", cfg.Name)
	assert.Equal(t, 16, cfg.ControlChannel.Capacity)
	assert.Equal(t, 64, cfg.OutputChannel.Capacity)
	assert.Equal(t, 32, cfg.MaxInflight)
}

func TestLoadReceiverConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadReceiverConfig([]byte(`
name: otlp
listen_port: 4317
`))
	require.Error(t, err)
}

func TestLoadReceiverConfigRejectsInvalid(t *testing.T) {
	_, err := LoadReceiverConfig([]byte(`
control_channel:
  capacity: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid receiver config")
}

func TestLoadReceiverConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadReceiverConfig([]byte("name: [unclosed"))
	require.Error(t, err)
}
