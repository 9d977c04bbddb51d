// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package msg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindTimerTick, TimerTick().Kind)

	cfg := NewConfig(map[string]any{"endpoint": "localhost:4317"})
	assert.Equal(t, KindConfig, cfg.Kind)
	assert.Equal(t, map[string]any{"endpoint": "localhost:4317"}, cfg.Payload)

	sd := Shutdown(200*time.Millisecond, "deploy")
	assert.Equal(t, KindShutdown, sd.Kind)
	assert.Equal(t, 200*time.Millisecond, sd.Deadline)
	assert.Equal(t, "deploy", sd.Reason)

	assert.Equal(t, uint64(9), Ack(9).ID)
	nack := Nack(9, "queue full")
	assert.Equal(t, uint64(9), nack.ID)
	assert.Equal(t, "queue full", nack.Reason)
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, Shutdown(0, "").IsShutdown())
	assert.False(t, TimerTick().IsShutdown())
	assert.False(t, NewConfig(nil).IsShutdown())
	assert.False(t, Ack(1).IsShutdown())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "timer_tick", KindTimerTick.String())
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "shutdown", KindShutdown.String())
	assert.Equal(t, "ack", KindAck.String())
	assert.Equal(t, "nack", KindNack.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
