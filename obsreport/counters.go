// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package obsreport provides the observability counters a receiver loop
// updates while handling control messages. Counters are plain values with a
// lifecycle tied to the receiver instance, not process-global state; a
// Prometheus view is available for scraping through a caller-owned registry.
package obsreport // import "go.opentelemetry.io/dataflow/obsreport"

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"go.opentelemetry.io/dataflow/msg"
)

// ControlCounters counts the control messages observed by one receiver loop.
// Safe for concurrent update and inspection.
type ControlCounters struct {
	timerTick *atomic.Int64
	message   *atomic.Int64
	config    *atomic.Int64
	shutdown  *atomic.Int64
}

// NewControlCounters returns zeroed counters.
func NewControlCounters() *ControlCounters {
	return &ControlCounters{
		timerTick: atomic.NewInt64(0),
		message:   atomic.NewInt64(0),
		config:    atomic.NewInt64(0),
		shutdown:  atomic.NewInt64(0),
	}
}

// Update increments the counter matching the message kind. Ack and Nack
// signals count as generic messages.
func (c *ControlCounters) Update(m msg.ControlMsg) {
	switch m.Kind {
	case msg.KindTimerTick:
		c.timerTick.Inc()
	case msg.KindConfig:
		c.config.Inc()
	case msg.KindShutdown:
		c.shutdown.Inc()
	case msg.KindAck, msg.KindNack:
		c.message.Inc()
	}
}

// TimerTickCount returns the number of timer ticks observed.
func (c *ControlCounters) TimerTickCount() int64 {
	return c.timerTick.Load()
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	TimerTick int64
	Message   int64
	Config    int64
	Shutdown  int64
}

// Snapshot returns a point-in-time copy of all counters.
func (c *ControlCounters) Snapshot() Snapshot {
	return Snapshot{
		TimerTick: c.timerTick.Load(),
		Message:   c.message.Load(),
		Config:    c.config.Load(),
		Shutdown:  c.shutdown.Load(),
	}
}

// Collector returns a prometheus.Collector exposing the counters as
// dataflow_receiver_control_msgs_total{receiver, kind}. Register it on a
// registry owned by the caller.
func (c *ControlCounters) Collector(receiverName string) prometheus.Collector {
	return &countersCollector{
		counters: c,
		desc: prometheus.NewDesc(
			"dataflow_receiver_control_msgs_total",
			"Control messages observed by the receiver loop, by kind.",
			[]string{"kind"},
			prometheus.Labels{"receiver": receiverName},
		),
	}
}

type countersCollector struct {
	counters *ControlCounters
	desc     *prometheus.Desc
}

func (cc *countersCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.desc
}

func (cc *countersCollector) Collect(ch chan<- prometheus.Metric) {
	s := cc.counters.Snapshot()
	ch <- prometheus.MustNewConstMetric(cc.desc, prometheus.CounterValue, float64(s.TimerTick), msg.KindTimerTick.String())
	ch <- prometheus.MustNewConstMetric(cc.desc, prometheus.CounterValue, float64(s.Message), "message")
	ch <- prometheus.MustNewConstMetric(cc.desc, prometheus.CounterValue, float64(s.Config), msg.KindConfig.String())
	ch <- prometheus.MustNewConstMetric(cc.desc, prometheus.CounterValue, float64(s.Shutdown), msg.KindShutdown.String())
}
