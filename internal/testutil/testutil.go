// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package testutil // import "go.opentelemetry.io/dataflow/internal/testutil"

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetAvailableLocalAddress finds an available local port and returns an
// endpoint describing it. The port is available for opening when this
// function returns provided that there is no race by some other code to grab
// the same port immediately.
func GetAvailableLocalAddress(tb testing.TB) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(tb, err, "failed to get a free local port")
	addr := ln.Addr().String()
	require.NoError(tb, ln.Close())
	return addr
}
