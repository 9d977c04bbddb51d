// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package receivererror provides the error types a receiver's run result may
// carry, so the orchestrator can distinguish resource-acquisition failures
// from other fatal errors.
package receivererror // import "go.opentelemetry.io/dataflow/receiver/receivererror"

import "fmt"

// ListenError reports a failure to acquire a network listener.
type ListenError struct {
	// Endpoint is the address the listener was requested for.
	Endpoint string
	// Err is the underlying cause.
	Err error
}

// NewListen wraps err as a ListenError for the given endpoint.
func NewListen(endpoint string, err error) error {
	return &ListenError{Endpoint: endpoint, Err: err}
}

func (e *ListenError) Error() string {
	return fmt.Sprintf("listen on %q: %v", e.Endpoint, e.Err)
}

func (e *ListenError) Unwrap() error {
	return e.Err
}
