// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and blocks until it is done.
	Run(ctx context.Context, args []string, stdout, stderr io.Writer) error
}
