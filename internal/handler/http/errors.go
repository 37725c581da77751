// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package http

import "errors"

// Request errors detected by the transport layer before a service is called.
var (
	// ErrInvalidGoalID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidGoalID = errors.New("invalid goal id in path")
)
