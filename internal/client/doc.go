// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

// Package client implements goalctl, the command-line frontend of the user
// and goal services.
//
// Every subcommand maps onto one method of [adapter.Client]; results are
// printed to stdout as indented JSON, diagnostics go to the logger.
package client
