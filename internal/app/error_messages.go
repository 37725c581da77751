// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

// Package app contains shared application-layer constants used across the
// user and goal service handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Frontends match on some of them, so the wording is kept
// stable.
package app

// Shared messages.
const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs and no more specific message applies.
	MsgInternalServerError = "Internal server error"

	// MsgServiceUnavailable is returned by the health check when the store
	// cannot be reached.
	MsgServiceUnavailable = "Service unavailable"

	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
)

// User service messages.
const (
	MsgWelcomeUserService = "Welcome to the User Service"

	MsgUserRegistered = "User registered successfully"

	// MsgDuplicateCredential does not say which of the two fields collided.
	MsgDuplicateCredential = "Email or username already taken"

	// MsgInvalidCredentials is the single answer to an unknown email and to
	// a wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
)

// Goal service messages.
const (
	MsgWelcomeGoalService = "Welcome to the Goal Service"

	MsgInvalidDate     = "Invalid date format. Use YYYY-MM-DD."
	MsgInvalidGoalID   = "Invalid goal ID."
	MsgUserIDRequired  = "User ID is required."
	MsgGoalNotFound    = "Goal not found."
	MsgForbiddenUpdate = "You do not have permission to update this goal."
	MsgForbiddenDelete = "You do not have permission to delete this goal."

	MsgCreateGoalFailed     = "Failed to create goal."
	MsgUpdateGoalFailed     = "Failed to update goal"
	MsgUpdateProgressFailed = "Failed to update goal progress"
	MsgFetchGoalsFailed     = "Failed to fetch goals."
	MsgFetchGoalFailed      = "Failed to fetch goal."
	MsgDeleteGoalFailed     = "Failed to delete goal."
)
