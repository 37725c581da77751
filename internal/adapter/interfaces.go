// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

// Package adapter provides the client side of both services.
//
// The primary abstraction is [Client], which decouples goalctl from the
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Service names one of the two backends.
type Service string

const (
	UserService Service = "user"
	GoalService Service = "goal"
)

// Client talks to the user and the goal service. Implementations map
// non-2xx answers to the sentinel errors of this package, keeping the
// server's message in the error text.
type Client interface {
	// Register creates an account. Only success or failure is reported.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	CreateGoal(ctx context.Context, req models.CreateGoalRequest) (models.Goal, error)
	SetCompletion(ctx context.Context, id int64, req models.SetCompletionRequest) (models.Goal, error)
	SetProgress(ctx context.Context, id int64, progress int) (models.Goal, error)

	// ListPaged fetches one page of five goals owned by userID.
	ListPaged(ctx context.Context, userID int64, page int) (models.GoalPage, error)
	ListAll(ctx context.Context, userID int64) ([]models.Goal, error)
	GetGoal(ctx context.Context, id int64) (models.Goal, error)
	ReplaceGoal(ctx context.Context, id int64, req models.ReplaceGoalRequest) (models.Goal, error)
	DeleteGoal(ctx context.Context, id, userID int64) error

	// Version returns the build version reported by service.
	Version(ctx context.Context, service Service) (string, error)
}
