// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/store"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/validators"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

// Fields checked on replace. The owner id is compared instead of validated.
var replaceFields = []string{"title", "startDate", "deadline"}

// goalService is the concrete implementation of GoalService.
type goalService struct {
	goalRepository store.GoalRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewGoalService constructs a GoalService over goalRepository.
func NewGoalService(goalRepository store.GoalRepository, validator validators.Validator, logger *logger.Logger) GoalService {
	return &goalService{
		goalRepository: goalRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateGoal validates in and stores a new goal owned by in.UserID.
// Progress defaults to 0 and completed to false.
func (g *goalService) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	if err := g.validator.Validate(ctx, in); err != nil {
		return models.Goal{}, err
	}

	goal, err := goalFromInput(in)
	if err != nil {
		return models.Goal{}, err
	}
	goal.UserID = in.UserID
	if in.Progress != nil {
		goal.Progress = *in.Progress
	}

	created, err := g.goalRepository.Insert(ctx, goal)
	if err != nil {
		return models.Goal{}, g.storeError(ctx, "CreateGoal", err)
	}

	return created, nil
}

func (g *goalService) SetCompletion(ctx context.Context, id int64, completed bool, progress int) (models.Goal, error) {
	updated, err := g.goalRepository.Update(ctx, id, models.GoalPatch{
		Completed: &completed,
		Progress:  &progress,
	})
	if err != nil {
		return models.Goal{}, g.storeError(ctx, "SetCompletion", err)
	}

	return updated, nil
}

func (g *goalService) SetProgress(ctx context.Context, id int64, progress int) (models.Goal, error) {
	updated, err := g.goalRepository.Update(ctx, id, models.GoalPatch{Progress: &progress})
	if err != nil {
		return models.Goal{}, g.storeError(ctx, "SetProgress", err)
	}

	return updated, nil
}

// ListPaged returns page of userID's goals, five per page. Pages below 1
// are read as 1; pages past the end are empty.
func (g *goalService) ListPaged(ctx context.Context, userID int64, page int) (models.GoalPage, error) {
	if userID == 0 {
		return models.GoalPage{}, ErrMissingUserID
	}
	if page < 1 {
		page = 1
	}

	offset := math.MaxInt
	if page-1 <= math.MaxInt/models.GoalsPageSize {
		offset = (page - 1) * models.GoalsPageSize
	}

	goals, total, err := g.goalRepository.FindByOwner(ctx, userID, offset, models.GoalsPageSize)
	if err != nil {
		return models.GoalPage{}, g.storeError(ctx, "ListPaged", err)
	}

	return models.GoalPage{
		Goals:       goals,
		TotalPages:  models.TotalPages(total, models.GoalsPageSize),
		CurrentPage: page,
	}, nil
}

func (g *goalService) ListAll(ctx context.Context, userID int64) ([]models.Goal, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}

	goals, err := g.goalRepository.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, g.storeError(ctx, "ListAll", err)
	}

	return goals, nil
}

func (g *goalService) GetOne(ctx context.Context, id int64) (models.Goal, error) {
	goal, err := g.goalRepository.Get(ctx, id)
	if err != nil {
		return models.Goal{}, g.storeError(ctx, "GetOne", err)
	}

	return goal, nil
}

// ReplaceGoal overwrites title, dates and description of a goal owned by
// in.UserID. Progress is kept when in.Progress is nil. The owner is checked
// before anything is written.
func (g *goalService) ReplaceGoal(ctx context.Context, id int64, in models.GoalInput) (models.Goal, error) {
	if err := g.validator.Validate(ctx, in, replaceFields...); err != nil {
		return models.Goal{}, err
	}

	replacement, err := goalFromInput(in)
	if err != nil {
		return models.Goal{}, err
	}

	if err = g.checkOwner(ctx, "ReplaceGoal", id, in.UserID); err != nil {
		return models.Goal{}, err
	}

	updated, err := g.goalRepository.Update(ctx, id, models.GoalPatch{
		Title:          &replacement.Title,
		Description:    replacement.Description,
		SetDescription: true,
		StartDate:      &replacement.StartDate,
		Deadline:       &replacement.Deadline,
		Progress:       in.Progress,
	})
	if err != nil {
		return models.Goal{}, g.storeError(ctx, "ReplaceGoal", err)
	}

	return updated, nil
}

// DeleteGoal removes a goal owned by userID.
func (g *goalService) DeleteGoal(ctx context.Context, id, userID int64) error {
	if err := g.checkOwner(ctx, "DeleteGoal", id, userID); err != nil {
		return err
	}

	if err := g.goalRepository.Delete(ctx, id); err != nil {
		return g.storeError(ctx, "DeleteGoal", err)
	}

	return nil
}

// checkOwner loads goal id and verifies it belongs to userID.
func (g *goalService) checkOwner(ctx context.Context, fn string, id, userID int64) error {
	existing, err := g.goalRepository.Get(ctx, id)
	if err != nil {
		return g.storeError(ctx, fn, err)
	}

	if existing.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "*goalService."+fn).
			Int64("goal_id", id).
			Int64("owner_id", existing.UserID).
			Int64("user_id", userID).
			Msg("ownership check failed")
		return ErrForbidden
	}

	return nil
}

// storeError maps a repository error onto the service taxonomy.
func (g *goalService) storeError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, store.ErrGoalNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	logger.FromContext(ctx).Err(err).Str("func", "*goalService."+fn).Msg("goal store failure")
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// goalFromInput parses the dates of an already validated input.
func goalFromInput(in models.GoalInput) (models.Goal, error) {
	startDate, err := models.ParseDate(in.StartDate)
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	deadline, err := models.ParseDate(in.Deadline)
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	return models.Goal{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   startDate,
		Deadline:    deadline,
	}, nil
}
