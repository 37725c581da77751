// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

// goalRepository is the SQL implementation of [GoalRepository] over the
// "goals" table. Every statement is a single-row atomic operation; when two
// writers race on one id the last one wins.
type goalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGoalRepository constructs a [GoalRepository] backed by db.
func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores goal and returns it with its generated id.
func (r *goalRepository) Insert(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(goalsTable).
		Columns("title", "description", "start_date", "deadline", "progress", "completed", "user_id").
		Values(goal.Title, goal.Description, goal.StartDate, goal.Deadline, goal.Progress, goal.Completed, goal.UserID).
		Suffix(returning(goalColumns)).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanGoal(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.Insert").
			Stringer("error_class", r.db.errorClassificator.Classify(err)).
			Msg("error inserting goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Get returns the goal with id or [ErrGoalNotFound].
func (r *goalRepository) Get(ctx context.Context, id int64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}

		log.Err(err).Str("func", "*goalRepository.Get").Int64("goal_id", id).Msg("error getting goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goal, nil
}

// FindByOwner returns at most limit summaries of userID's goals starting at
// offset, ordered by id, together with the number of goals userID owns.
func (r *goalRepository) FindByOwner(ctx context.Context, userID int64, offset, limit int) ([]models.GoalSummary, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := r.db.builder.
		Select("COUNT(*)").
		From(goalsTable).
		Where(goalsByOwner(userID)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*goalRepository.FindByOwner").Msg("error counting goals")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.db.builder.
		Select(goalSummaryColumns...).
		From(goalsTable).
		Where(goalsByOwner(userID)).
		OrderBy("id").
		Limit(uint64(max(limit, 0))).
		Offset(uint64(max(offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.FindByOwner").Msg("error selecting goals")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	goals := make([]models.GoalSummary, 0, limit)
	for rows.Next() {
		goal, err := scanGoalSummary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, total, nil
}

// FindAllByOwner returns every goal of userID ordered by id.
func (r *goalRepository) FindAllByOwner(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(goalColumns...).
		From(goalsTable).
		Where(goalsByOwner(userID)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.FindAllByOwner").Msg("error selecting goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

// Update writes the non-nil fields of patch and returns the stored goal.
// An empty patch degrades to [goalRepository.Get].
func (r *goalRepository) Update(ctx context.Context, id int64, patch models.GoalPatch) (models.Goal, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}

	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(goalsTable).
		SetMap(goalPatchSetMap(patch)).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(goalColumns)).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}

		log.Err(err).Str("func", "*goalRepository.Update").Int64("goal_id", id).Msg("error updating goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return goal, nil
}

// Delete removes the goal with id. [ErrGoalNotFound] is returned when no
// row was affected.
func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(goalsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.Delete").Int64("goal_id", id).Msg("error deleting goal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}

	return nil
}
