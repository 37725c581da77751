// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package models

// GoalsPageSize is the fixed number of goals returned per page.
const GoalsPageSize = 5

// Goal is a tracked objective owned by exactly one user.
//
// UserID is written once at creation and never changed afterwards; every
// mutation that checks ownership compares against it.
type Goal struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   Date    `json:"startDate"`
	Deadline    Date    `json:"deadline"`
	Progress    int     `json:"progress"`
	Completed   bool    `json:"completed"`
	UserID      int64   `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Goal model.
func (g Goal) TableName() string {
	return "goals"
}

// Summary returns the paged-listing projection of g.
func (g Goal) Summary() GoalSummary {
	return GoalSummary{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		StartDate:   g.StartDate,
		Deadline:    g.Deadline,
		Completed:   g.Completed,
		Progress:    g.Progress,
	}
}

// GoalSummary is the projection of a goal returned by paged listings. The
// owner id is deliberately absent.
type GoalSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   Date    `json:"startDate"`
	Deadline    Date    `json:"deadline"`
	Completed   bool    `json:"completed"`
	Progress    int     `json:"progress"`
}

// GoalInput carries the caller-supplied fields of a create or replace
// request. Dates stay raw strings until they are validated.
type GoalInput struct {
	Title       string  `json:"title" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required,calendardate"`
	Deadline    string  `json:"deadline" validate:"required,calendardate"`
	Description *string `json:"description"`
	Progress    *int    `json:"progress"`
	UserID      int64   `json:"userId" validate:"required"`
}

// GoalPatch is a partial update of a goal. Nil fields are left untouched.
// It intentionally has no UserID: ownership never changes after creation.
type GoalPatch struct {
	Title          *string
	Description    *string
	SetDescription bool
	StartDate      *Date
	Deadline       *Date
	Progress       *int
	Completed      *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p GoalPatch) IsEmpty() bool {
	return p.Title == nil && !p.SetDescription && p.StartDate == nil &&
		p.Deadline == nil && p.Progress == nil && p.Completed == nil
}

// GoalPage is a single page of a user's goals.
type GoalPage struct {
	Goals       []GoalSummary `json:"goals"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// TotalPages returns ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
