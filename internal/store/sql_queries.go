package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

const (
	usersTable = "users"
	goalsTable = "goals"
)

var (
	userColumns = []string{"id", "username", "email", "password"}

	goalColumns = []string{
		"id", "title", "description", "start_date", "deadline", "progress", "completed", "user_id",
	}

	// goalSummaryColumns is the projection of paged listings: no owner id.
	goalSummaryColumns = []string{
		"id", "title", "description", "start_date", "deadline", "completed", "progress",
	}
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash)
	return user, err
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var goal models.Goal
	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.StartDate,
		&goal.Deadline,
		&goal.Progress,
		&goal.Completed,
		&goal.UserID,
	)
	return goal, err
}

func scanGoalSummary(row rowScanner) (models.GoalSummary, error) {
	var goal models.GoalSummary
	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.StartDate,
		&goal.Deadline,
		&goal.Completed,
		&goal.Progress,
	)
	return goal, err
}

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// goalPatchSetMap translates a [models.GoalPatch] into SET clauses.
func goalPatchSetMap(patch models.GoalPatch) map[string]any {
	set := make(map[string]any, 6)

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.SetDescription {
		set["description"] = patch.Description
	}
	if patch.StartDate != nil {
		set["start_date"] = *patch.StartDate
	}
	if patch.Deadline != nil {
		set["deadline"] = *patch.Deadline
	}
	if patch.Progress != nil {
		set["progress"] = *patch.Progress
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	return set
}

func goalsByOwner(userID int64) squirrel.Eq {
	return squirrel.Eq{"user_id": userID}
}
