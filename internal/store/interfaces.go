package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser persists user and returns it with its generated id.
	// A collision on username or email yields [ErrDuplicateUser].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when email is unknown.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// GoalRepository is the goal store.
type GoalRepository interface {
	Insert(ctx context.Context, goal models.Goal) (models.Goal, error)
	Get(ctx context.Context, id int64) (models.Goal, error)
	// FindByOwner returns one window of userID's goals ordered by id and the
	// total number of goals the user owns.
	FindByOwner(ctx context.Context, userID int64, offset, limit int) ([]models.GoalSummary, int, error)
	FindAllByOwner(ctx context.Context, userID int64) ([]models.Goal, error)
	// Update applies patch to the goal and returns the stored result.
	Update(ctx context.Context, id int64, patch models.GoalPatch) (models.Goal, error)
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
