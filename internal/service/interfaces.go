package service

import (
	"context"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

// AuthService registers users and issues session tokens.
type AuthService interface {
	// Register stores a new user with a bcrypt hash of the password. Only
	// success or failure is reported back.
	Register(ctx context.Context, req models.RegisterRequest) error
	// Login checks the credentials and issues a token valid for one hour.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	// ParseToken verifies a token issued by Login.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// GoalService manages goals on behalf of their owners. Ownership is checked
// against the caller supplied user id.
type GoalService interface {
	CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error)
	// SetCompletion overwrites the completed flag and progress. It does not
	// check ownership.
	SetCompletion(ctx context.Context, id int64, completed bool, progress int) (models.Goal, error)
	// SetProgress overwrites progress only. It does not check ownership.
	SetProgress(ctx context.Context, id int64, progress int) (models.Goal, error)
	ListPaged(ctx context.Context, userID int64, page int) (models.GoalPage, error)
	ListAll(ctx context.Context, userID int64) ([]models.Goal, error)
	GetOne(ctx context.Context, id int64) (models.Goal, error)
	ReplaceGoal(ctx context.Context, id int64, in models.GoalInput) (models.Goal, error)
	DeleteGoal(ctx context.Context, id, userID int64) error
}

// AppInfoService reports build information of the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its store.
type HealthService interface {
	Check(ctx context.Context) error
}
