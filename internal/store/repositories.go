package store

import "github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"

// Repositories aggregates the stores handed to the service layer. A service
// binary only uses the repository matching its role.
type Repositories struct {
	UserRepository UserRepository
	GoalRepository GoalRepository
	Pinger         Pinger
}

// NewRepositories builds every repository on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		GoalRepository: NewGoalRepository(db, log),
		Pinger:         db,
	}
}
