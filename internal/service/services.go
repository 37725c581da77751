package service

import (
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/store"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/validators"
)

// Services aggregates the domain services handed to the transport layer.
// Each binary only routes to the services of its role.
type Services struct {
	AuthService    AuthService
	GoalService    GoalService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		GoalService:    NewGoalService(repositories.GoalRepository, validator, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(repositories.Pinger, logger),
	}, nil
}
