package service

import (
	"context"
	"fmt"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/store"
)

type healthService struct {
	pinger store.Pinger
	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check pings the store. A missing store counts as unhealthy.
func (h *healthService) Check(ctx context.Context) error {
	if h.pinger == nil {
		return fmt.Errorf("%w: no store configured", ErrInternal)
	}

	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("store ping failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}
