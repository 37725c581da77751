package http

import (
	"time"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/service"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
)

type Handler struct {
	services *service.Services

	// role selects the routes registered by Init.
	role           config.Role
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, role config.Role, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("role", string(role)).Msg("http handler created")
	return &Handler{
		services:       services,
		role:           role,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		metrics:        newHTTPMetrics(role),
		logger:         logger,
	}
}
