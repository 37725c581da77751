package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/adapter"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/client"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	level := os.Getenv("GOALCTL_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log := logger.NewClientLogger("goalctl", level)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serviceClient, err := adapter.NewHTTPClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create service client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(serviceClient, buildInfo, cfg.Token, log)

	if err = app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
