package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/handler"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/server"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/service"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/store"
	"github.com/ZaidAmirMahdi10/goal-tracker/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = config.RoleUserService

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(role, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger(string(role), cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(migrations.SetUsers); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, role, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
