package main

import (
	"context"
	"fmt"

	"github.com/communication-ltd/portal/internal/config"
	handler "github.com/communication-ltd/portal/internal/handler/http"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/mail"
	"github.com/communication-ltd/portal/internal/server"
	"github.com/communication-ltd/portal/internal/service"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database schema")
	}

	storages := store.NewStorages(db, log)
	sender := mail.NewSMTPSender(cfg.Mail, log)
	services := service.NewServices(storages, *cfg, sender, log)
	handlers := handler.NewHandler(services, cfg.Auth, log)

	go workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
