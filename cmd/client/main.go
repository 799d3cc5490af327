package main

import (
	"fmt"
	"os"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/internal/client"
	"github.com/Julien-Turcotte/myMatrix/internal/config"
	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/internal/tui"
	"github.com/Julien-Turcotte/myMatrix/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("myMatrix", cfg.Log.FilePath)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	factory := adapter.NewMatrixSessionFactory(adapter.MatrixConfig{
		RequestTimeout:    cfg.Homeserver.RequestTimeout,
		SyncTimeout:       cfg.Homeserver.SyncTimeout,
		SyncRetryDelay:    cfg.Homeserver.SyncRetryDelay,
		DeviceDisplayName: "myMatrix",
	}, log)

	services := service.NewClientServices(factory, service.EngineOptions{
		InitialSyncLimit:   cfg.Homeserver.InitialSyncLimit,
		DecryptionDebounce: cfg.Engine.DecryptionDebounce,
		RoomWaitTimeout:    cfg.Engine.RoomWaitTimeout,
		RoomWaitInterval:   cfg.Engine.RoomWaitInterval,
		TypingTTL:          cfg.Engine.TypingTTL,
		ReceiptTimeout:     cfg.Engine.ReceiptTimeout,
	}, log)

	ui, err := tui.New(services, tui.Options{
		Defaults: models.Credentials{
			BaseURL:  cfg.Homeserver.BaseURL,
			UserID:   cfg.Homeserver.UserID,
			DeviceID: cfg.Homeserver.DeviceID,
		},
		TypingIdle: cfg.Engine.TypingIdle,
		BuildInfo:  models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
