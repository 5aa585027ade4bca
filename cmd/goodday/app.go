package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/archive"
	"github.com/githubocto/good-day-azure/internal/charts"
	"github.com/githubocto/good-day-azure/internal/config"
	"github.com/githubocto/good-day-azure/internal/database"
	"github.com/githubocto/good-day-azure/internal/gh"
	"github.com/githubocto/good-day-azure/internal/handlers"
	logger "github.com/githubocto/good-day-azure/internal/logging"
	"github.com/githubocto/good-day-azure/internal/services"
	"github.com/githubocto/good-day-azure/internal/slack"
	"github.com/githubocto/good-day-azure/internal/survey"
)

// app holds the wired-up services shared by all commands.
type app struct {
	log       *zap.Logger
	catalog   *survey.Catalog
	record    *handlers.RecordHandler
	generator *services.Generator
	scheduler *services.Scheduler
}

func newApp(ctx context.Context) (*app, error) {
	bootLog, err := logger.Init(logger.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := config.Init(projectRoot, bootLog); err != nil {
		return nil, err
	}

	log, err := logger.Init(logger.Options{
		Directory:  filepath.Join(projectRoot, config.Conf.Logging.Directory),
		MaxSize:    config.Conf.Logging.MaxSize,
		MaxBackups: config.Conf.Logging.MaxBackups,
		MaxAge:     config.Conf.Logging.MaxAge,
		Compress:   config.Conf.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	catalog, err := survey.LoadCatalog(filepath.Join(projectRoot, "config", "questions.yaml"))
	if err != nil {
		return nil, err
	}

	if err := database.Init(log); err != nil {
		return nil, err
	}

	store := gh.NewClient(
		config.Conf.GitHub.Token,
		config.Conf.GitHub.CommitterName,
		config.Conf.GitHub.CommitterEmail,
	)
	notifier := slack.NewNotifier(
		config.Conf.Slack.BotURL,
		config.Conf.Slack.ServiceID,
		config.Conf.Slack.ServiceSecret,
		log,
	)
	arch, err := archive.New(ctx, config.Conf.Storage, log)
	if err != nil {
		return nil, err
	}

	generator := services.NewGenerator(log, catalog, store, charts.NewSnapshot(""), notifier, arch)

	return &app{
		log:       log,
		catalog:   catalog,
		record:    handlers.NewRecordHandler(log, catalog, store),
		generator: generator,
		scheduler: services.NewScheduler(log, generator, notifier),
	}, nil
}
