package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/config"
	"github.com/githubocto/good-day-azure/internal/router"
)

var withScheduler bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the survey-submission webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		if withScheduler {
			a.scheduler.Start(cmd.Context())
		}

		r := router.Setup(a.log, a.record)
		port := ":" + config.Conf.Server.Port
		a.log.Info("Server listening on http://localhost" + port)
		return r.Run(port)
	},
}

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Generate and publish last week's charts for every user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		if err := a.generator.Run(cmd.Context()); err != nil {
			a.log.Error("Chart generation failed", zap.Error(err))
			return err
		}
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Prompt users whose local reminder hour is now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		if err := a.scheduler.RunReminderPass(cmd.Context()); err != nil {
			a.log.Error("Reminder pass failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&withScheduler, "scheduler", false, "also run the reminder and chart jobs in-process")
}
