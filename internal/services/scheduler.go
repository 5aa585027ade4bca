package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/config"
	"github.com/githubocto/good-day-azure/internal/repository"
)

// PromptNotifier delivers the daily "log your day" nudge.
type PromptNotifier interface {
	NotifyPrompt(ctx context.Context, slackID string) error
}

// Scheduler drives the two recurring jobs in-process: the hourly reminder
// pass and the weekly chart generation.
type Scheduler struct {
	log       *zap.Logger
	generator *Generator
	notifier  PromptNotifier
}

func NewScheduler(log *zap.Logger, generator *Generator, notifier PromptNotifier) *Scheduler {
	return &Scheduler{
		log:       log,
		generator: generator,
		notifier:  notifier,
	}
}

// Start runs the scheduler in a goroutine until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("Starting scheduler...")
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.log.Info("Scheduler stopped")
				return
			case now := <-ticker.C:
				if now.Minute() != 0 {
					continue
				}
				s.runHourly(ctx, now)
			}
		}
	}()
}

func (s *Scheduler) runHourly(ctx context.Context, now time.Time) {
	if err := s.RunReminderPass(ctx); err != nil {
		s.log.Error("Reminder pass failed", zap.Error(err))
	}

	sched := config.Conf.Scheduler
	if int(now.UTC().Weekday()) == sched.ChartsWeekday && now.UTC().Hour() == sched.ChartsHour {
		if err := s.generator.Run(ctx); err != nil {
			s.log.Error("Chart generation run failed", zap.Error(err))
		}
	}
}

// RunReminderPass prompts every user whose local reminder hour is now and who
// has not opted out. One failed notification does not stop the pass.
func (s *Scheduler) RunReminderPass(ctx context.Context) error {
	users, err := repository.UsersToPrompt(ctx)
	if err != nil {
		return err
	}
	s.log.Debug("Running reminder pass", zap.Int("users", len(users)))

	for _, user := range users {
		if err := s.notifier.NotifyPrompt(ctx, user.SlackID); err != nil {
			s.log.Error("Failed to prompt user",
				zap.String("slack_id", user.SlackID),
				zap.Error(err),
			)
		}
	}
	return nil
}
