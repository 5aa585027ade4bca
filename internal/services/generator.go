package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/githubocto/good-day-azure/internal/aggregate"
	"github.com/githubocto/good-day-azure/internal/archive"
	"github.com/githubocto/good-day-azure/internal/charts"
	"github.com/githubocto/good-day-azure/internal/gh"
	"github.com/githubocto/good-day-azure/internal/models"
	"github.com/githubocto/good-day-azure/internal/report"
	"github.com/githubocto/good-day-azure/internal/repository"
	"github.com/githubocto/good-day-azure/internal/survey"
)

// DataPath is where each user's survey CSV lives inside their repository.
const DataPath = "good-day.csv"

// userConcurrency bounds the batch fan-out; per-user pipelines are
// independent, so they only share the API rate limit.
const userConcurrency = 4

// Store is the slice of the repository client the generator needs.
type Store interface {
	FileContent(ctx context.Context, owner, repo, path string) ([]byte, string, error)
	PublishFile(ctx context.Context, owner, repo, path, message string, content []byte) error
}

// SummaryNotifier announces a finished report to the user.
type SummaryNotifier interface {
	NotifySummary(ctx context.Context, slackID string) error
}

// Image is one rendered chart ready to publish.
type Image struct {
	Filename string
	Data     []byte
}

// Generator runs the weekly aggregation for every user: fetch the CSV, filter
// to last week, build and render the charts, publish them with the narrative
// README, then notify.
type Generator struct {
	log      *zap.Logger
	catalog  *survey.Catalog
	store    Store
	renderer charts.Renderer
	notifier SummaryNotifier
	archive  *archive.Archive
	now      func() time.Time
}

func NewGenerator(log *zap.Logger, catalog *survey.Catalog, store Store, renderer charts.Renderer, notifier SummaryNotifier, arch *archive.Archive) *Generator {
	return &Generator{
		log:      log,
		catalog:  catalog,
		store:    store,
		renderer: renderer,
		notifier: notifier,
		archive:  arch,
		now:      time.Now,
	}
}

// Run iterates all registered users. Per-user failures are logged and
// isolated; one broken repository never stops the batch.
func (g *Generator) Run(ctx context.Context) error {
	log := g.log.With(zap.String("run_id", uuid.NewString()))

	users, err := repository.AllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	log.Info("Starting weekly chart generation", zap.Int("users", len(users)))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(userConcurrency)
	for _, user := range users {
		user := user
		grp.Go(func() error {
			if err := g.RunUser(gctx, user); err != nil {
				log.Error("User pipeline failed",
					zap.String("slack_id", user.SlackID),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	grp.Wait()
	log.Info("Weekly chart generation finished")
	return nil
}

// RunUser executes the full pipeline for a single user.
func (g *Generator) RunUser(ctx context.Context, user models.User) error {
	log := g.log.With(zap.String("slack_id", user.SlackID))

	data, _, err := g.store.FileContent(ctx, user.Owner(), user.Repo(), DataPath)
	if errors.Is(err, gh.ErrNotFound) {
		log.Info("No survey data file, skipping user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch survey data: %w", err)
	}

	loc := user.Location()
	rows, err := survey.ParseCSV(data, loc)
	if err != nil {
		return fmt.Errorf("failed to parse survey data: %w", err)
	}

	win := survey.LastWeek(g.now(), loc)
	week := win.Filter(rows)
	if len(week) == 0 {
		log.Info("No days recorded last week, skipping user", zap.Time("week_start", win.Start))
		return nil
	}

	images := g.renderCharts(ctx, log, week, win)
	if len(images) == 0 {
		return fmt.Errorf("no charts could be rendered")
	}

	if err := g.publish(ctx, log, user, win, week, images); err != nil {
		return err
	}

	if err := g.notifier.NotifySummary(ctx, user.SlackID); err != nil {
		return fmt.Errorf("report published but notification failed: %w", err)
	}
	log.Info("Weekly report published", zap.Int("days_logged", len(week)), zap.Int("charts", len(images)))
	return nil
}

// renderCharts builds and renders every chart concurrently, joined before
// publish since the README references all filenames. A failed chart is logged
// and omitted; the rest proceed.
func (g *Generator) renderCharts(ctx context.Context, log *zap.Logger, week []survey.Row, win survey.Window) []Image {
	quality, haveQuality := g.catalog.Question(survey.QualityID)
	if !haveQuality {
		log.Error("Quality question missing from catalog", zap.String("question", survey.QualityID))
	}

	type job struct {
		filename string
		build    func() (charts.Chart, error)
	}

	jobs := []job{
		{
			filename: "time-of-day.png",
			build: func() (charts.Chart, error) {
				most, ok := g.catalog.Question(survey.MostProductiveID)
				if !ok {
					return nil, fmt.Errorf("question %q not in catalog", survey.MostProductiveID)
				}
				least, ok := g.catalog.Question(survey.LeastProductiveID)
				if !ok {
					return nil, fmt.Errorf("question %q not in catalog", survey.LeastProductiveID)
				}
				mostPoints := aggregate.PackColumns(week, win, most)
				leastPoints := aggregate.PackColumns(week, win, least)
				return charts.NewTimeOfDay(win, most, mostPoints, leastPoints), nil
			},
		},
		{
			filename: "amount-of-day.png",
			build: func() (charts.Chart, error) {
				amount := g.catalog.AmountQuestions()
				if len(amount) == 0 {
					return nil, fmt.Errorf("no amount-scale questions in catalog")
				}
				cells := aggregate.BuildGrid(week, win, amount)
				return charts.NewAmountOfDay(win, amount, cells), nil
			},
		},
	}
	for i, q := range g.catalog.Questions {
		q := q
		jobs = append(jobs, job{
			filename: fmt.Sprintf("timeline-%d.png", i),
			build: func() (charts.Chart, error) {
				series := aggregate.BuildTimeline(week, win, q)
				var bands []aggregate.Band
				if haveQuality {
					bands = aggregate.BuildBands(week, win, quality)
				}
				return charts.NewTimeline(win, series, bands, quality), nil
			},
		})
	}

	rendered := make([]Image, len(jobs))
	grp, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		grp.Go(func() error {
			chart, err := j.build()
			if err != nil {
				log.Error("Skipping chart", zap.String("chart", j.filename), zap.Error(err))
				return nil
			}
			png, err := g.renderer.Render(gctx, chart)
			if err != nil {
				log.Error("Failed to render chart", zap.String("chart", j.filename), zap.Error(err))
				return nil
			}
			rendered[i] = Image{Filename: j.filename, Data: png}
			return nil
		})
	}
	grp.Wait()

	images := make([]Image, 0, len(rendered))
	for _, img := range rendered {
		if img.Data != nil {
			images = append(images, img)
		}
	}
	return images
}

// publish writes the chart images and the narrative README. A partial publish
// is accepted as-is: failed image writes are logged and the rest continue, per
// the no-rollback contract.
func (g *Generator) publish(ctx context.Context, log *zap.Logger, user models.User, win survey.Window, week []survey.Row, images []Image) error {
	filenames := make([]string, 0, len(images))
	for _, img := range images {
		if err := g.store.PublishFile(ctx, user.Owner(), user.Repo(), img.Filename, "Update summary visualization", img.Data); err != nil {
			log.Error("Failed to publish chart", zap.String("chart", img.Filename), zap.Error(err))
			continue
		}
		filenames = append(filenames, img.Filename)

		if err := g.archive.Put(ctx, user.SlackID, win, img.Filename, img.Data); err != nil {
			log.Warn("Failed to archive chart", zap.String("chart", img.Filename), zap.Error(err))
		}
	}
	if len(filenames) == 0 {
		return fmt.Errorf("no charts could be published")
	}

	quality, ok := g.catalog.Question(survey.QualityID)
	if !ok {
		return fmt.Errorf("question %q not in catalog", survey.QualityID)
	}
	stats := aggregate.ComputeStats(week, quality)

	readme, err := report.Build(win, stats, filenames)
	if err != nil {
		return err
	}
	if err := g.store.PublishFile(ctx, user.Owner(), user.Repo(), "README.md", "Update README", []byte(readme)); err != nil {
		return fmt.Errorf("failed to publish README: %w", err)
	}
	return nil
}
