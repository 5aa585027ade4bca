package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/charts"
	"github.com/githubocto/good-day-azure/internal/gh"
	"github.com/githubocto/good-day-azure/internal/models"
	"github.com/githubocto/good-day-azure/internal/survey"
)

const generatorCatalogYAML = `
questions:
  - id: workday_quality
    title: "How was your workday?"
    options: ["Terrible", "Bad", "OK", "Good", "Awesome!"]
  - id: worked_with_other_people
    title: "I worked with other people"
    options: ["None of the day", "A little of the day", "Some of the day", "Much of the day", "Most or all of the day"]
  - id: most_productive
    title: "Today, I felt most productive:"
    options: ["In the morning", "Mid-day", "In the afternoon"]
  - id: least_productive
    title: "Today, I felt least productive:"
    options: ["In the morning", "Mid-day", "In the afternoon"]
`

type fakeStore struct {
	mu        sync.Mutex
	csv       []byte
	fetchErr  error
	published map[string][]byte
	pubErr    map[string]error
}

func (f *fakeStore) FileContent(ctx context.Context, owner, repo, path string) ([]byte, string, error) {
	if f.fetchErr != nil {
		return nil, "", f.fetchErr
	}
	return f.csv, "abc123", nil
}

func (f *fakeStore) PublishFile(ctx context.Context, owner, repo, path, message string, content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.pubErr[path]; err != nil {
		return err
	}
	if f.published == nil {
		f.published = make(map[string][]byte)
	}
	f.published[path] = content
	return nil
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeRenderer) Render(ctx context.Context, chart charts.Chart) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("png-%d", f.calls)), nil
}

type fakeNotifier struct {
	notified []string
	err      error
}

func (f *fakeNotifier) NotifySummary(ctx context.Context, slackID string) error {
	f.notified = append(f.notified, slackID)
	return f.err
}

// the week of Sunday Jan 7 2024 is "last week" when now is Jan 17
var generatorNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

const generatorCSV = `date,workday_quality,worked_with_other_people,most_productive,least_productive
2024-01-08,Good,Some of the day,In the morning,In the afternoon
2024-01-09,OK,Much of the day,Mid-day,In the morning
2024-01-10,Awesome!,A little of the day,In the morning,Mid-day
2024-01-16,Bad,None of the day,Mid-day,Mid-day
`

func newTestGenerator(t *testing.T, store *fakeStore, renderer *fakeRenderer, notifier *fakeNotifier) *Generator {
	t.Helper()
	catalog, err := survey.ParseCatalog([]byte(generatorCatalogYAML))
	require.NoError(t, err)

	g := NewGenerator(zap.NewNop(), catalog, store, renderer, notifier, nil)
	g.now = func() time.Time { return generatorNow }
	return g
}

func testUser() models.User {
	return models.User{SlackID: "U123", GithubUser: "octocat", GithubRepo: "good-day-demo", TimeZone: "UTC"}
}

func TestRunUserPublishesChartsAndReadme(t *testing.T) {
	store := &fakeStore{csv: []byte(generatorCSV)}
	renderer := &fakeRenderer{}
	notifier := &fakeNotifier{}
	g := newTestGenerator(t, store, renderer, notifier)

	require.NoError(t, g.RunUser(context.Background(), testUser()))

	// two fixed charts plus one timeline per question
	wantFiles := []string{
		"time-of-day.png", "amount-of-day.png",
		"timeline-0.png", "timeline-1.png", "timeline-2.png", "timeline-3.png",
		"README.md",
	}
	for _, name := range wantFiles {
		assert.Contains(t, store.published, name, "expected %s to be published", name)
	}
	assert.Equal(t, len(wantFiles)-1, renderer.calls)

	readme := string(store.published["README.md"])
	// the Jan 16 row is outside the window, so only three days count
	assert.Contains(t, readme, "You logged 3 days this week.")
	assert.Contains(t, readme, "Week of January 7, 2024")
	assert.Contains(t, readme, "![Image](time-of-day.png)")

	assert.Equal(t, []string{"U123"}, notifier.notified)
}

func TestRunUserSkipsWhenNoDataFile(t *testing.T) {
	store := &fakeStore{fetchErr: gh.ErrNotFound}
	renderer := &fakeRenderer{}
	notifier := &fakeNotifier{}
	g := newTestGenerator(t, store, renderer, notifier)

	require.NoError(t, g.RunUser(context.Background(), testUser()))
	assert.Equal(t, 0, renderer.calls)
	assert.Empty(t, notifier.notified)
}

func TestRunUserSkipsEmptyWeek(t *testing.T) {
	// only rows outside last week's window
	store := &fakeStore{csv: []byte("date,workday_quality\n2023-12-01,Good\n")}
	renderer := &fakeRenderer{}
	notifier := &fakeNotifier{}
	g := newTestGenerator(t, store, renderer, notifier)

	require.NoError(t, g.RunUser(context.Background(), testUser()))
	assert.Equal(t, 0, renderer.calls)
	assert.Empty(t, store.published)
	assert.Empty(t, notifier.notified)
}

func TestRunUserPropagatesFetchErrors(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("rate limited")}
	g := newTestGenerator(t, store, &fakeRenderer{}, &fakeNotifier{})
	assert.Error(t, g.RunUser(context.Background(), testUser()))
}

func TestRunUserFailsWhenNothingRenders(t *testing.T) {
	store := &fakeStore{csv: []byte(generatorCSV)}
	renderer := &fakeRenderer{err: errors.New("chromedp unavailable")}
	notifier := &fakeNotifier{}
	g := newTestGenerator(t, store, renderer, notifier)

	assert.Error(t, g.RunUser(context.Background(), testUser()))
	assert.Empty(t, store.published)
	assert.Empty(t, notifier.notified)
}

func TestRunUserToleratesPartialPublish(t *testing.T) {
	store := &fakeStore{
		csv:    []byte(generatorCSV),
		pubErr: map[string]error{"timeline-1.png": errors.New("422")},
	}
	renderer := &fakeRenderer{}
	notifier := &fakeNotifier{}
	g := newTestGenerator(t, store, renderer, notifier)

	require.NoError(t, g.RunUser(context.Background(), testUser()))

	readme := string(store.published["README.md"])
	assert.NotContains(t, readme, "timeline-1.png")
	assert.Contains(t, readme, "timeline-0.png")
	assert.Equal(t, []string{"U123"}, notifier.notified)
}

func TestRunUserNotifyFailureSurfaces(t *testing.T) {
	store := &fakeStore{csv: []byte(generatorCSV)}
	g := newTestGenerator(t, store, &fakeRenderer{}, &fakeNotifier{err: errors.New("bot down")})

	err := g.RunUser(context.Background(), testUser())
	assert.Error(t, err)
	// the report still landed before the notification failed
	assert.Contains(t, store.published, "README.md")
}
