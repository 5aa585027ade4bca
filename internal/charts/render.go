package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/snapshot-chromedp/render"
	"github.com/google/uuid"
)

// Chart is the declarative specification side of the renderer boundary; every
// go-echarts chart satisfies it.
type Chart interface {
	RenderContent() []byte
}

// Renderer turns a chart specification into an image. A render failure skips
// that one chart, it never aborts the run.
type Renderer interface {
	Render(ctx context.Context, chart Chart) ([]byte, error)
}

// Snapshot renders charts to PNG through a headless browser.
type Snapshot struct {
	dir string
}

// NewSnapshot returns a renderer writing its scratch files under dir (the OS
// temp dir when empty).
func NewSnapshot(dir string) *Snapshot {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Snapshot{dir: dir}
}

func (s *Snapshot) Render(ctx context.Context, chart Chart) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, uuid.NewString()+".png")
	defer os.Remove(path)

	if err := render.MakeChartSnapshot(chart.RenderContent(), path); err != nil {
		return nil, fmt.Errorf("failed to snapshot chart: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart snapshot: %w", err)
	}
	return data, nil
}
