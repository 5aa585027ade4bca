package gh

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contentsServer fakes the repository contents API: an in-memory file map with
// blob sha checks on writes.
type contentsServer struct {
	mu    sync.Mutex
	files map[string]string // path -> content
	shas  map[string]string // path -> sha
	next  int
}

func newContentsServer() *contentsServer {
	return &contentsServer{files: make(map[string]string), shas: make(map[string]string)}
}

func (s *contentsServer) newSHA() string {
	s.next++
	return fmt.Sprintf("sha-%d", s.next)
}

func (s *contentsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const prefix = "/repos/octocat/good-day-demo/contents/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, prefix)

	switch r.Method {
	case http.MethodGet:
		content, ok := s.files[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "Not Found"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"type":     "file",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(content)),
			"sha":      s.shas[path],
		})
	case http.MethodPut:
		var req struct {
			Content string  `json:"content"`
			SHA     *string `json:"sha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, exists := s.files[path]
		switch {
		case req.SHA == nil && exists:
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"message": "sha required"}`)
			return
		case req.SHA != nil && (!exists || *req.SHA != s.shas[path]):
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"message": "is at a different sha"}`)
			return
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Content)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.files[path] = string(decoded)
		s.shas[path] = s.newSHA()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": map[string]interface{}{"sha": s.shas[path]},
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	api := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	api.BaseURL = base
	return &Client{
		api: api,
		committer: &github.CommitAuthor{
			Name:  github.String("Good Day Bot"),
			Email: github.String("bot@example.com"),
		},
	}
}

func TestFileContentMissingIsErrNotFound(t *testing.T) {
	store := newContentsServer()
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	_, _, err := c.FileContent(context.Background(), "octocat", "good-day-demo", "good-day.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendCSVCreatesFileWithHeader(t *testing.T) {
	store := newContentsServer()
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	err := c.AppendCSV(context.Background(), "octocat", "good-day-demo", "good-day.csv",
		"date,workday_quality", "2024-01-08,Good")
	require.NoError(t, err)
	assert.Equal(t, "date,workday_quality\n2024-01-08,Good\n", store.files["good-day.csv"])
}

func TestAppendCSVAppendsToExistingFile(t *testing.T) {
	store := newContentsServer()
	store.files["good-day.csv"] = "date,workday_quality\n2024-01-08,Good\n"
	store.shas["good-day.csv"] = "sha-0"
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	err := c.AppendCSV(context.Background(), "octocat", "good-day-demo", "good-day.csv",
		"date,workday_quality", "2024-01-09,OK")
	require.NoError(t, err)
	assert.Equal(t, "date,workday_quality\n2024-01-08,Good\n2024-01-09,OK\n", store.files["good-day.csv"])
}

func TestAppendCSVRepairsMissingTrailingNewline(t *testing.T) {
	store := newContentsServer()
	store.files["good-day.csv"] = "date,workday_quality\n2024-01-08,Good"
	store.shas["good-day.csv"] = "sha-0"
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	err := c.AppendCSV(context.Background(), "octocat", "good-day-demo", "good-day.csv",
		"date,workday_quality", "2024-01-09,OK")
	require.NoError(t, err)
	assert.Equal(t, "date,workday_quality\n2024-01-08,Good\n2024-01-09,OK\n", store.files["good-day.csv"])
}

func TestPutFileStaleSHAIsErrConflict(t *testing.T) {
	store := newContentsServer()
	store.files["README.md"] = "old"
	store.shas["README.md"] = "sha-0"
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	_, err := c.PutFile(context.Background(), "octocat", "good-day-demo", "README.md",
		"Update README", []byte("new"), "stale-sha")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "old", store.files["README.md"])
}

func TestPublishFileCreatesThenOverwrites(t *testing.T) {
	store := newContentsServer()
	srv := httptest.NewServer(store)
	defer srv.Close()
	c := newTestClient(t, srv)

	ctx := context.Background()
	require.NoError(t, c.PublishFile(ctx, "octocat", "good-day-demo", "README.md", "Update README", []byte("v1")))
	assert.Equal(t, "v1", store.files["README.md"])

	require.NoError(t, c.PublishFile(ctx, "octocat", "good-day-demo", "README.md", "Update README", []byte("v2")))
	assert.Equal(t, "v2", store.files["README.md"])
}
