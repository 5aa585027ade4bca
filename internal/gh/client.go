// Package gh wraps the repository contents API: every durable artifact of the
// pipeline (the survey CSV, chart images, the narrative README) lives in the
// user's own repository.
package gh

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

var (
	// ErrNotFound means the path does not exist in the repository yet.
	ErrNotFound = errors.New("file not found in repository")
	// ErrConflict means the version token (blob sha) went stale between read
	// and write; a concurrent writer got there first.
	ErrConflict = errors.New("write conflict: file changed since it was read")
)

// Client talks to the contents API with a fixed committer identity.
type Client struct {
	api       *github.Client
	committer *github.CommitAuthor
}

func NewClient(token, committerName, committerEmail string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &Client{
		api: github.NewClient(tc),
		committer: &github.CommitAuthor{
			Name:  github.String(committerName),
			Email: github.String(committerEmail),
		},
	}
}

// FileContent fetches a file, returning its decoded bytes and the blob sha
// used as the optimistic version token for a later PutFile.
func (c *Client) FileContent(ctx context.Context, owner, repo, path string) ([]byte, string, error) {
	file, _, resp, err := c.api.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to fetch %s/%s/%s: %w", owner, repo, path, err)
	}
	if file == nil {
		return nil, "", fmt.Errorf("path %q is a directory, not a file", path)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []byte(content), file.GetSHA(), nil
}

// PutFile creates or updates a file. Pass the sha from a previous FileContent
// to update; an empty sha creates. Returns the new blob sha.
func (c *Client) PutFile(ctx context.Context, owner, repo, path, message string, content []byte, sha string) (string, error) {
	opts := &github.RepositoryContentFileOptions{
		Message:   github.String(message),
		Content:   content,
		Committer: c.committer,
		Author:    c.committer,
	}

	var (
		res  *github.RepositoryContentResponse
		resp *github.Response
		err  error
	)
	if sha == "" {
		res, resp, err = c.api.Repositories.CreateFile(ctx, owner, repo, path, opts)
	} else {
		opts.SHA = github.String(sha)
		res, resp, err = c.api.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("failed to write %s/%s/%s: %w", owner, repo, path, err)
	}
	return res.GetContent().GetSHA(), nil
}

// PublishFile is PutFile with the sha lookup folded in: reruns of the weekly
// batch overwrite the same fixed filenames, so an existing file is updated in
// place.
func (c *Client) PublishFile(ctx context.Context, owner, repo, path, message string, content []byte) error {
	_, sha, err := c.FileContent(ctx, owner, repo, path)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	_, err = c.PutFile(ctx, owner, repo, path, message, content, sha)
	return err
}

// AppendCSV appends one line to the survey file, creating it with the header
// row when absent. Concurrent appends are not coordinated beyond the sha
// check: a racing writer surfaces as ErrConflict and the caller may retry.
func (c *Client) AppendCSV(ctx context.Context, owner, repo, path, header, line string) error {
	content, sha, err := c.FileContent(ctx, owner, repo, path)
	switch {
	case errors.Is(err, ErrNotFound):
		body := header + "\n" + line + "\n"
		_, err = c.PutFile(ctx, owner, repo, path, "Good Day update", []byte(body), "")
		return err
	case err != nil:
		return err
	}

	body := string(content)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		body += "\n"
	}
	body += line + "\n"
	_, err = c.PutFile(ctx, owner, repo, path, "Good Day update", []byte(body), sha)
	return err
}
