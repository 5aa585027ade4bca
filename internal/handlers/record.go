package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/githubocto/good-day-azure/internal/gh"
	"github.com/githubocto/good-day-azure/internal/models"
	"github.com/githubocto/good-day-azure/internal/repository"
	"github.com/githubocto/good-day-azure/internal/slack"
	"github.com/githubocto/good-day-azure/internal/survey"
)

// RowAppender is the slice of the repository client the webhook needs.
type RowAppender interface {
	AppendCSV(ctx context.Context, owner, repo, path, header, line string) error
}

// UserLocator resolves a Slack ID to a registered user; the handler only
// needs it for the user's time zone.
type UserLocator func(ctx context.Context, slackID string) (*models.User, error)

// RecordHandler ingests one day's survey submission from the Slack modal and
// appends it to the user's CSV.
type RecordHandler struct {
	log     *zap.Logger
	catalog *survey.Catalog
	store   RowAppender
	locate  UserLocator
	now     func() time.Time
}

func NewRecordHandler(log *zap.Logger, catalog *survey.Catalog, store RowAppender) *RecordHandler {
	return &RecordHandler{
		log:     log,
		catalog: catalog,
		store:   store,
		locate:  repository.UserBySlackID,
		now:     time.Now,
	}
}

type recordRequest struct {
	Owner   string            `json:"owner"`
	Repo    string            `json:"repo"`
	Path    string            `json:"path"`
	UserID  string            `json:"user_id"`
	Payload *slack.Submission `json:"payload"`
}

// RecordDay handles POST /api/record-day.
func (h *RecordHandler) RecordDay(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind record-day request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}
	if req.Owner == "" || req.Repo == "" || req.Path == "" || req.UserID == "" || req.Payload == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "owner, repo, path, user_id and payload are required"})
		return
	}

	// intermediate select interactions also hit the webhook; only the final
	// button press records a row
	if len(req.Payload.Actions) > 0 && !slack.IsRecordSubmit(*req.Payload) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	answers := slack.ParseSubmission(*req.Payload)

	loc := time.UTC
	if user, err := h.locate(c.Request.Context(), req.UserID); err == nil {
		loc = user.Location()
	} else {
		h.log.Warn("Unknown user on record-day, falling back to UTC",
			zap.String("user_id", req.UserID), zap.Error(err))
	}
	date := h.now().In(loc)

	header := survey.CSVHeader(h.catalog)
	line := survey.CSVLine(h.catalog, date, answers)
	if err := h.store.AppendCSV(c.Request.Context(), req.Owner, req.Repo, req.Path, header, line); err != nil {
		if errors.Is(err, gh.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "concurrent update, retry"})
			return
		}
		h.log.Error("Failed to append survey row",
			zap.String("owner", req.Owner),
			zap.String("repo", req.Repo),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to record day"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}
