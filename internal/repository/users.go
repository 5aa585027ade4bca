package repository

import (
	"context"

	"github.com/githubocto/good-day-azure/internal/database"
	"github.com/githubocto/good-day-azure/internal/models"
)

// AllUsers returns every registered user; the weekly batch iterates over them.
func AllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := database.DB.WithContext(ctx).Find(&users).Error
	return users, err
}

// UserBySlackID looks a user up by their Slack identifier.
func UserBySlackID(ctx context.Context, slackID string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "slack_id = ?", slackID)
	return &user, result.Error
}

// UsersToPrompt finds users whose configured prompt hour equals the current
// hour in their own time zone and who have not opted out. The timezone math
// happens in the database so a single pass covers every zone.
func UsersToPrompt(ctx context.Context) ([]models.User, error) {
	var users []models.User
	query := `
	SELECT *
	FROM users
	WHERE extract(hour from now() at time zone time_zone) = extract(hour from to_timestamp(prompt_time, 'HH24:MI'))
	AND NOT unsubscribed IS TRUE
	`
	err := database.DB.WithContext(ctx).Raw(query).Scan(&users).Error
	return users, err
}
