package models

import "time"

// fallbacks matching the demo repository the project ships with
const (
	DefaultOwner = "githubocto"
	DefaultRepo  = "good-day-demo"
)

// User is one registered survey participant: where their CSV lives, which
// Slack account to notify, and when to prompt them in their own time zone.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	SlackID      string `gorm:"uniqueIndex"`
	GithubUser   string
	GithubRepo   string
	TimeZone     string
	PromptTime   string // "HH:MM", local to TimeZone
	Unsubscribed bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Owner is the repository owner, falling back to the demo org.
func (u User) Owner() string {
	if u.GithubUser != "" {
		return u.GithubUser
	}
	return DefaultOwner
}

// Repo is the repository name, falling back to the demo repo.
func (u User) Repo() string {
	if u.GithubRepo != "" {
		return u.GithubRepo
	}
	return DefaultRepo
}

// Location resolves the user's time zone, UTC when unset or invalid.
func (u User) Location() *time.Location {
	loc, err := time.LoadLocation(u.TimeZone)
	if err != nil || u.TimeZone == "" {
		return time.UTC
	}
	return loc
}
