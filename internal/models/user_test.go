package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOwnerAndRepoFallBackToDemo(t *testing.T) {
	u := User{}
	assert.Equal(t, DefaultOwner, u.Owner())
	assert.Equal(t, DefaultRepo, u.Repo())

	u = User{GithubUser: "octocat", GithubRepo: "my-good-day"}
	assert.Equal(t, "octocat", u.Owner())
	assert.Equal(t, "my-good-day", u.Repo())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, User{}.Location())
	assert.Equal(t, time.UTC, User{TimeZone: "Mars/Olympus_Mons"}.Location())

	loc := User{TimeZone: "America/New_York"}.Location()
	assert.Equal(t, "America/New_York", loc.String())
}
