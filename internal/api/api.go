// Package api is the HTTP transport for the Hack or Snooze service. It
// exposes one typed method per endpoint behind the API interface, decodes
// the response envelopes, and classifies failures (see errors.go).
//
// Authentication follows the service's wire contract: the token travels in
// the query string for GET requests and in the JSON body for POST/DELETE.
package api

import (
	"context"

	"github.com/hackorsnooze/snooze/internal/models"
)

// API lists the remote operations the client consumes. The concrete
// implementation is Client; tests substitute fakes.
type API interface {
	// ListStories reads all stories. No authentication.
	ListStories(ctx context.Context) ([]models.Story, error)

	// CreateStory submits a draft and returns the server's authoritative
	// Story (id, username, and timestamps filled in).
	CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error)

	// DeleteStory removes a story by id. Ownership is enforced server-side.
	DeleteStory(ctx context.Context, token, storyID string) error

	// SignUp creates an account and returns the fresh profile plus the
	// newly issued token.
	SignUp(ctx context.Context, username, password, name string) (models.User, string, error)

	// LogIn checks credentials and returns the profile (with favorites and
	// own stories embedded) plus a token.
	LogIn(ctx context.Context, username, password string) (models.User, string, error)

	// GetUser reads a profile, favorites and own stories included. The
	// response carries no token.
	GetUser(ctx context.Context, token, username string) (models.User, error)

	// AddFavorite marks a story as a favorite of the named user.
	AddFavorite(ctx context.Context, token, username, storyID string) error

	// RemoveFavorite unmarks a story as a favorite of the named user.
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
