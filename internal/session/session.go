// Package session models the authenticated actor: profile fields, the auth
// token issued at signup/login, and the two cached story lists (favorites
// and own stories) that must track the server after every mutating call.
package session

import (
	"context"
	"time"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/models"
	"github.com/hackorsnooze/snooze/internal/stories"
)

// Session is one authenticated actor. All fields are unexported: the
// username and token are fixed for the session's lifetime, and the mutable
// fields only change through Refresh so the caches cannot be half-updated.
//
// A Session is not safe for concurrent mutation; callers invoking mutating
// operations from multiple goroutines must serialize them.
type Session struct {
	api api.API

	username  string
	name      string
	createdAt time.Time
	updatedAt time.Time

	// Opaque credential. Never logged, never parsed.
	token string

	favorites  *stories.Collection
	ownStories *stories.Collection
}

// SignUp creates an account. The signup response carries no story lists, so
// both caches start empty.
func SignUp(ctx context.Context, a api.API, username, password, name string) (*Session, error) {
	user, token, err := a.SignUp(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	s := fromUser(a, user, token)
	return s, nil
}

// LogIn authenticates with credentials. Favorites and own stories come
// fully populated from the embedded user record.
func LogIn(ctx context.Context, a api.API, username, password string) (*Session, error) {
	user, token, err := a.LogIn(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return fromUser(a, user, token), nil
}

// Resume rebuilds a session from a previously issued token, e.g. one saved
// across restarts. An empty token or username returns (nil, nil) without
// touching the transport; that is the caller's signal to log in afresh,
// not an error. The profile read does not reissue the token, so the
// supplied one is reattached.
func Resume(ctx context.Context, a api.API, token, username string) (*Session, error) {
	if token == "" || username == "" {
		return nil, nil
	}
	user, err := a.GetUser(ctx, token, username)
	if err != nil {
		return nil, err
	}
	return fromUser(a, user, token), nil
}

// fromUser assembles a Session from a decoded profile and a token.
func fromUser(a api.API, user models.User, token string) *Session {
	return &Session{
		api:        a,
		username:   user.Username,
		name:       user.Name,
		createdAt:  user.CreatedAt,
		updatedAt:  user.UpdatedAt,
		token:      token,
		favorites:  stories.New(a, user.Favorites),
		ownStories: stories.New(a, user.OwnStories),
	}
}

func (s *Session) Username() string     { return s.username }
func (s *Session) Name() string         { return s.name }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// AuthToken returns the opaque credential. Together with OwnStories it
// satisfies stories.Poster.
func (s *Session) AuthToken() string { return s.token }

// Favorites is the cached list of the actor's favorite stories.
func (s *Session) Favorites() *stories.Collection { return s.favorites }

// OwnStories is the cached list of stories the actor posted.
func (s *Session) OwnStories() *stories.Collection { return s.ownStories }

// AddFavorite marks the story as a favorite, then reloads the whole
// session state. The full refresh trades one extra round trip for caches
// that are correct by construction.
func (s *Session) AddFavorite(ctx context.Context, storyID string) error {
	if err := s.api.AddFavorite(ctx, s.token, s.username, storyID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// RemoveFavorite unmarks the story as a favorite, then reloads, same as
// AddFavorite.
func (s *Session) RemoveFavorite(ctx context.Context, storyID string) error {
	if err := s.api.RemoveFavorite(ctx, s.token, s.username, storyID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// IsFavorite reports whether the story id is in the cached favorites.
func (s *Session) IsFavorite(storyID string) bool {
	return s.favorites.Contains(storyID)
}

// Refresh reloads the profile and both story lists from the server. The
// response is decoded in full before any field is assigned, so a failed
// reload leaves the session exactly as it was. The token is not reissued
// by the profile read and never changes here.
func (s *Session) Refresh(ctx context.Context) error {
	user, err := s.api.GetUser(ctx, s.token, s.username)
	if err != nil {
		return err
	}
	s.name = user.Name
	s.createdAt = user.CreatedAt
	s.updatedAt = user.UpdatedAt
	s.favorites = stories.New(s.api, user.Favorites)
	s.ownStories = stories.New(s.api, user.OwnStories)
	return nil
}
