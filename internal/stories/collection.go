// Package stories holds the client-side cache of story lists and the
// operations that keep it consistent with the server.
package stories

import (
	"context"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/models"
)

// Poster supplies what a mutating collection operation needs from the
// authenticated actor: the credential for the call and the actor's
// own-stories cache, which mirrors every add and remove. The session type
// satisfies this.
type Poster interface {
	AuthToken() string
	OwnStories() *Collection
}

// Collection is an ordered story list tied to the transport it was loaded
// from. Order follows the server, except that a freshly created story is
// prepended locally from the server's echo instead of re-fetching.
type Collection struct {
	api     api.API
	Stories []models.Story
}

// New wraps an already-decoded story list.
func New(a api.API, ss []models.Story) *Collection {
	return &Collection{api: a, Stories: ss}
}

// FetchAll reads every story from the service. No authentication.
func FetchAll(ctx context.Context, a api.API) (*Collection, error) {
	ss, err := a.ListStories(ctx)
	if err != nil {
		return nil, err
	}
	return New(a, ss), nil
}

// Add submits the draft as the poster and, on success, prepends the
// server's echoed story both here and to the poster's own stories. Neither
// list is re-fetched; the echo is authoritative.
func (c *Collection) Add(ctx context.Context, p Poster, draft models.StoryDraft) (models.Story, error) {
	created, err := c.api.CreateStory(ctx, p.AuthToken(), draft)
	if err != nil {
		return models.Story{}, err
	}
	prepend(created, c, p.OwnStories())
	return created, nil
}

// Remove deletes the story by id as the poster and drops it both here and
// from the poster's own stories. The local drop is a no-op for an id that
// is already absent; a repeated server delete surfaces api.ErrNotFound.
func (c *Collection) Remove(ctx context.Context, p Poster, storyID string) error {
	if err := c.api.DeleteStory(ctx, p.AuthToken(), storyID); err != nil {
		return err
	}
	drop(storyID, c, p.OwnStories())
	return nil
}

// Contains reports whether a story with the given id is in the collection.
func (c *Collection) Contains(storyID string) bool {
	for _, s := range c.Stories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// prepend and drop apply one cache mutation to every collection that views
// the story, so the copies cannot drift. Nil and repeated collections are
// skipped; the latter matters when a collection is removed from itself.

func prepend(s models.Story, cs ...*Collection) {
	seen := make(map[*Collection]bool, len(cs))
	for _, c := range cs {
		if c == nil || seen[c] {
			continue
		}
		seen[c] = true
		c.Stories = append([]models.Story{s}, c.Stories...)
	}
}

func drop(storyID string, cs ...*Collection) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		kept := c.Stories[:0]
		for _, s := range c.Stories {
			if s.StoryID != storyID {
				kept = append(kept, s)
			}
		}
		c.Stories = kept
	}
}
