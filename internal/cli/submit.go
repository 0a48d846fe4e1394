package cli

import (
	"context"
	"errors"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/models"
	"github.com/hackorsnooze/snooze/internal/stories"
)

// Submit posts a new story. The created story lands at the top of the
// current list and of the user's own stories without a re-fetch.
func (a *App) Submit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	author, err := GetSimpleText(a.reader, "Author", a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	url, err := GetSimpleText(a.reader, "URL", a.out)
	if err != nil {
		return err
	}

	list, err := a.currentList(ctx)
	if err != nil {
		return err
	}

	draft := models.StoryDraft{Author: author, Title: title, URL: url}
	created, err := list.Add(ctx, a.session, draft)
	if err != nil {
		if errors.Is(err, api.ErrValidation) {
			a.printErr("Story rejected: " + err.Error())
		} else {
			a.printErr("Submit failed: " + err.Error())
		}
		return err
	}

	a.printOK("Story posted with id " + created.StoryID)
	return nil
}

// Delete removes a story by id from the server and from the local caches.
func (a *App) Delete(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}
	storyID, err := a.askStoryID(storyID)
	if err != nil {
		return err
	}

	list, err := a.currentList(ctx)
	if err != nil {
		return err
	}

	if err := list.Remove(ctx, a.session, storyID); err != nil {
		switch {
		case errors.Is(err, api.ErrNotFound):
			a.printErr("No story with id " + storyID)
		case errors.Is(err, api.ErrAuth):
			a.printErr("You can only delete your own stories")
		default:
			a.printErr("Delete failed: " + err.Error())
		}
		return err
	}

	a.printOK("Story deleted")
	return nil
}

// currentList returns the last fetched story list, fetching one when no
// list command has run yet.
func (a *App) currentList(ctx context.Context) (*stories.Collection, error) {
	if a.list != nil {
		return a.list, nil
	}
	list, err := stories.FetchAll(ctx, a.api)
	if err != nil {
		a.printErr("Could not load stories: " + err.Error())
		return nil, err
	}
	a.list = list
	return list, nil
}

func (a *App) askStoryID(storyID string) (string, error) {
	if storyID != "" {
		return storyID, nil
	}
	return GetSimpleText(a.reader, "Story id", a.out)
}
