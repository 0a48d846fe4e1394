package cli

import (
	"context"

	"github.com/hackorsnooze/snooze/internal/stories"
)

// List fetches and prints all stories, marking the session's favorites.
func (a *App) List(ctx context.Context) error {
	list, err := stories.FetchAll(ctx, a.api)
	if err != nil {
		a.printErr("Could not load stories: " + err.Error())
		return err
	}
	a.list = list

	for n, s := range list.Stories {
		fav := a.session != nil && a.session.IsFavorite(s.StoryID)
		a.printStory(n+1, s, fav)
	}
	return nil
}

// Mine prints the stories the logged-in user posted.
func (a *App) Mine(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	for n, s := range a.session.OwnStories().Stories {
		a.printStory(n+1, s, a.session.IsFavorite(s.StoryID))
	}
	return nil
}

// Favorites prints the logged-in user's favorite stories.
func (a *App) Favorites(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	for n, s := range a.session.Favorites().Stories {
		a.printStory(n+1, s, true)
	}
	return nil
}
