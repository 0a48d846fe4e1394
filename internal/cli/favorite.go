package cli

import (
	"context"
	"errors"

	"github.com/hackorsnooze/snooze/internal/api"
)

func (a *App) Fav(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}
	storyID, err := a.askStoryID(storyID)
	if err != nil {
		return err
	}

	if err := a.session.AddFavorite(ctx, storyID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			a.printErr("No story with id " + storyID)
		} else {
			a.printErr("Could not add favorite: " + err.Error())
		}
		return err
	}

	a.printOK("Added to favorites")
	return nil
}

func (a *App) Unfav(ctx context.Context, storyID string) error {
	if !a.requireLogin() {
		return nil
	}
	storyID, err := a.askStoryID(storyID)
	if err != nil {
		return err
	}

	if err := a.session.RemoveFavorite(ctx, storyID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			a.printErr("No story with id " + storyID)
		} else {
			a.printErr("Could not remove favorite: " + err.Error())
		}
		return err
	}

	a.printOK("Removed from favorites")
	return nil
}
