package cli

import (
	"context"
	"errors"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/session"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	s, err := session.LogIn(ctx, a.api, username, password)
	if err != nil {
		if errors.Is(err, api.ErrAuth) {
			a.printErr("Wrong username or password")
		} else {
			a.printErr("Login failed: " + err.Error())
		}
		return err
	}

	a.session = s
	a.saveSession(ctx)
	a.printOK("Logged in as " + s.Username())
	return nil
}

func (a *App) Signup(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Pick a username", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter your display name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	s, err := session.SignUp(ctx, a.api, username, password, name)
	if err != nil {
		if errors.Is(err, api.ErrValidation) {
			a.printErr("Signup rejected: " + err.Error())
		} else {
			a.printErr("Signup failed: " + err.Error())
		}
		return err
	}

	a.session = s
	a.saveSession(ctx)
	a.printOK("Account created, logged in as " + s.Username())
	return nil
}

// Logout discards the session and forgets the saved credentials. There is
// no logout endpoint; the token simply stops being used.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printErr("Not logged in")
		return nil
	}
	a.session = nil
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "clearing saved session", "err", err)
	}
	a.printOK("Logged out")
	return nil
}

// requireLogin reports (and returns false) when no session is active.
func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		a.printErr("You need to log in first")
		return false
	}
	return true
}
