package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/config"
	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/session"
	"github.com/hackorsnooze/snooze/internal/stories"
	"github.com/hackorsnooze/snooze/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the API client, the local session store, and the current
// session together for the REPL. list is the most recently fetched story
// collection; commands that need one fetch it lazily.
type App struct {
	config  *config.Config
	api     api.API
	store   store.Repository
	db      *sql.DB
	log     logging.Logger
	session *session.Session
	list    *stories.Collection
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing session database", "err", err)
		return nil, err
	}

	return &App{
		config: cfg,
		api:    api.NewClient(cfg.BaseURL, cfg.RequestTimeout, log),
		store:  store.NewSQLiteRepository(db),
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.resume(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "anonymous"
	}
	return a.session.Username()
}

// resume tries to restore the previous session from the local store. A
// rejected token is forgotten so the next start does not retry it; any
// other failure just leaves the user logged out.
func (a *App) resume(ctx context.Context) {
	username, err := a.store.Get(ctx, store.KeyUsername)
	if err != nil {
		a.log.Warn(ctx, "reading saved session", "err", err)
		return
	}
	token, err := a.store.Get(ctx, store.KeyToken)
	if err != nil {
		a.log.Warn(ctx, "reading saved session", "err", err)
		return
	}

	s, err := session.Resume(ctx, a.api, token, username)
	if err != nil {
		if errors.Is(err, api.ErrAuth) {
			_ = a.store.Clear(ctx)
			a.printErr("Saved session expired, please log in again")
		} else {
			a.printErr("Could not resume session: " + err.Error())
		}
		return
	}
	if s != nil {
		a.session = s
		a.printOK("Welcome back, " + s.Name())
	}
}

// saveSession persists the resume credentials for the current session.
func (a *App) saveSession(ctx context.Context) {
	if err := a.store.Set(ctx, store.KeyUsername, a.session.Username()); err != nil {
		a.log.Warn(ctx, "saving session", "err", err)
		return
	}
	if err := a.store.Set(ctx, store.KeyToken, a.session.AuthToken()); err != nil {
		a.log.Warn(ctx, "saving session", "err", err)
	}
}
