package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/showcase/internal/app"
	"github.com/dmitrijs2005/showcase/internal/config"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/repositories/records"
	"github.com/dmitrijs2005/showcase/internal/services"
	"github.com/dmitrijs2005/showcase/internal/store"
	"github.com/dmitrijs2005/showcase/internal/wizard"

	_ "modernc.org/sqlite"
)

// App is the interactive CLI shell around the core controller.
type App struct {
	config     *config.Config
	controller *app.Controller
	reader     *bufio.Reader
	log        logging.Logger
}

// NewApp opens the local record store, runs the startup migration, restores
// a persisted session, and returns a ready-to-run App.
func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewDefault(c.LogLevel)

	db, err := store.OpenDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	st := store.New(records.NewSQLiteRepository(db), logger)
	sessions := services.NewSessionService(st, c.AvatarBaseURL)
	moderation := services.NewModerationService(db, logger)

	ctrl := app.New(st, sessions, moderation, logger)
	if err := ctrl.Init(ctx); err != nil {
		return nil, err
	}

	a := &App{config: c, controller: ctrl, reader: bufio.NewReader(os.Stdin), log: logger}

	// Re-render the progress strip whenever the core accepts an action.
	ctrl.Subscribe(a.renderProgress)

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.User() != nil
}

func (a *App) isAdmin() bool {
	u := a.controller.User()
	return u != nil && u.IsAdmin()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.controller.User(); u != nil {
		s = u.Username
		if u.IsAdmin() {
			s += " admin"
		}
	}
	if step := a.controller.Wizard().Step(); step > wizard.StepIdle {
		if s != "" {
			s += " "
		}
		s += "building"
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
