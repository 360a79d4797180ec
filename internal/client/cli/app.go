// Package cli is the terminal front end: a REPL whose commands are the
// application's views. Views never talk to each other about who is logged
// in; they all go through the session store via the services layer.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/config"
	"github.com/dkalinin/eduhub/internal/client/services"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"

	_ "github.com/mattn/go-sqlite3"
)

// App wires the services together and carries the interactive state.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	auth         services.AuthService
	catalog      services.CatalogService
	enrollment   services.EnrollmentService
	profile      services.ProfileService
	achievements services.AchievementsService

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, log)

	return &App{
		config:       c,
		log:          log,
		db:           db,
		auth:         services.NewAuthService(apiClient, store, log),
		catalog:      services.NewCatalogService(apiClient, store, log),
		enrollment:   services.NewEnrollmentService(apiClient, store, log),
		profile:      services.NewProfileService(apiClient, store, c.PhotoCacheDir, log),
		achievements: services.NewAchievementsService(apiClient, store, log),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// isLoggedIn reads the session store; it is never cached so a stale view
// cannot disagree with the store.
func (a *App) isLoggedIn(ctx context.Context) bool {
	user, err := a.auth.CurrentUser(ctx)
	return err == nil && user != nil
}

func (a *App) statusLine(ctx context.Context) string {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		return "guest"
	}
	return user.Username
}

// Run starts the interactive loop, reading commands through readline with
// persistent history.
func (a *App) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     ".eduhub_history",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	runREPL(ctx, a, func() string { return a.statusLine(ctx) }, &readlineSource{rl: rl})
	return nil
}

// readlineSource adapts a readline instance to the REPL's line reader.
type readlineSource struct {
	rl *readline.Instance
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}
