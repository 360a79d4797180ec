// Package services contains the client-side workflows: authentication,
// catalog browsing, enrollment, profile editing, and achievements. Each
// service is built from an api.Client and a session.Store injected by the
// caller; the session store is the only source of "who is logged in".
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/client/session"
	"github.com/dkalinin/eduhub/internal/logging"
)

// ErrPasswordMismatch is returned by Register before any network call when
// the two password fields differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// AuthService produces and destroys the session.
//
// Contract:
//   - Register creates an account on the server; no session is written.
//   - Login authenticates, fetches the full profile, and persists it as the
//     current session.
//   - Logout clears the session; no network call is made.
//   - CurrentUser reads the session (nil means not logged in).
type AuthService interface {
	Register(ctx context.Context, req api.RegisterRequest) (message string, err error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	if req.Password != req.Password2 {
		return "", ErrPasswordMismatch
	}

	msg, err := a.client.Register(ctx, req)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return msg, nil
}

// Login authenticates and writes the fetched profile into the session store.
// The server call always happens before the store write; a failed login
// leaves the store untouched.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	userID, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user, err := a.client.FetchProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	if err := a.store.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.store.Load(ctx)
}
