package cli

import (
	"context"
	"errors"

	"github.com/dkalinin/eduhub/internal/client/api"
)

const (
	fallbackMessage    = "Something went wrong. Please try again."
	unavailableMessage = "Could not reach the server. Please try again later."
)

// reportFailure prints a user-facing explanation for err: the generic
// transport message for an unreachable server, otherwise the server's own
// message when there is one. Unauthenticated conditions are not handled
// here; callers redirect to login instead.
func reportFailure(err error) {
	if errors.Is(err, api.ErrUnavailable) {
		printlnFn(unavailableMessage)
		return
	}
	printlnFn(api.ServerMessage(err, fallbackMessage))
}

// redirectToLogin is the CLI's navigation side-effect for operations that
// found no session: drop the user into the login prompt.
func (a *App) redirectToLogin(ctx context.Context) {
	printlnFn("You need to log in first.")
	_ = a.Login(ctx)
}
