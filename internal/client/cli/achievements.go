package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/api"
)

// Achievements lists the current user's achievements. An empty list is a
// normal state; only a failed fetch is an error.
func (a *App) Achievements(ctx context.Context) error {
	achievements, err := a.achievements.List(ctx)
	if errors.Is(err, api.ErrUnauthenticated) {
		a.redirectToLogin(ctx)
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	if len(achievements) == 0 {
		printlnFn("You have no achievements yet.")
		return nil
	}

	printlnFn("Your achievements:")
	for _, ach := range achievements {
		line := fmt.Sprintf("* %s", ach.Title)
		if !ach.DateEarned.IsZero() {
			line += fmt.Sprintf(" (earned %s)", ach.DateEarned.Format("2006-01-02"))
		}
		printlnFn(line)
		if ach.Description != "" {
			printlnFn("  " + ach.Description)
		}
		if ach.Image != "" {
			printlnFn("  " + ach.Image)
		}
	}
	return nil
}
