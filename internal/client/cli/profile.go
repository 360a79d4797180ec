package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/models"
)

func describePhoto(ref models.PhotoRef) string {
	switch {
	case ref.IsZero():
		return "(no photo)"
	case ref.State == models.PhotoPending:
		return ref.URL + " (preview, not yet confirmed by the server)"
	default:
		return ref.URL
	}
}

// Profile shows the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.profile.View(ctx)
	if errors.Is(err, api.ErrUnauthenticated) {
		a.redirectToLogin(ctx)
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	printlnFn("Username: " + user.Username)
	printlnFn("Email:    " + user.Email)
	printlnFn("Photo:    " + describePhoto(user.ProfilePhoto))
	printlnFn(fmt.Sprintf("Level %d, %d XP", user.Level, user.Experience))
	if user.IsSuperuser {
		printlnFn("Role:     administrator")
	}
	return nil
}

// EditProfile runs one edit cycle: seed a draft from the current user,
// collect changes, then save or cancel. Empty answers keep the current
// values. A failed save keeps the draft so the user can retry with 'edit'.
func (a *App) EditProfile(ctx context.Context) error {
	ed, err := a.profile.NewEditor(ctx)
	if errors.Is(err, api.ErrUnauthenticated) {
		a.redirectToLogin(ctx)
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	current := ed.User()

	username, err := getSimpleText(a.reader, fmt.Sprintf("New username (empty keeps %q)", current.Username), os.Stdout)
	if err != nil {
		return err
	}
	if username != "" {
		ed.SetUsername(username)
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("New email (empty keeps %q)", current.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		ed.SetEmail(email)
	}

	photoPath, err := getSimpleText(a.reader, "Path to new profile photo (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if photoPath != "" {
		ed.SetPhotoPath(photoPath)
	}

	confirm, err := getSimpleText(a.reader, "Save changes? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		ed.Cancel()
		printlnFn("Changes discarded.")
		return nil
	}

	if err := ed.Save(ctx); err != nil {
		reportFailure(err)
		return err
	}

	printlnFn("Profile updated successfully!")
	return nil
}
