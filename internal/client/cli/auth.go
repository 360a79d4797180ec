package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkalinin/eduhub/internal/client/api"
	"github.com/dkalinin/eduhub/internal/client/services"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to the interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register walks the user through the registration form and creates the
// account. Registration does not log the user in; the backend expects a
// separate login afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	password2, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}
	photoPath, err := getSimpleText(a.reader, "Path to profile photo", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.Register(ctx, api.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  password,
		Password2: password2,
		PhotoPath: photoPath,
	})
	if errors.Is(err, services.ErrPasswordMismatch) {
		printlnFn("Passwords do not match.")
		return err
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	printlnFn(msg)
	return nil
}

// Login prompts for credentials, authenticates, and persists the fetched
// profile as the current session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		reportFailure(err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		reportFailure(err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
