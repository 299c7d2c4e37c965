package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates an account and signs it in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	if username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrMissingArgument)
	}

	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	r.logger.Info("registering user", "username", username)

	profile, err := ws.users.Register(username, cmd.String("password"), cmd.String("email"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Account created\n")
	return r.writePlain("Signed in as %s\n", profile.Username)
}

// AuthLogin signs in as an existing user.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	if username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrMissingArgument)
	}

	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.users.Login(username, cmd.String("password")); err != nil {
		return err
	}

	r.logger.Info("signed in", "username", username)
	return r.writePlain("✓ Signed in as %s\n", username)
}

// AuthLogout clears the active session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if _, ok := ws.session.Current(); !ok {
		return r.writePlain("No active session\n")
	}

	if err := ws.session.Logout(); err != nil {
		return err
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthWhoami shows the active user's profile.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	profile, ok := ws.users.CurrentProfile()
	if !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	if cmd.Bool("json") {
		// Strip the stored secret from output
		profile.PasswordSecret = ""
		return r.writeJSON(profile, cmd.Bool("pretty"))
	}

	r.writePlain("Signed in as: %s\n", profile.Username)
	if profile.Email != "" {
		r.writePlain("Email: %s\n", profile.Email)
	}
	r.writePlain("Member since: %s\n", profile.JoinedDate.Format("2006-01-02"))
	return r.writePlain("Total points: %d\n", profile.TotalPoints)
}
