package main

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

func handleAdmin(ctx context.Context, deps seedDeps, flags *seedFlags) error {
	cfg := deps.Config
	username, password := *flags.Admin.username, *flags.Admin.password
	if username == "" {
		username = cfg.Auth.AdminUsername
	}
	if password == "" {
		password = cfg.Auth.AdminPassword
	}
	if password == "" {
		return errors.New("an admin password is required, pass -password or set auth.adminPassword")
	}

	created, err := deps.AuthUC.SeedAdmin(ctx, username, password)
	if err != nil {
		return err
	}

	if !created {
		deps.Logger.Info("Admin account already exists", slog.String("username", username))

		return nil
	}

	deps.Logger.Info("Admin account created", slog.String("username", username))

	return nil
}
