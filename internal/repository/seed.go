package repository

import (
	"context"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/utils"
)

// EnsureAdmin guarantees that one admin account exists, creating it with the
// configured credential when no admin is present. Runs once at startup so
// the admin-gated routes are usable on a fresh database (or a fresh memory
// store, which loses the seed on every restart).
func EnsureAdmin(ctx context.Context, users UserStore, username, password string, cost int) error {
	exists, err := users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = users.CreateUser(ctx, username, hash, model.RoleAdmin)
	if err == ErrUsernameExists {
		// The name is taken by a non-admin account; leave it alone rather
		// than promote it.
		return nil
	}
	return err
}
