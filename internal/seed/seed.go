// Package seed bootstraps an empty database: it creates the collections,
// loads the question catalog and a demo account. Safe to run any number
// of times; both inserts are guarded by emptiness checks.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/tazhibayda/interview-service/internal/domain"
	"github.com/tazhibayda/interview-service/internal/log"
	"github.com/tazhibayda/interview-service/internal/repo"
	"github.com/tazhibayda/interview-service/internal/security"
)

const (
	demoName     = "John Doe"
	demoEmail    = "john@example.com"
	demoPassword = "password123"
)

// Run performs the one-shot bootstrap against the store. Any failure
// aborts the whole run; a partially applied bulk insert is left as-is.
func Run(ctx context.Context, store *repo.Store) error {
	if err := store.EnsureCollections(ctx); err != nil {
		return err
	}
	log.L().Info("seed: collections ensured")

	n, err := store.CountQuestions(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		catalog := Catalog()
		if err := store.InsertQuestions(ctx, catalog); err != nil {
			return err
		}
		log.L().Info("seed: question catalog loaded", zap.Int("count", len(catalog)))
	} else {
		log.L().Info("seed: questions already present", zap.Int64("count", n))
	}

	users, err := store.CountUsers(ctx)
	if err != nil {
		return err
	}
	if users == 0 {
		hash, err := security.HashPassword(demoPassword)
		if err != nil {
			return err
		}
		u := &domain.User{Name: demoName, Email: demoEmail, PasswordHash: hash}
		if err := store.CreateUser(ctx, u); err != nil {
			return err
		}
		log.L().Info("seed: demo account created", zap.String("email", demoEmail))
	} else {
		log.L().Info("seed: users already present", zap.Int64("count", users))
	}

	return nil
}
