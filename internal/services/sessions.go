package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/password"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
	"github.com/dmitrijs2005/microblog/internal/token"
)

// SessionService issues and verifies the long-lived "remember me" tokens.
// Only a bcrypt digest of a token is persisted; the plaintext is returned
// once and the caller is responsible for handing it to the client.
type SessionService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher *password.Hasher
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:     db,
		repos:  m,
		hasher: password.NewHasher(cfg.BcryptCost),
	}
}

// Remember generates a fresh token, persists its digest on the user and
// returns the plaintext. Any previously issued token stops verifying.
func (s *SessionService) Remember(ctx context.Context, user *models.User) (string, error) {

	tok, err := token.New()
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	digest, err := s.hasher.Digest(tok)
	if err != nil {
		return "", fmt.Errorf("error hashing token: %w", err)
	}

	repo := s.repos.Users(s.db)

	if err := repo.UpdateRememberDigest(ctx, user.ID, &digest); err != nil {
		return "", fmt.Errorf("error storing remember digest: %w", err)
	}

	user.RememberDigest = &digest

	return tok, nil
}

// Authenticated reports whether tok matches the user's stored remember
// digest. A user without an active persistent session always fails.
func (s *SessionService) Authenticated(user *models.User, tok string) bool {
	if user == nil || user.RememberDigest == nil {
		return false
	}
	return s.hasher.Verify(tok, *user.RememberDigest)
}

// Forget clears the remember digest, invalidating any outstanding token.
func (s *SessionService) Forget(ctx context.Context, user *models.User) error {

	repo := s.repos.Users(s.db)

	if err := repo.UpdateRememberDigest(ctx, user.ID, nil); err != nil {
		return fmt.Errorf("error clearing remember digest: %w", err)
	}

	user.RememberDigest = nil

	return nil
}
