// Package services contains the application services of the microblog core:
// registration and credential checks, persistent sessions, the follow graph,
// micropost creation, and feed assembly. Services are stateless; all state
// lives in the backing store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/password"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
)

type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher *password.Hasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:     db,
		repos:  m,
		hasher: password.NewHasher(cfg.BcryptCost),
	}
}

// Register validates p, digests the password and creates the user. Emails
// are stored lowercased; a store-level uniqueness violation comes back as a
// field-scoped validation error on email.
func (s *UserService) Register(ctx context.Context, p models.RegisterParams) (*models.User, error) {

	if err := models.Validate(p); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Digest(p.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:           p.Name,
		Email:          strings.ToLower(p.Email),
		PasswordDigest: digest,
	}

	repo := s.repos.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil, models.NewValidationError("email", "has already been taken")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate returns the user matching email and pass. Unknown email and
// wrong password both yield common.ErrorUnauthorized; callers cannot tell
// the two apart.
func (s *UserService) Authenticate(ctx context.Context, email, pass string) (*models.User, error) {

	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if user.PasswordDigest == "" || !s.hasher.Verify(pass, user.PasswordDigest) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID loads a user by id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repos.Users(s.db).GetByID(ctx, id)
}
