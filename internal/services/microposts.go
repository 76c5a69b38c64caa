package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
)

type MicropostService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	pageSize int
}

func NewMicropostService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MicropostService {
	return &MicropostService{db: db, repos: m, pageSize: cfg.FeedPageSize}
}

// Create validates p and stores a new post for userID. The creation
// timestamp is assigned by the store.
func (s *MicropostService) Create(ctx context.Context, userID int64, p models.MicropostParams) (*models.Micropost, error) {

	if err := models.Validate(p); err != nil {
		return nil, err
	}

	post := &models.Micropost{
		Content: p.Content,
		UserID:  userID,
	}

	repo := s.repos.Microposts(s.db)

	post, err := repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating micropost: %w", err)
	}

	return post, nil
}

// ByAuthor returns one page of userID's own posts, newest first.
func (s *MicropostService) ByAuthor(ctx context.Context, userID int64, page, pageSize int) ([]models.Micropost, error) {
	limit, offset := pageBounds(page, pageSize, s.pageSize)
	return s.repos.Microposts(s.db).ByAuthor(ctx, userID, limit, offset)
}

// pageBounds converts 1-based page/pageSize into LIMIT/OFFSET, falling back
// to the configured default page size.
func pageBounds(page, pageSize, defaultSize int) (limit, offset int) {
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
