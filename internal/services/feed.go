package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
)

// FeedService assembles a user's timeline: their own posts plus posts from
// everyone they follow, newest first. Purely a read path; every call
// recomputes against the store, so a feed may reflect an edge created a
// moment earlier without further coordination.
type FeedService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	pageSize int
}

func NewFeedService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *FeedService {
	return &FeedService{db: db, repos: m, pageSize: cfg.FeedPageSize}
}

// Feed returns one page of userID's timeline. page is 1-based; pageSize <= 0
// falls back to the configured default. Ordering is always created_at
// descending, later insert first on ties.
func (s *FeedService) Feed(ctx context.Context, userID int64, page, pageSize int) ([]models.Micropost, error) {

	limit, offset := pageBounds(page, pageSize, s.pageSize)

	repo := s.repos.Microposts(s.db)

	posts, err := repo.Feed(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error assembling feed: %w", err)
	}

	return posts, nil
}
