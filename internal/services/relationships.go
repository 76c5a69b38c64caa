package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
)

// RelationshipService maintains the directed follow graph. Following
// yourself is allowed; the store's unique constraint is the only guard
// against duplicate edges.
type RelationshipService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewRelationshipService(db *sql.DB, m repomanager.RepositoryManager) *RelationshipService {
	return &RelationshipService{db: db, repos: m}
}

// Follow creates the edge (followerID, followedID). Calling it again for an
// existing edge is a no-op: concurrent follows race on the store's unique
// constraint, and the loser's duplicate is absorbed here.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID int64) error {

	repo := s.repos.Relationships(s.db)

	err := repo.Create(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil
		}
		return fmt.Errorf("error creating follow edge: %w", err)
	}

	return nil
}

// Unfollow removes the edge if present; absent edges are a no-op.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID int64) error {

	repo := s.repos.Relationships(s.db)

	if err := repo.Delete(ctx, followerID, followedID); err != nil {
		return fmt.Errorf("error deleting follow edge: %w", err)
	}

	return nil
}

// IsFollowing reports whether the edge (followerID, followedID) exists.
func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	return s.repos.Relationships(s.db).Exists(ctx, followerID, followedID)
}

// FollowingIDs returns the ids of every user followerID follows.
func (s *RelationshipService) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.repos.Relationships(s.db).FollowingIDs(ctx, userID)
}

// FollowerIDs returns the ids of every user following userID.
func (s *RelationshipService) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.repos.Relationships(s.db).FollowerIDs(ctx, userID)
}
