package relationships

import "context"

type Repository interface {
	// Create inserts the edge (followerID, followedID). Returns
	// common.ErrorDuplicate when the edge already exists.
	Create(ctx context.Context, followerID, followedID int64) error
	// Delete removes the edge if present; absent edges are a no-op.
	Delete(ctx context.Context, followerID, followedID int64) error
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	FollowerIDs(ctx context.Context, userID int64) ([]int64, error)
}
