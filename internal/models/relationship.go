package models

import "time"

// Relationship is a directed follow edge: the follower's feed includes the
// followed user's posts. At most one edge may exist per ordered pair; the
// store enforces this with a unique constraint.
type Relationship struct {
	ID         int64
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}
