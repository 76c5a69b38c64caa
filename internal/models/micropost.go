package models

import "time"

// Micropost is a single post. Immutable after creation; deleted in cascade
// with its author.
type Micropost struct {
	ID        int64
	Content   string
	UserID    int64
	CreatedAt time.Time
}

// MicropostParams carries the input for creating a post.
type MicropostParams struct {
	Content string `validate:"required,max=140"`
}
