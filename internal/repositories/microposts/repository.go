package microposts

import (
	"context"

	"github.com/dmitrijs2005/microblog/internal/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Micropost) (*models.Micropost, error)
	// Feed returns posts authored by userID or by anyone userID follows,
	// newest first, bounded by limit/offset.
	Feed(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error)
	// ByAuthor returns posts authored by userID, newest first.
	ByAuthor(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error)
}
