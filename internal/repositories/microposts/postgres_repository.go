package microposts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Micropost) (*models.Micropost, error) {

	query :=
		`INSERT INTO microposts (content, user_id)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.Content, post.UserID).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// Feed uses a single set-based query: the followed-id subselect keeps the
// statement count independent of how many users the reader follows.
// Ties on created_at break toward the higher id (later insert first).
func (r *PostgresRepository) Feed(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error) {
	query :=
		`SELECT id, content, user_id, created_at FROM microposts
		 WHERE user_id IN (SELECT followed_id FROM relationships WHERE follower_id = $1)
		    OR user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3
		 `

	return r.queryPosts(ctx, query, userID, limit, offset)
}

func (r *PostgresRepository) ByAuthor(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error) {
	query :=
		`SELECT id, content, user_id, created_at FROM microposts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3
		 `

	return r.queryPosts(ctx, query, userID, limit, offset)
}

func (r *PostgresRepository) queryPosts(ctx context.Context, query string, userID int64, limit, offset int) ([]models.Micropost, error) {
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Micropost, 0)
	for rows.Next() {
		var p models.Micropost
		if err := rows.Scan(&p.ID, &p.Content, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return posts, nil
}
