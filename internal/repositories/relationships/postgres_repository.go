package relationships

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, followerID, followedID int64) error {

	query :=
		`INSERT INTO relationships (follower_id, followed_id)
         VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorDuplicate
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	query :=
		`DELETE FROM relationships
		 WHERE follower_id = $1 AND followed_id = $2
		 `

	_, err := r.db.ExecContext(ctx, query, followerID, followedID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	query :=
		`SELECT EXISTS (
		    SELECT 1 FROM relationships
		    WHERE follower_id = $1 AND followed_id = $2
		 )`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, followerID, followedID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	query :=
		`SELECT followed_id FROM relationships
		 WHERE follower_id = $1
		 `

	return r.queryIDs(ctx, query, userID)
}

func (r *PostgresRepository) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	query :=
		`SELECT follower_id FROM relationships
		 WHERE followed_id = $1
		 `

	return r.queryIDs(ctx, query, userID)
}

func (r *PostgresRepository) queryIDs(ctx context.Context, query string, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}
