package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/repositories/microposts"
	"github.com/dmitrijs2005/microblog/internal/repositories/relationships"
	"github.com/dmitrijs2005/microblog/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Relationships(db dbx.DBTX) relationships.Repository
	Microposts(db dbx.DBTX) microposts.Repository
}
