package paramstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"paramtree.dev/paramtree/internal/dbutil"
	"paramtree.dev/paramtree/internal/migrations"
)

func OpenDB(p string) (*sqlx.DB, error) {
	return dbutil.Open(p)
}

func SetupDB(ctx context.Context, db *sqlx.DB) error {
	return migrations.Migrate(ctx, db, currentSchema)
}

var currentSchema = func() *migrations.State {
	x := migrations.InitialState()
	x = x.ApplyStmt(`CREATE TABLE param_trees (
		name TEXT NOT NULL,
		fp BLOB NOT NULL,
		json TEXT NOT NULL,
		dump TEXT NOT NULL,
		created_s INTEGER NOT NULL,
		created_ns INTEGER NOT NULL,

		PRIMARY KEY(name)
	)`)
	return x
}()
