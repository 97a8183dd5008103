package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"paramtree.dev/paramtree/internal/dbutil"
	"paramtree.dev/paramtree/internal/migrations"
)

func TestMigrate(t *testing.T) {
	t.Parallel()
	ctx := context.TODO()
	db := dbutil.NewTestDB(t)

	x := migrations.InitialState().
		ApplyStmt(`CREATE TABLE a (id INTEGER PRIMARY KEY)`).
		ApplyStmt(`CREATE TABLE b (id INTEGER PRIMARY KEY)`)
	require.NoError(t, migrations.Migrate(ctx, db, x))

	// applying the same state again is a no-op
	require.NoError(t, migrations.Migrate(ctx, db, x))

	// extending the state only applies the new statement
	x = x.ApplyStmt(`CREATE TABLE c (id INTEGER PRIMARY KEY)`)
	require.NoError(t, migrations.Migrate(ctx, db, x))

	_, err := db.Exec(`INSERT INTO c (id) VALUES (1)`)
	require.NoError(t, err)
}
