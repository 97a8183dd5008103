// Package migrations applies an ordered list of schema statements to a
// database, tracking how many have already run.
package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"

	"paramtree.dev/paramtree/internal/dbutil"
)

// State is one link in a chain of schema statements. States are built up
// front with ApplyStmt and replayed in order by Migrate.
type State struct {
	prev *State
	stmt string
	n    int
}

func InitialState() *State {
	return &State{}
}

// ApplyStmt returns a new State with stmt appended.
func (s *State) ApplyStmt(stmt string) *State {
	return &State{prev: s, stmt: stmt, n: s.n + 1}
}

func (s *State) stmts() []string {
	out := make([]string, s.n)
	for x := s; x.prev != nil; x = x.prev {
		out[x.n-1] = x.stmt
	}
	return out
}

// Migrate brings db up to the schema described by final. Statements that a
// previous call already applied are skipped.
func Migrate(ctx context.Context, db *sqlx.DB, final *State) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY,
		stmt TEXT NOT NULL
	)`); err != nil {
		return err
	}
	return dbutil.DoTx(ctx, db, func(tx *sqlx.Tx) error {
		var applied int
		if err := tx.Get(&applied, `SELECT COUNT(*) FROM migrations`); err != nil {
			return err
		}
		stmts := final.stmts()
		for i := applied; i < len(stmts); i++ {
			if _, err := tx.Exec(stmts[i]); err != nil {
				return err
			}
			if _, err := tx.Exec(`INSERT INTO migrations (id, stmt) VALUES (?, ?)`, i+1, stmts[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
