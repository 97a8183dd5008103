// Package paramstore archives parameter trees in sqlite, keyed by name.
//
// Writes store the tree's serialized projections (strict JSON and the human
// dump) together with a content fingerprint. Reads return the stored bytes;
// nothing here reconstructs a tree from text.
package paramstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.brendoncarroll.net/tai64"
	"go.uber.org/zap"

	"paramtree.dev/paramtree"
	"paramtree.dev/paramtree/internal/dbutil"
	"paramtree.dev/paramtree/params"
)

// cacheSize bounds the number of JSON projections kept in memory.
const cacheSize = 128

type Store struct {
	db    *sqlx.DB
	cache *simplelru.LRU[string, []byte]
}

func New(db *sqlx.DB) *Store {
	cache, err := simplelru.NewLRU[string, []byte](cacheSize, nil)
	if err != nil {
		panic(err)
	}
	return &Store{db: db, cache: cache}
}

type ErrNotExist struct {
	Name string
}

func (e ErrNotExist) Error() string {
	return fmt.Sprintf("no parameter tree named %q", e.Name)
}

// Entry is one archived tree.
type Entry struct {
	Name      string `db:"name"`
	FP        []byte `db:"fp"`
	CreatedS  int64  `db:"created_s"`
	CreatedNS int64  `db:"created_ns"`
}

// Put archives b under name, replacing any previous tree with that name.
// It returns the fingerprint of the stored projection.
func (s *Store) Put(ctx context.Context, name string, b *params.Block) (paramtree.CID, error) {
	jsonData := b.DumpJSON()
	dump := b.DumpString()
	fp := paramtree.Hash(nil, jsonData)
	ts := tai64.Now()
	err := dbutil.DoTx(ctx, s.db, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(`INSERT INTO param_trees (name, fp, json, dump, created_s, created_ns)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET fp=excluded.fp, json=excluded.json,
				dump=excluded.dump, created_s=excluded.created_s, created_ns=excluded.created_ns`,
			name, fp[:], string(jsonData), dump, int64(ts.Seconds), int64(ts.Nanoseconds))
		return err
	})
	if err != nil {
		return paramtree.CID{}, err
	}
	s.cache.Remove(name)
	logctx.Debug(ctx, "archived parameter tree", zap.String("name", name), zap.String("fp", fp.String()))
	return fp, nil
}

// GetJSON returns the stored JSON projection for name.
func (s *Store) GetJSON(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return data, nil
	}
	var data []byte
	if err := s.db.GetContext(ctx, &data, `SELECT json FROM param_trees WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotExist{Name: name}
		}
		return nil, err
	}
	s.cache.Add(name, data)
	return data, nil
}

// GetDump returns the stored human-readable dump for name.
func (s *Store) GetDump(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	if err := s.db.GetContext(ctx, &data, `SELECT dump FROM param_trees WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotExist{Name: name}
		}
		return nil, err
	}
	return data, nil
}

// Get returns the entry for name without its projections.
func (s *Store) Get(ctx context.Context, name string) (*Entry, error) {
	var ent Entry
	if err := s.db.GetContext(ctx, &ent, `SELECT name, fp, created_s, created_ns FROM param_trees WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotExist{Name: name}
		}
		return nil, err
	}
	return &ent, nil
}

// List returns all entries ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var ents []Entry
	if err := s.db.SelectContext(ctx, &ents, `SELECT name, fp, created_s, created_ns FROM param_trees ORDER BY name`); err != nil {
		return nil, err
	}
	return ents, nil
}

// Delete removes the entry for name. Deleting a missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM param_trees WHERE name = ?`, name); err != nil {
		return err
	}
	s.cache.Remove(name)
	return nil
}

// Names lists the archived tree names, for serving.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, `SELECT name FROM param_trees ORDER BY name`); err != nil {
		return nil, err
	}
	return names, nil
}
