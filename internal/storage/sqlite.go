package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
		"key" TEXT PRIMARY KEY,
		"value" TEXT NOT NULL,
		"updated_at" DATETIME NOT NULL
);`

const upsertKV = `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore keeps keys in a single sqlite table.
type SQLStore struct {
	db     *sql.DB
	mu     sync.Mutex
	events broadcaster
}

// OpenSQLite opens (and creates) the database file at path.
func OpenSQLite(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to open database: %w", err)
	}
	// sqlite serializes writers anyway, and ":memory:" is per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to connect to database: %w", err)
	}
	store, err := NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("OpenSQLite(): opened %s", path)
	return store, nil
}

// NewSQLStore wraps an open database and creates the kv table if needed.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(createKVTable); err != nil {
		return nil, fmt.Errorf("NewSQLStore(): failed to create kv table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func getValue(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	return getValue(ctx, s.db, key)
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	stmt, err := s.db.PrepareContext(ctx, upsertKV)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, key, value, time.Now().UTC()); err != nil {
		return err
	}
	s.events.publish(newEvent(key, OpSet))
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return err
	}
	s.events.publish(newEvent(key, OpRemove))
	return nil
}

func (s *SQLStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	current, ok, err := getValue(ctx, tx, key)
	if err != nil {
		return err
	}
	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsertKV, key, next, time.Now().UTC()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.events.publish(newEvent(key, OpSet))
	return nil
}

func (s *SQLStore) Subscribe(ctx context.Context) <-chan Event {
	return s.events.subscribe(ctx)
}

func (s *SQLStore) Close() error {
	s.events.close()
	return s.db.Close()
}
