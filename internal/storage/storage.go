package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/jagannath-p-s/malabareco-sub001/internal/config"
)

type Storage struct {
	SQL    *sql.DB
	DB     bob.DB
	Reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, err
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened connection pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		SQL:    db,
		DB:     bobDB,
		Reader: NewReader(bobDB),
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.SQL.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.SQL.Close()
}
