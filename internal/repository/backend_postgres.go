package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresBackend stores the document as one row of lms_documents.
type PostgresBackend struct {
	db  *sqlx.DB
	key string
}

// NewPostgresBackend binds the backend to the row identified by key.
func NewPostgresBackend(db *sqlx.DB, key string) *PostgresBackend {
	return &PostgresBackend{db: db, key: key}
}

func (b *PostgresBackend) Read(ctx context.Context) ([]byte, bool, error) {
	const query = `SELECT body FROM lms_documents WHERE key = $1`
	var body []byte
	if err := b.db.GetContext(ctx, &body, query, b.key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select document %s: %w", b.key, err)
	}
	return body, true, nil
}

func (b *PostgresBackend) Write(ctx context.Context, data []byte) error {
	const query = `INSERT INTO lms_documents (key, body, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`
	if _, err := b.db.ExecContext(ctx, query, b.key, data); err != nil {
		return fmt.Errorf("upsert document %s: %w", b.key, err)
	}
	return nil
}

func (b *PostgresBackend) Clear(ctx context.Context) error {
	const query = `DELETE FROM lms_documents WHERE key = $1`
	if _, err := b.db.ExecContext(ctx, query, b.key); err != nil {
		return fmt.Errorf("delete document %s: %w", b.key, err)
	}
	return nil
}
