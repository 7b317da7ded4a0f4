package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
)

// SQLiteIntegrationRepo implements IntegrationRepo using a SQLite database.
type SQLiteIntegrationRepo struct {
	db db.DBTX
}

// NewSQLiteIntegrationRepo creates a new SQLiteIntegrationRepo.
func NewSQLiteIntegrationRepo(conn db.DBTX) *SQLiteIntegrationRepo {
	return &SQLiteIntegrationRepo{db: conn}
}

func (r *SQLiteIntegrationRepo) Upsert(ctx context.Context, in *domain.Integration) error {
	query := `INSERT INTO integrations (id, kind, key, value) VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, key) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query, in.ID, string(in.Kind), in.Key, in.Value)
	if err != nil {
		return fmt.Errorf("upserting integration: %w", err)
	}
	return nil
}

func (r *SQLiteIntegrationRepo) Get(ctx context.Context, kind domain.IntegrationKind, key string) (*domain.Integration, error) {
	query := `SELECT id, kind, key, value FROM integrations WHERE kind = ? AND key = ?`
	row := r.db.QueryRowContext(ctx, query, string(kind), key)

	var in domain.Integration
	var kindStr string
	err := row.Scan(&in.ID, &kindStr, &in.Key, &in.Value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning integration: %w", err)
	}
	in.Kind = domain.IntegrationKind(kindStr)
	return &in, nil
}
