package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
)

// SQLiteReflectionRepo implements ReflectionRepo using a SQLite database.
type SQLiteReflectionRepo struct {
	db db.DBTX
}

// NewSQLiteReflectionRepo creates a new SQLiteReflectionRepo.
func NewSQLiteReflectionRepo(conn db.DBTX) *SQLiteReflectionRepo {
	return &SQLiteReflectionRepo{db: conn}
}

func (r *SQLiteReflectionRepo) Create(ctx context.Context, ref *domain.Reflection) error {
	query := `INSERT INTO reflections (id, date, text, mood, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ref.ID,
		ref.Date.Format(dateLayout),
		ref.Text,
		ref.Mood,
		ref.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reflection: %w", err)
	}
	return nil
}

func (r *SQLiteReflectionRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.Reflection, error) {
	query := `SELECT id, date, text, mood, created_at FROM reflections
		WHERE date >= ?
		ORDER BY date DESC, created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing reflections: %w", err)
	}
	defer rows.Close()

	var refs []*domain.Reflection
	for rows.Next() {
		var ref domain.Reflection
		var dateStr, createdAtStr string
		if err := rows.Scan(&ref.ID, &dateStr, &ref.Text, &ref.Mood, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning reflection: %w", err)
		}
		ref.Date, _ = time.Parse(dateLayout, dateStr)
		ref.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}
