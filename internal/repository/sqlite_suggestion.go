package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
)

// SQLiteSuggestionRepo implements SuggestionRepo using a SQLite database.
type SQLiteSuggestionRepo struct {
	db db.DBTX
}

// NewSQLiteSuggestionRepo creates a new SQLiteSuggestionRepo.
func NewSQLiteSuggestionRepo(conn db.DBTX) *SQLiteSuggestionRepo {
	return &SQLiteSuggestionRepo{db: conn}
}

func (r *SQLiteSuggestionRepo) Create(ctx context.Context, s *domain.Suggestion) error {
	query := `INSERT INTO suggestions (id, date, type, content_json) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date.Format(dateLayout),
		string(s.Type),
		s.ContentJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting suggestion: %w", err)
	}
	return nil
}

func (r *SQLiteSuggestionRepo) Latest(ctx context.Context, typ domain.SuggestionType) (*domain.Suggestion, error) {
	query := `SELECT id, date, type, content_json FROM suggestions
		WHERE type = ? ORDER BY date DESC, rowid DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, string(typ)))
}

func (r *SQLiteSuggestionRepo) LatestInRange(ctx context.Context, typ domain.SuggestionType, from, to time.Time) (*domain.Suggestion, error) {
	query := `SELECT id, date, type, content_json FROM suggestions
		WHERE type = ? AND date >= ? AND date <= ?
		ORDER BY date DESC, rowid DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query,
		string(typ), from.Format(dateLayout), to.Format(dateLayout)))
}

func (r *SQLiteSuggestionRepo) Update(ctx context.Context, s *domain.Suggestion) error {
	query := `UPDATE suggestions SET date = ?, content_json = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Date.Format(dateLayout), s.ContentJSON, s.ID)
	if err != nil {
		return fmt.Errorf("updating suggestion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("suggestion not found: %s", s.ID)
	}
	return nil
}

func (r *SQLiteSuggestionRepo) scanOne(row *sql.Row) (*domain.Suggestion, error) {
	var s domain.Suggestion
	var dateStr, typStr string
	err := row.Scan(&s.ID, &dateStr, &typStr, &s.ContentJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning suggestion: %w", err)
	}
	s.Date, _ = time.Parse(dateLayout, dateStr)
	s.Type = domain.SuggestionType(typStr)
	return &s, nil
}
