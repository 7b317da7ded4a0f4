package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
)

const goalColumns = `id, title, why, kgi, deadline, area, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo bound to conn, which may be
// a *sql.DB or a transaction.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Why,
		g.KGI,
		nullableTimeToString(g.Deadline, dateLayout),
		g.Area,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found: %s", id)
	}
	return g, err
}

func (r *SQLiteGoalRepo) List(ctx context.Context, search string, limit, offset int) ([]*domain.Goal, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + goalColumns + ` FROM goals`
	args := []any{}
	if search != "" {
		query += ` WHERE title LIKE ?`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, why = ?, kgi = ?, deadline = ?, area = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Why,
		g.KGI,
		nullableTimeToString(g.Deadline, dateLayout),
		g.Area,
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal not found: %s", g.ID)
	}
	return nil
}

// Delete removes a goal. Tasks under the goal are removed by the
// ON DELETE CASCADE foreign key.
func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var deadlineStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&g.ID, &g.Title, &g.Why, &g.KGI, &deadlineStr, &g.Area, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Deadline = parseNullableTime(deadlineStr, dateLayout)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &g, nil
}
