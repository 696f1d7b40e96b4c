package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// InsertExpense persists a new expense and its tags in one transaction.
func (s *SQLiteStore) InsertExpense(ctx context.Context, e *models.Expense) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses
		 (id, amount, category, description, date, currency, payment_method, status, location, receipt, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Amount.String(), e.Category, e.Description, e.Date,
		e.Currency, e.PaymentMethod, e.Status,
		e.Location, e.Receipt, e.Notes,
		e.CreatedAt.Unix(), e.UpdatedAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, tag := range e.Tags {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_tags (expense_id, tag) VALUES (?, ?)",
			e.ID, tag,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return e.ID, nil
}

// GetExpense retrieves an expense by ID, including its tags.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	e := &models.Expense{}
	var amount string
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, amount, category, description, date, currency, payment_method, status, location, receipt, notes, created_at, updated_at
		 FROM expenses WHERE id = ?`,
		id,
	).Scan(&e.ID, &amount, &e.Category, &e.Description, &e.Date,
		&e.Currency, &e.PaymentMethod, &e.Status,
		&e.Location, &e.Receipt, &e.Notes, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	e.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
	}
	e.CreatedAt = time.Unix(createdAt, 0)
	e.UpdatedAt = time.Unix(updatedAt, 0)

	rows, err := s.db.QueryContext(ctx,
		"SELECT tag FROM expense_tags WHERE expense_id = ? ORDER BY tag",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	defer rows.Close()

	e.Tags = []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		e.Tags = append(e.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return e, nil
}
