package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// InsertGoal persists a new goal.
func (s *SQLiteStore) InsertGoal(ctx context.Context, g *models.Goal) (string, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO goals
		 (id, goal_type, start_date, goal_value, description, unit, frequency, progress, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Type, g.StartDate, g.Value, g.Description, g.Unit, g.Frequency,
		g.Progress, g.CreatedAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert goal: %w", err)
	}

	return g.ID, nil
}

// GetGoal retrieves a goal by ID.
func (s *SQLiteStore) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	g := &models.Goal{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, goal_type, start_date, goal_value, description, unit, frequency, progress, created_at
		 FROM goals WHERE id = ?`,
		id,
	).Scan(&g.ID, &g.Type, &g.StartDate, &g.Value, &g.Description, &g.Unit,
		&g.Frequency, &g.Progress, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	g.CreatedAt = time.Unix(createdAt, 0)
	return g, nil
}
