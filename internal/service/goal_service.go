package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// ErrBadStartDate is returned when a supplied start date does not parse as
// YYYY-MM-DD. No write is performed in that case.
var ErrBadStartDate = errors.New("start date must be in YYYY-MM-DD format")

// GoalService writes goal records.
//
// Policy is "report, don't crash": failures are logged at this boundary and
// returned as typed errors with an empty ID, never suppressed.
type GoalService struct {
	store storage.GoalStore
}

// NewGoalService creates a GoalService with the given storage backend.
func NewGoalService(store storage.GoalStore) *GoalService {
	return &GoalService{store: store}
}

// GoalInput carries the caller-supplied fields for a new goal.
type GoalInput struct {
	Type        string
	Value       float64
	Description string
	Unit        string
	Frequency   string
	StartDate   string // YYYY-MM-DD, defaults to today
}

// CreateGoal inserts one goal record with progress initialized to 0 and
// returns the assigned record ID.
func (s *GoalService) CreateGoal(ctx context.Context, in GoalInput) (string, error) {
	startDate := in.StartDate
	if startDate != "" {
		if _, err := time.Parse(models.DateFormat, startDate); err != nil {
			slog.Warn("Goal rejected: bad start date", "start_date", startDate, "error", err)
			return "", fmt.Errorf("%w: %q", ErrBadStartDate, startDate)
		}
	} else {
		startDate = time.Now().Format(models.DateFormat)
	}

	goal := &models.Goal{
		Type:        in.Type,
		StartDate:   startDate,
		Value:       in.Value,
		Description: in.Description,
		Unit:        in.Unit,
		Frequency:   in.Frequency,
		Progress:    0,
		CreatedAt:   time.Now(),
	}

	id, err := s.store.InsertGoal(ctx, goal)
	if err != nil {
		slog.Warn("Goal insert failed", "goal_type", in.Type, "error", err)
		return "", fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Debug("Goal created",
		"id", id,
		"goal_type", in.Type,
		"start_date", startDate,
	)
	return id, nil
}
