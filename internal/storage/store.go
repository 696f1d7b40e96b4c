// Package storage provides abstractions for persistent record storage.
package storage

import (
	"context"
	"errors"

	"github.com/sbdlabs/sbd/internal/models"
)

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("record not found")

// Patch is a partial update keyed by dotted document path, e.g.
// "location.lat" or "orderTimings.start". Keys use the stored document's
// field names. Values land inside their sub-object without clobbering
// sibling fields, so a patch carrying both "location.address" and
// "location.lat" updates one location object in one write.
type Patch map[string]any

// ExpenseStore persists expense records.
type ExpenseStore interface {
	// InsertExpense persists a new expense and returns the assigned ID.
	InsertExpense(ctx context.Context, e *models.Expense) (string, error)

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
}

// GoalStore persists goal records.
type GoalStore interface {
	// InsertGoal persists a new goal and returns the assigned ID.
	InsertGoal(ctx context.Context, g *models.Goal) (string, error)

	// GetGoal retrieves a goal by ID.
	GetGoal(ctx context.Context, id string) (*models.Goal, error)
}

// RestaurantStore persists restaurant records.
type RestaurantStore interface {
	// InsertRestaurant persists a new restaurant and returns the assigned
	// ID. MenuIDs are stored only when non-empty.
	InsertRestaurant(ctx context.Context, r *models.Restaurant) (string, error)

	// GetRestaurant retrieves a restaurant by ID.
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)

	// UpdateRestaurant applies a dotted-path patch to one restaurant and
	// reports how many documents the backend actually modified (0 or 1).
	// A "menu_ids" key replaces the stored menu set wholesale.
	UpdateRestaurant(ctx context.Context, id string, patch Patch) (int64, error)

	// AddMenuIDs adds menu IDs to the restaurant's set with set-union
	// semantics: IDs already present are not added twice. The returned
	// count is 0 when nothing new was added.
	AddMenuIDs(ctx context.Context, id string, menuIDs []string) (int64, error)
}

// Store is the combined interface a storage backend implements. This
// abstraction allows swapping backends (SQLite, MongoDB) without changing
// the service layer, and substituting in-memory fakes in tests.
type Store interface {
	ExpenseStore
	GoalStore
	RestaurantStore

	// Close releases any resources held by the store.
	Close() error
}
