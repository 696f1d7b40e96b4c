package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// patchColumns maps dotted document paths (as used in storage.Patch) to
// restaurant table columns. The document paths match what the Mongo backend
// stores, so services can stay backend-agnostic.
var patchColumns = map[string]string{
	"name":               "name",
	"contactNumber":      "contact_number",
	"orderTimings.start": "start_time",
	"orderTimings.end":   "end_time",
	"location.address":   "address",
	"location.lat":       "lat",
	"location.long":      "long",
}

// InsertRestaurant persists a new restaurant and its menu IDs in one
// transaction. An empty MenuIDs slice stores no junction rows at all.
func (s *SQLiteStore) InsertRestaurant(ctx context.Context, r *models.Restaurant) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO restaurants (id, name, contact_number, start_time, end_time, address, lat, long)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.ContactNumber,
		r.OrderTimings.Start, r.OrderTimings.End,
		r.Location.Address, r.Location.Lat, r.Location.Long,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert restaurant: %w", err)
	}

	for _, menuID := range r.MenuIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO restaurant_menus (restaurant_id, menu_id) VALUES (?, ?)",
			r.ID, menuID,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert menu id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.ID, nil
}

// GetRestaurant retrieves a restaurant by ID, including its menu IDs.
// MenuIDs is nil when the restaurant has none.
func (s *SQLiteStore) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	r := &models.Restaurant{}
	var lat, long sql.NullFloat64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, contact_number, start_time, end_time, address, lat, long
		 FROM restaurants WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Name, &r.ContactNumber,
		&r.OrderTimings.Start, &r.OrderTimings.End,
		&r.Location.Address, &lat, &long)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("restaurant %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if lat.Valid {
		r.Location.Lat = &lat.Float64
	}
	if long.Valid {
		r.Location.Long = &long.Float64
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT menu_id FROM restaurant_menus WHERE restaurant_id = ? ORDER BY menu_id",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var menuID string
		if err := rows.Scan(&menuID); err != nil {
			return nil, fmt.Errorf("failed to scan menu id: %w", err)
		}
		r.MenuIDs = append(r.MenuIDs, menuID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu ids: %w", err)
	}

	return r, nil
}

// UpdateRestaurant applies a dotted-path patch. Column updates and a
// "menu_ids" replacement happen in one transaction. Like the Mongo backend,
// updating a nonexistent restaurant reports 0 modified rather than an error.
func (s *SQLiteStore) UpdateRestaurant(ctx context.Context, id string, patch storage.Patch) (int64, error) {
	var (
		setClauses []string
		args       []any
		menuIDs    []string
		replaceSet bool
	)

	for path, value := range patch {
		if path == "menu_ids" {
			ids, ok := value.([]string)
			if !ok {
				return 0, fmt.Errorf("menu_ids patch value must be []string, got %T", value)
			}
			menuIDs = ids
			replaceSet = true
			continue
		}
		col, ok := patchColumns[path]
		if !ok {
			return 0, fmt.Errorf("unknown field path %q", path)
		}
		setClauses = append(setClauses, col+" = ?")
		args = append(args, value)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var modified int64
	if len(setClauses) > 0 {
		args = append(args, id)
		res, err := tx.ExecContext(ctx,
			"UPDATE restaurants SET "+strings.Join(setClauses, ", ")+" WHERE id = ?",
			args...,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to update restaurant: %w", err)
		}
		modified, err = res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
	}

	if replaceSet {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = ?)", id,
		).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("failed to check restaurant: %w", err)
		}
		if exists {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM restaurant_menus WHERE restaurant_id = ?", id,
			); err != nil {
				return 0, fmt.Errorf("failed to clear menu ids: %w", err)
			}
			for _, menuID := range menuIDs {
				if _, err := tx.ExecContext(ctx,
					"INSERT OR IGNORE INTO restaurant_menus (restaurant_id, menu_id) VALUES (?, ?)",
					id, menuID,
				); err != nil {
					return 0, fmt.Errorf("failed to insert menu id: %w", err)
				}
			}
			if modified == 0 {
				modified = 1
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return modified, nil
}

// AddMenuIDs adds menu IDs with set-union semantics. INSERT OR IGNORE
// against the composite primary key means duplicates are silently skipped
// and the returned count reflects only rows actually added.
func (s *SQLiteStore) AddMenuIDs(ctx context.Context, id string, menuIDs []string) (int64, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = ?)", id,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check restaurant: %w", err)
	}
	if !exists {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var added int64
	for _, menuID := range menuIDs {
		res, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO restaurant_menus (restaurant_id, menu_id) VALUES (?, ?)",
			id, menuID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert menu id: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		added += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return added, nil
}
