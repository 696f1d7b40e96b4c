package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// RestaurantService manages restaurant records: insert, partial update, and
// set-union menu appends.
type RestaurantService struct {
	store storage.RestaurantStore
}

// NewRestaurantService creates a RestaurantService with the given storage
// backend.
func NewRestaurantService(store storage.RestaurantStore) *RestaurantService {
	return &RestaurantService{store: store}
}

// RestaurantInput carries the caller-supplied fields for a new restaurant.
// Empty opening hours get the "09:00 AM" / "09:00 PM" defaults. Lat and
// Long are pointers: nil means no coordinate was recorded.
type RestaurantInput struct {
	Name          string
	Address       string
	ContactNumber string
	StartTime     string
	EndTime       string
	Lat           *float64
	Long          *float64
	MenuIDs       []string
}

// InsertRestaurant inserts one restaurant record and returns the assigned
// ID. An empty MenuIDs list is omitted from the stored document rather than
// stored as an empty set.
func (s *RestaurantService) InsertRestaurant(ctx context.Context, in RestaurantInput) (string, error) {
	startTime := in.StartTime
	if startTime == "" {
		startTime = models.DefaultOpeningTime
	}
	endTime := in.EndTime
	if endTime == "" {
		endTime = models.DefaultClosingTime
	}

	restaurant := &models.Restaurant{
		Name:          in.Name,
		ContactNumber: in.ContactNumber,
		OrderTimings: models.OrderTimings{
			Start: startTime,
			End:   endTime,
		},
		Location: models.Location{
			Address: in.Address,
			Lat:     in.Lat,
			Long:    in.Long,
		},
	}
	if len(in.MenuIDs) > 0 {
		restaurant.MenuIDs = in.MenuIDs
	}

	id, err := s.store.InsertRestaurant(ctx, restaurant)
	if err != nil {
		return "", fmt.Errorf("failed to insert restaurant: %w", err)
	}

	slog.Info("Restaurant inserted", "id", id, "name", in.Name)
	return id, nil
}

// GetRestaurant retrieves one restaurant by ID.
func (s *RestaurantService) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.store.GetRestaurant(ctx, id)
}

// buildPatch translates a RestaurantUpdate into a dotted-path patch.
// Address, latitude, and longitude all land under "location.", and the two
// timing fields under "orderTimings.", so sibling fields supplied in the
// same call merge into one sub-object write.
func buildPatch(upd models.RestaurantUpdate) storage.Patch {
	patch := storage.Patch{}
	if upd.Name != nil {
		patch["name"] = *upd.Name
	}
	if upd.ContactNumber != nil {
		patch["contactNumber"] = *upd.ContactNumber
	}
	if upd.Address != nil {
		patch["location.address"] = *upd.Address
	}
	if upd.Lat != nil {
		patch["location.lat"] = *upd.Lat
	}
	if upd.Long != nil {
		patch["location.long"] = *upd.Long
	}
	if upd.StartTime != nil {
		patch["orderTimings.start"] = *upd.StartTime
	}
	if upd.EndTime != nil {
		patch["orderTimings.end"] = *upd.EndTime
	}
	if upd.MenuIDs != nil {
		patch["menu_ids"] = *upd.MenuIDs
	}
	return patch
}

// UpdateRestaurant applies a partial update. Only non-nil fields are
// written; nil fields stay untouched in storage, and a zero coordinate is a
// real update, not an absent one. A fully empty update performs no storage
// call at all.
//
// Whether the backend reports a modified document is logged, not returned;
// an update that matches nothing is not an error.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, upd models.RestaurantUpdate) error {
	if upd.IsZero() {
		slog.Info("No update data provided", "id", id)
		return nil
	}

	modified, err := s.store.UpdateRestaurant(ctx, id, buildPatch(upd))
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	if modified > 0 {
		slog.Info("Restaurant updated", "id", id)
	} else {
		slog.Info("No changes made to restaurant", "id", id)
	}
	return nil
}

// AppendMenuIDs adds menu IDs to the restaurant's set with set-union
// semantics; IDs already present are not added twice. An empty list is a
// logged no-op.
func (s *RestaurantService) AppendMenuIDs(ctx context.Context, id string, menuIDs []string) error {
	if len(menuIDs) == 0 {
		slog.Info("No menu IDs provided for appending", "id", id)
		return nil
	}

	modified, err := s.store.AddMenuIDs(ctx, id, menuIDs)
	if err != nil {
		return fmt.Errorf("failed to append menu ids: %w", err)
	}

	if modified > 0 {
		slog.Info("Menu IDs appended to restaurant", "id", id, "count", len(menuIDs))
	} else {
		slog.Info("No menu IDs were appended to restaurant", "id", id)
	}
	return nil
}
