package service

import (
	"context"
	"testing"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage/sqlite"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func newRestaurantFixture(t *testing.T) (*RestaurantService, *sqlite.SQLiteStore) {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewRestaurantService(store), store
}

func TestInsertRestaurant_Defaults(t *testing.T) {
	svc, store := newRestaurantFixture(t)
	ctx := context.Background()

	id, err := svc.InsertRestaurant(ctx, RestaurantInput{
		Name:    "Annapurna",
		Address: "12 MG Road",
	})
	if err != nil {
		t.Fatalf("InsertRestaurant failed: %v", err)
	}

	got, err := store.GetRestaurant(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}

	if got.OrderTimings.Start != models.DefaultOpeningTime {
		t.Errorf("opening time: expected %q, got %q", models.DefaultOpeningTime, got.OrderTimings.Start)
	}
	if got.OrderTimings.End != models.DefaultClosingTime {
		t.Errorf("closing time: expected %q, got %q", models.DefaultClosingTime, got.OrderTimings.End)
	}
	if got.Location.Address != "12 MG Road" {
		t.Errorf("address: got %q", got.Location.Address)
	}
	if got.Location.Lat != nil || got.Location.Long != nil {
		t.Errorf("expected absent coordinates, got %v / %v", got.Location.Lat, got.Location.Long)
	}
	// No menus supplied: the field is omitted, not an empty set
	if got.MenuIDs != nil {
		t.Errorf("expected nil MenuIDs, got %v", got.MenuIDs)
	}
}

func TestUpdateRestaurant_EmptyUpdateSkipsStorage(t *testing.T) {
	store := &fakeStore{}
	svc := NewRestaurantService(store)

	if err := svc.UpdateRestaurant(context.Background(), "some-id", models.RestaurantUpdate{}); err != nil {
		t.Fatalf("UpdateRestaurant failed: %v", err)
	}
	if store.storageCalls() != 0 {
		t.Errorf("expected no storage calls, got %d", store.storageCalls())
	}
}

func TestUpdateRestaurant_BuildsDottedPatch(t *testing.T) {
	store := &fakeStore{}
	svc := NewRestaurantService(store)

	err := svc.UpdateRestaurant(context.Background(), "some-id", models.RestaurantUpdate{
		Address:   strPtr("44 Church Street"),
		Lat:       f64Ptr(12.97),
		StartTime: strPtr("08:00 AM"),
	})
	if err != nil {
		t.Fatalf("UpdateRestaurant failed: %v", err)
	}

	if len(store.patches) != 1 {
		t.Fatalf("expected 1 update call, got %d", len(store.patches))
	}
	patch := store.patches[0]

	// Sibling location fields travel in the same patch, under dotted paths
	if patch["location.address"] != "44 Church Street" {
		t.Errorf("location.address: got %v", patch["location.address"])
	}
	if patch["location.lat"] != 12.97 {
		t.Errorf("location.lat: got %v", patch["location.lat"])
	}
	if patch["orderTimings.start"] != "08:00 AM" {
		t.Errorf("orderTimings.start: got %v", patch["orderTimings.start"])
	}
	if len(patch) != 3 {
		t.Errorf("expected exactly 3 patch entries, got %v", patch)
	}
}

func TestUpdateRestaurant_ZeroCoordinateIsNotAbsent(t *testing.T) {
	svc, store := newRestaurantFixture(t)
	ctx := context.Background()

	id, err := svc.InsertRestaurant(ctx, RestaurantInput{
		Name:    "Equator Cafe",
		Address: "1 Meridian Way",
		Lat:     f64Ptr(51.48),
		Long:    f64Ptr(-0.01),
	})
	if err != nil {
		t.Fatalf("InsertRestaurant failed: %v", err)
	}

	err = svc.UpdateRestaurant(ctx, id, models.RestaurantUpdate{
		Lat:  f64Ptr(0),
		Long: f64Ptr(0),
	})
	if err != nil {
		t.Fatalf("UpdateRestaurant failed: %v", err)
	}

	got, err := store.GetRestaurant(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}
	if got.Location.Lat == nil || *got.Location.Lat != 0 {
		t.Errorf("lat: expected 0, got %v", got.Location.Lat)
	}
	if got.Location.Long == nil || *got.Location.Long != 0 {
		t.Errorf("long: expected 0, got %v", got.Location.Long)
	}
	// Untouched fields stay put
	if got.Location.Address != "1 Meridian Way" {
		t.Errorf("address clobbered: %q", got.Location.Address)
	}
}

func TestUpdateRestaurant_PartialLeavesSiblingsAlone(t *testing.T) {
	svc, store := newRestaurantFixture(t)
	ctx := context.Background()

	id, err := svc.InsertRestaurant(ctx, RestaurantInput{
		Name:          "Old Name",
		Address:       "Old Address",
		ContactNumber: "555-0100",
		StartTime:     "10:00 AM",
		EndTime:       "10:00 PM",
	})
	if err != nil {
		t.Fatalf("InsertRestaurant failed: %v", err)
	}

	err = svc.UpdateRestaurant(ctx, id, models.RestaurantUpdate{
		Name:      strPtr("New Name"),
		StartTime: strPtr("07:30 AM"),
	})
	if err != nil {
		t.Fatalf("UpdateRestaurant failed: %v", err)
	}

	got, err := store.GetRestaurant(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.OrderTimings.Start != "07:30 AM" {
		t.Errorf("start: got %q", got.OrderTimings.Start)
	}
	if got.OrderTimings.End != "10:00 PM" {
		t.Errorf("end clobbered: %q", got.OrderTimings.End)
	}
	if got.ContactNumber != "555-0100" || got.Location.Address != "Old Address" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateRestaurant_ReplacesMenuSet(t *testing.T) {
	svc, store := newRestaurantFixture(t)
	ctx := context.Background()

	id, err := svc.InsertRestaurant(ctx, RestaurantInput{
		Name:    "Replaceable",
		Address: "9 Swap Street",
		MenuIDs: []string{"menu-1", "menu-2"},
	})
	if err != nil {
		t.Fatalf("InsertRestaurant failed: %v", err)
	}

	newSet := []string{"menu-9"}
	err = svc.UpdateRestaurant(ctx, id, models.RestaurantUpdate{MenuIDs: &newSet})
	if err != nil {
		t.Fatalf("UpdateRestaurant failed: %v", err)
	}

	got, err := store.GetRestaurant(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}
	if len(got.MenuIDs) != 1 || got.MenuIDs[0] != "menu-9" {
		t.Errorf("expected full replacement with [menu-9], got %v", got.MenuIDs)
	}
}

func TestAppendMenuIDs_SetUnion(t *testing.T) {
	svc, store := newRestaurantFixture(t)
	ctx := context.Background()

	id, err := svc.InsertRestaurant(ctx, RestaurantInput{
		Name:    "Union House",
		Address: "3 Join Lane",
		MenuIDs: []string{"menu-1"},
	})
	if err != nil {
		t.Fatalf("InsertRestaurant failed: %v", err)
	}

	// Two appends with overlapping IDs must not produce duplicates
	if err := svc.AppendMenuIDs(ctx, id, []string{"menu-1", "menu-2"}); err != nil {
		t.Fatalf("AppendMenuIDs failed: %v", err)
	}
	if err := svc.AppendMenuIDs(ctx, id, []string{"menu-2", "menu-3"}); err != nil {
		t.Fatalf("AppendMenuIDs failed: %v", err)
	}

	got, err := store.GetRestaurant(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurant failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, menuID := range got.MenuIDs {
		if seen[menuID] {
			t.Errorf("duplicate menu id %q in %v", menuID, got.MenuIDs)
		}
		seen[menuID] = true
	}
	for _, want := range []string{"menu-1", "menu-2", "menu-3"} {
		if !seen[want] {
			t.Errorf("missing menu id %q in %v", want, got.MenuIDs)
		}
	}
	if len(got.MenuIDs) != 3 {
		t.Errorf("expected 3 menu ids, got %v", got.MenuIDs)
	}
}

func TestAppendMenuIDs_EmptyInputSkipsStorage(t *testing.T) {
	store := &fakeStore{}
	svc := NewRestaurantService(store)

	if err := svc.AppendMenuIDs(context.Background(), "some-id", nil); err != nil {
		t.Fatalf("AppendMenuIDs failed: %v", err)
	}
	if store.storageCalls() != 0 {
		t.Errorf("expected no storage calls, got %d", store.storageCalls())
	}
}
