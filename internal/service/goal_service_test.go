package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage/sqlite"
)

func TestCreateGoal_BadStartDate(t *testing.T) {
	store := &fakeStore{}
	svc := NewGoalService(store)
	ctx := context.Background()

	for _, date := range []string{"15-08-2026", "2026/08/15", "not-a-date", "2026-13-40"} {
		t.Run(date, func(t *testing.T) {
			id, err := svc.CreateGoal(ctx, GoalInput{
				Type:        "fitness",
				Value:       5,
				Description: "Run daily",
				Unit:        "km",
				Frequency:   "daily",
				StartDate:   date,
			})
			if !errors.Is(err, ErrBadStartDate) {
				t.Fatalf("expected ErrBadStartDate, got %v", err)
			}
			if id != "" {
				t.Errorf("expected empty ID, got %q", id)
			}
		})
	}

	if store.storageCalls() != 0 {
		t.Errorf("expected no storage calls, got %d", store.storageCalls())
	}
}

func TestCreateGoal_DefaultsStartDateToToday(t *testing.T) {
	store := &fakeStore{}
	svc := NewGoalService(store)

	id, err := svc.CreateGoal(context.Background(), GoalInput{
		Type:        "fitness",
		Value:       5,
		Description: "Run daily",
		Unit:        "km",
		Frequency:   "daily",
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty ID")
	}

	if len(store.goals) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.goals))
	}
	g := store.goals[0]
	if g.StartDate != time.Now().Format(models.DateFormat) {
		t.Errorf("start date: expected today, got %q", g.StartDate)
	}
	if g.Progress != 0 {
		t.Errorf("progress: expected 0, got %v", g.Progress)
	}
}

func TestCreateGoal_RoundTrip(t *testing.T) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	svc := NewGoalService(store)
	ctx := context.Background()

	id, err := svc.CreateGoal(ctx, GoalInput{
		Type:        "fitness",
		Value:       5,
		Description: "Run daily",
		Unit:        "km",
		Frequency:   "daily",
		StartDate:   "2026-01-01",
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	got, err := store.GetGoal(ctx, id)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}

	if got.Type != "fitness" || got.Unit != "km" || got.Frequency != "daily" {
		t.Errorf("fields mismatch: %+v", got)
	}
	if got.Value != 5 {
		t.Errorf("value: expected 5, got %v", got.Value)
	}
	if got.StartDate != "2026-01-01" {
		t.Errorf("start date: expected 2026-01-01, got %q", got.StartDate)
	}
	if got.Progress != 0 {
		t.Errorf("progress: expected 0, got %v", got.Progress)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateGoal_StorageErrorIsReportedNotSuppressed(t *testing.T) {
	storeErr := errors.New("storage unavailable")
	svc := NewGoalService(&fakeStore{failWith: storeErr})

	id, err := svc.CreateGoal(context.Background(), GoalInput{
		Type:        "fitness",
		Value:       5,
		Description: "Run daily",
		Unit:        "km",
		Frequency:   "daily",
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}
	if id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}
