package service

import (
	"context"
	"fmt"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// fakeStore is an in-memory storage.Store substitute. It records every call
// so tests can assert that an operation did (or did not) reach storage, and
// it can be told to fail.
type fakeStore struct {
	failWith error

	expenses    []*models.Expense
	goals       []*models.Goal
	restaurants []*models.Restaurant
	patches     []storage.Patch
	appended    [][]string
}

var _ storage.Store = (*fakeStore)(nil)

func (f *fakeStore) InsertExpense(_ context.Context, e *models.Expense) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.expenses = append(f.expenses, e)
	return fmt.Sprintf("expense-%d", len(f.expenses)), nil
}

func (f *fakeStore) GetExpense(_ context.Context, id string) (*models.Expense, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeStore) InsertGoal(_ context.Context, g *models.Goal) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.goals = append(f.goals, g)
	return fmt.Sprintf("goal-%d", len(f.goals)), nil
}

func (f *fakeStore) GetGoal(_ context.Context, id string) (*models.Goal, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeStore) InsertRestaurant(_ context.Context, r *models.Restaurant) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.restaurants = append(f.restaurants, r)
	return fmt.Sprintf("restaurant-%d", len(f.restaurants)), nil
}

func (f *fakeStore) GetRestaurant(_ context.Context, id string) (*models.Restaurant, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeStore) UpdateRestaurant(_ context.Context, id string, patch storage.Patch) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.patches = append(f.patches, patch)
	return 1, nil
}

func (f *fakeStore) AddMenuIDs(_ context.Context, id string, menuIDs []string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.appended = append(f.appended, menuIDs)
	return int64(len(menuIDs)), nil
}

func (f *fakeStore) Close() error { return nil }

// storageCalls counts every write that reached the fake.
func (f *fakeStore) storageCalls() int {
	return len(f.expenses) + len(f.goals) + len(f.restaurants) + len(f.patches) + len(f.appended)
}
