// Package cli implements the sbd command tree. Each command is a kong
// struct with a Run method taking the shared Context.
package cli

import (
	"context"

	"github.com/sbdlabs/sbd/internal/service"
)

// Context carries the open services into command Run methods.
type Context struct {
	Ctx         context.Context
	Expenses    *service.ExpenseService
	Goals       *service.GoalService
	Restaurants *service.RestaurantService
}
