// Package service implements the record writers: thin operations that
// validate inputs, apply defaults, and issue single-document writes against
// an injected storage backend.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/storage"
)

// ErrNonPositiveAmount is returned when an expense amount is zero or
// negative. No write is performed in that case.
var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// ExpenseService writes expense records.
type ExpenseService struct {
	store storage.ExpenseStore
}

// NewExpenseService creates an ExpenseService with the given storage backend.
func NewExpenseService(store storage.ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

// ExpenseInput carries the caller-supplied fields for a new expense.
// Empty Date, Currency, PaymentMethod, and Status get defaults; the rest
// are stored as given.
type ExpenseInput struct {
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          string // YYYY-MM-DD, defaults to today
	Currency      string
	PaymentMethod string
	Status        string
	Tags          []string
	Location      string
	Receipt       string
	Notes         string
}

// AddExpense validates the input, applies defaults, and inserts exactly one
// expense record. It returns the assigned record ID.
//
// CreatedAt and UpdatedAt are stamped from the same clock reading, so they
// are equal on the stored record.
func (s *ExpenseService) AddExpense(ctx context.Context, in ExpenseInput) (string, error) {
	if in.Amount.Sign() <= 0 {
		return "", fmt.Errorf("%w: got %s", ErrNonPositiveAmount, in.Amount)
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format(models.DateFormat)
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	currency := in.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}
	status := in.Status
	if status == "" {
		status = models.DefaultStatus
	}

	now := time.Now()
	expense := &models.Expense{
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Date:          date,
		Currency:      currency,
		PaymentMethod: paymentMethod,
		Status:        status,
		Tags:          tags,
		Location:      in.Location,
		Receipt:       in.Receipt,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.store.InsertExpense(ctx, expense)
	if err != nil {
		return "", fmt.Errorf("failed to add expense: %w", err)
	}

	slog.Debug("Expense added",
		"id", id,
		"amount", in.Amount.String(),
		"category", in.Category,
	)
	return id, nil
}
