package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied by the expense writer when the caller leaves the
// corresponding field empty.
const (
	DefaultCurrency      = "INR"
	DefaultPaymentMethod = "Credit Card"
	DefaultStatus        = "paid"
)

// DateFormat is the calendar-date layout used for Expense.Date and
// Goal.StartDate.
const DateFormat = "2006-01-02"

// Expense represents a single spent amount.
type Expense struct {
	// ID is the unique identifier assigned by the storage backend.
	ID string

	// Amount is the spent amount. Always greater than zero.
	Amount decimal.Decimal

	// Category groups the expense (e.g. "Travel", "Food").
	Category string

	// Description says what the money was spent on.
	Description string

	// Date is the calendar date of the expense in YYYY-MM-DD form.
	Date string

	// Currency is the ISO-ish currency label. Defaults to "INR".
	Currency string

	// PaymentMethod records how the expense was paid.
	PaymentMethod string

	// Status is the settlement status (e.g. "paid", "pending").
	Status string

	// Tags are free-form labels. Empty slice when none were given.
	Tags []string

	// Location is where the expense was incurred. Optional.
	Location string

	// Receipt is a URL or path to a receipt image. Optional.
	Receipt string

	// Notes holds any additional remarks. Optional.
	Notes string

	// CreatedAt and UpdatedAt are stamped from the same clock reading at
	// insertion, so they are equal until an update path exists.
	CreatedAt time.Time
	UpdatedAt time.Time
}
