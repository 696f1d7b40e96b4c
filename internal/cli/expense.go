package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbdlabs/sbd/internal/service"
)

// ExpenseAddCmd records one expense.
type ExpenseAddCmd struct {
	Amount      string `arg:"" help:"Amount spent, e.g. 249.99. Must be positive."`
	Category    string `arg:"" help:"Expense category, e.g. Food or Travel."`
	Description string `arg:"" help:"What the money was spent on."`

	Date          string   `short:"d" help:"Expense date (YYYY-MM-DD). Defaults to today."`
	Currency      string   `short:"c" help:"Currency label. Defaults to INR."`
	PaymentMethod string   `short:"p" help:"Payment method. Defaults to Credit Card."`
	Status        string   `short:"s" help:"Settlement status. Defaults to paid."`
	Tags          []string `short:"t" help:"Comma-separated tags." sep:","`
	Location      string   `short:"l" help:"Where the expense was incurred."`
	Receipt       string   `short:"r" help:"URL or path to a receipt."`
	Notes         string   `short:"n" help:"Additional notes."`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", c.Amount, err)
	}

	id, err := ctx.Expenses.AddExpense(ctx.Ctx, service.ExpenseInput{
		Amount:        amount,
		Category:      c.Category,
		Description:   c.Description,
		Date:          c.Date,
		Currency:      c.Currency,
		PaymentMethod: c.PaymentMethod,
		Status:        c.Status,
		Tags:          c.Tags,
		Location:      c.Location,
		Receipt:       c.Receipt,
		Notes:         c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added expense: %s (ID: %s)\n", c.Description, id)
	return nil
}
