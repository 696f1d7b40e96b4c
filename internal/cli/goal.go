package cli

import (
	"fmt"

	"github.com/sbdlabs/sbd/internal/service"
)

// GoalCreateCmd records one goal with progress starting at zero.
type GoalCreateCmd struct {
	Type        string  `arg:"" help:"Goal type, e.g. fitness or productivity."`
	Value       float64 `arg:"" help:"Numeric target, e.g. 5."`
	Description string  `arg:"" help:"Short description, e.g. 'Run daily'."`
	Unit        string  `arg:"" help:"Unit of the target, e.g. km or hours."`
	Frequency   string  `arg:"" help:"How often the goal applies, e.g. daily."`

	StartDate string `short:"d" help:"Start date (YYYY-MM-DD). Defaults to today."`
}

func (c *GoalCreateCmd) Run(ctx *Context) error {
	id, err := ctx.Goals.CreateGoal(ctx.Ctx, service.GoalInput{
		Type:        c.Type,
		Value:       c.Value,
		Description: c.Description,
		Unit:        c.Unit,
		Frequency:   c.Frequency,
		StartDate:   c.StartDate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created goal: %s (ID: %s)\n", c.Description, id)
	return nil
}
