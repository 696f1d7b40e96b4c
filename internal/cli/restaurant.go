package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sbdlabs/sbd/internal/models"
	"github.com/sbdlabs/sbd/internal/service"
)

// RestaurantAddCmd records one restaurant.
type RestaurantAddCmd struct {
	Name    string `arg:"" help:"Restaurant name."`
	Address string `arg:"" help:"Street address."`

	Contact string   `short:"c" help:"Contact number."`
	Open    string   `help:"Opening time. Defaults to '09:00 AM'."`
	Close   string   `help:"Closing time. Defaults to '09:00 PM'."`
	Lat     *float64 `help:"Latitude."`
	Long    *float64 `help:"Longitude."`
	MenuIDs []string `name:"menu-ids" short:"m" help:"Comma-separated menu IDs." sep:","`
}

func (c *RestaurantAddCmd) Run(ctx *Context) error {
	id, err := ctx.Restaurants.InsertRestaurant(ctx.Ctx, service.RestaurantInput{
		Name:          c.Name,
		Address:       c.Address,
		ContactNumber: c.Contact,
		StartTime:     c.Open,
		EndTime:       c.Close,
		Lat:           c.Lat,
		Long:          c.Long,
		MenuIDs:       c.MenuIDs,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added restaurant: %s (ID: %s)\n", c.Name, id)
	return nil
}

// RestaurantUpdateCmd updates only the fields whose flags were given.
// Pointer-typed flags keep "not supplied" distinct from a zero value, so
// --lat 0 really stores latitude 0.
type RestaurantUpdateCmd struct {
	ID string `arg:"" help:"Restaurant ID."`

	Name    *string  `help:"New name."`
	Address *string  `help:"New street address."`
	Contact *string  `short:"c" help:"New contact number."`
	Open    *string  `help:"New opening time."`
	Close   *string  `help:"New closing time."`
	Lat     *float64 `help:"New latitude."`
	Long    *float64 `help:"New longitude."`
}

func (c *RestaurantUpdateCmd) Run(ctx *Context) error {
	return ctx.Restaurants.UpdateRestaurant(ctx.Ctx, c.ID, models.RestaurantUpdate{
		Name:          c.Name,
		Address:       c.Address,
		ContactNumber: c.Contact,
		StartTime:     c.Open,
		EndTime:       c.Close,
		Lat:           c.Lat,
		Long:          c.Long,
	})
}

// RestaurantSetMenusCmd replaces the restaurant's menu set wholesale.
type RestaurantSetMenusCmd struct {
	ID      string   `arg:"" help:"Restaurant ID."`
	MenuIDs []string `arg:"" help:"Menu IDs forming the new set."`
}

func (c *RestaurantSetMenusCmd) Run(ctx *Context) error {
	menuIDs := c.MenuIDs
	return ctx.Restaurants.UpdateRestaurant(ctx.Ctx, c.ID, models.RestaurantUpdate{
		MenuIDs: &menuIDs,
	})
}

// RestaurantAddMenusCmd appends menu IDs with set-union semantics.
type RestaurantAddMenusCmd struct {
	ID      string   `arg:"" help:"Restaurant ID."`
	MenuIDs []string `arg:"" help:"Menu IDs to add."`
}

func (c *RestaurantAddMenusCmd) Run(ctx *Context) error {
	return ctx.Restaurants.AppendMenuIDs(ctx.Ctx, c.ID, c.MenuIDs)
}

// RestaurantShowCmd prints one restaurant as JSON.
type RestaurantShowCmd struct {
	ID string `arg:"" help:"Restaurant ID."`
}

func (c *RestaurantShowCmd) Run(ctx *Context) error {
	restaurant, err := ctx.Restaurants.GetRestaurant(ctx.Ctx, c.ID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(restaurant)
}
