package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sbdlabs/sbd/internal/cli"
	"github.com/sbdlabs/sbd/internal/config"
	"github.com/sbdlabs/sbd/internal/service"
	"github.com/sbdlabs/sbd/internal/storage"
	"github.com/sbdlabs/sbd/internal/storage/mongo"
	"github.com/sbdlabs/sbd/internal/storage/sqlite"
	"github.com/sbdlabs/sbd/pkg/logging"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (overrides sbd_config.json discovery)." type:"path"`

	Expense struct {
		Add cli.ExpenseAddCmd `cmd:"" help:"Record an expense."`
	} `cmd:"" help:"Track expenses."`

	Goal struct {
		Create cli.GoalCreateCmd `cmd:"" help:"Create a goal."`
	} `cmd:"" help:"Track goals."`

	Restaurant struct {
		Add      cli.RestaurantAddCmd      `cmd:"" help:"Add a restaurant."`
		Update   cli.RestaurantUpdateCmd   `cmd:"" help:"Update restaurant fields."`
		SetMenus cli.RestaurantSetMenusCmd `cmd:"" name:"set-menus" help:"Replace the menu set."`
		AddMenus cli.RestaurantAddMenusCmd `cmd:"" name:"add-menus" help:"Append menu IDs (no duplicates)."`
		Show     cli.RestaurantShowCmd     `cmd:"" help:"Show a restaurant as JSON."`
	} `cmd:"" help:"Manage restaurants."`
}

// openStore builds the storage backend selected in the config.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return mongo.New(connectCtx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	default:
		return sqlite.New(cfg.Storage.SQLite.Path)
	}
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("sbd"),
		kong.Description("Personal life tracker: expenses, goals, restaurants."),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	var (
		cfg *config.Config
		err error
	)
	if CLI.Config != "" {
		cfg, err = config.Load(CLI.Config)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// LOG_LEVEL env wins over the config file
	if os.Getenv("LOG_LEVEL") != "" {
		logging.Setup()
	} else {
		logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Debug("Storage initialized", "backend", cfg.Storage.Backend)

	appCtx := &cli.Context{
		Ctx:         ctx,
		Expenses:    service.NewExpenseService(store),
		Goals:       service.NewGoalService(store),
		Restaurants: service.NewRestaurantService(store),
	}

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
