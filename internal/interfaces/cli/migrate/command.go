package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/logger"
)

var steps int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, roll them back, or show the current migration status.`,
	}

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{Level: cfg.Logger.Level, OutputPath: cfg.Logger.OutputPath}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	return migration.NewManager(&cfg.Database).Migrate(database.Get(), migration.AutoMigrateModels()...)
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptsStrategy(cfg)
	if err != nil {
		return err
	}

	return strategy.Rollback(database.Get(), steps)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := scriptsStrategy(cfg)
	if err != nil {
		return err
	}

	version, dirty, ok, err := strategy.Version(database.Get())
	if err != nil {
		return err
	}

	switch {
	case !ok:
		fmt.Println("No migrations applied yet.")
	case dirty:
		fmt.Printf("Current version: %d (dirty)\n", version)
	default:
		fmt.Printf("Current version: %d\n", version)
	}

	return nil
}

// scriptsStrategy guards the subcommands that only make sense for the
// versioned SQL scripts. AutoMigrate has no version to report or undo.
func scriptsStrategy(cfg *config.Config) (*migration.GolangMigrateStrategy, error) {
	if cfg.Database.Migration != "scripts" || cfg.Database.Driver == "sqlite" {
		return nil, fmt.Errorf("command requires database.migration=scripts with a mysql database")
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	return migration.NewGolangMigrateStrategy(scriptsPath), nil
}
