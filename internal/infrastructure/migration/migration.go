package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// Manager handles database migrations with different strategies.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy from the database configuration: "scripts"
// runs the versioned SQL migrations, everything else falls back to gorm
// AutoMigrate. Sqlite always auto-migrates; the scripts are MySQL DDL.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	var strategy Strategy

	if cfg.Migration == "scripts" && cfg.Driver != "sqlite" {
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	} else {
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy.
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}
