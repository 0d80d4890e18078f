package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// Manager picks the strategy for an environment and driver. Development,
// test and SQLite databases are auto-migrated; MySQL uses goose and
// PostgreSQL uses golang-migrate.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment, driver string, log logger.Interface) *Manager {
	return NewManagerWithStrategy(SelectStrategy(environment, driver, log), log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func SelectStrategy(environment, driver string, log logger.Interface) Strategy {
	switch {
	case driver == "sqlite":
		return NewGormAutoMigrateStrategy(log)
	case strings.EqualFold(environment, constants.EnvDevelopment):
		return NewGormAutoMigrateStrategy(log)
	case driver == "postgres":
		return NewGolangMigrateStrategy(log)
	default:
		return NewGooseStrategy(log)
	}
}

func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Versioned returns the strategy when it tracks script versions.
func (m *Manager) Versioned() (Versioned, bool) {
	v, ok := m.strategy.(Versioned)
	return v, ok
}
