// Package database loads a generated dataset into MySQL, PostgreSQL or
// SQLite through gorm.
package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows per INSERT during import
const DefaultBatchSize = 500

// Store wraps a gorm connection to the Toolshop schema
type Store struct {
	db     *gorm.DB
	cfg    *config.DatabaseConfig
	logger *zap.Logger
	// mu serialises Import and Reset
	mu sync.Mutex
}

// Open connects to the configured database
func Open(cfg *config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, cfg: cfg, logger: logger}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the nine tables
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(model.Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Import inserts ds in dependency order inside one transaction and returns
// the rows inserted per table. Nothing is kept when any insert fails.
func (s *Store) Import(ctx context.Context, ds *model.Dataset) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	counts := ds.Counts()
	inserted := make(map[string]int, len(model.Tables))

	err := s.inTx(ctx, func(txCtx context.Context) error {
		if s.cfg.Reset {
			if err := s.reset(txCtx); err != nil {
				return err
			}
		}
		for _, table := range model.Tables {
			if counts[table] == 0 {
				continue
			}
			if err := s.conn(txCtx).CreateInBatches(ds.Rows(table), batch).Error; err != nil {
				return fmt.Errorf("insert %s: %w", table, err)
			}
			inserted[table] = counts[table]
			s.logger.Debug("imported table", zap.String("table", table), zap.Int("rows", counts[table]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// Reset deletes every row of the nine tables in reverse dependency order
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTx(ctx, s.reset)
}

func (s *Store) reset(ctx context.Context) error {
	models := model.Models()
	for i := len(models) - 1; i >= 0; i-- {
		res := s.conn(ctx).Where("1 = 1").Delete(models[i])
		if res.Error != nil {
			return fmt.Errorf("reset %s: %w", model.Tables[i], res.Error)
		}
		s.logger.Debug("cleared table", zap.String("table", model.Tables[i]), zap.Int64("rows", res.RowsAffected))
	}
	return nil
}

// Counts returns the number of rows per table
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(model.Tables))
	for i, m := range model.Models() {
		var n int64
		if err := s.conn(ctx).Model(m).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", model.Tables[i], err)
		}
		out[model.Tables[i]] = n
	}
	return out, nil
}
