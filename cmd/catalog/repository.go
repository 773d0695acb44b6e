package main

import (
	"fmt"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
	"github.com/tair/product-catalog/internal/config"
	"github.com/tair/product-catalog/pkg/database"
	"github.com/tair/product-catalog/pkg/logger"
)

// openRepository returns the configured catalog source wrapped with tracing.
// The returned func releases the underlying connection.
func openRepository(cfg *config.Config) (domain.ProductRepository, func(), error) {
	if cfg.DataSource == config.DataSourceSeed {
		logger.Logger.Info().Msg("Serving built-in sample catalog")
		return repository.NewTracingProductRepository(repository.NewSeedProductRepository(), cfg.DataSource), func() {}, nil
	}

	repo, closeDB, err := openGormRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewTracingProductRepository(repo, cfg.DataSource), closeDB, nil
}

func openGormRepository(cfg *config.Config) (*repository.GormProductRepository, func(), error) {
	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	repo := repository.NewGormProductRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Logger.Info().Str("database", cfg.DBName).Msg("Database initialized successfully")
	return repo, func() { sqlDB.Close() }, nil
}
