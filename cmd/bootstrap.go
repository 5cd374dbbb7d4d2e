package cmd

import (
	"context"
	"fmt"
	"os"

	"china-division/core/config"
	"china-division/core/dataset"
	"china-division/core/division"
	"china-division/core/logger"
	"china-division/core/metrics"
	"china-division/core/storage"
	"china-division/data"

	"go.uber.org/zap"
)

// setup loads the configuration from the working directory and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// loadTables reads the revision tables from the configured source.
func loadTables(ctx context.Context, cfg *config.Config) ([]*dataset.Table, error) {
	switch cfg.Dataset.Source {
	case dataset.SourceDir:
		return dataset.LoadFS(os.DirFS(cfg.Dataset.Dir), cfg.Dataset.Layout(), data.SourceDirs...)
	case dataset.SourceBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return dataset.LoadBucket(ctx, client, cfg.Storage.Bucket, cfg.Dataset.Prefix, cfg.Dataset.Layout())
	default:
		return data.Tables()
	}
}

// openResolver builds the immutable dataset and the resolver over it.
func openResolver(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*division.Resolver, error) {
	tables, err := loadTables(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s dataset: %w", cfg.Dataset.Source, err)
	}

	store, err := dataset.New(tables, dataset.WithRecencyKey(dataset.DelimitedRecencyKey(cfg.Dataset.RevisionDelimiter)))
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}

	resolver, err := division.NewResolver(store, data.CurrentRevision)
	if err != nil {
		return nil, err
	}

	metrics.DatasetRevisions.Set(float64(store.Len()))
	logg.Info("Dataset loaded",
		zap.String("source", cfg.Dataset.Source),
		zap.String("current", resolver.Current()),
		zap.Strings("revisions", store.Newest()))

	return resolver, nil
}
