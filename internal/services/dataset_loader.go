package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/irfndi/oddsframe/internal/config"
	"github.com/irfndi/oddsframe/internal/database"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/logging"
)

// ErrNoDatabase is returned when a Postgres dataset is requested without a pool.
var ErrNoDatabase = errors.New("dataset source is postgres but no database is configured")

// LoadDataset reads the match table from the configured source. pool is
// only used for the postgres source.
func LoadDataset(ctx context.Context, cfg config.DatasetConfig, pool database.DatabasePool, logger *logrus.Logger) (*dataset.Dataset, error) {
	log := logging.Wrap(logger)
	start := time.Now()

	var (
		ds  *dataset.Dataset
		err error
	)
	switch cfg.Source {
	case config.SourceCSV:
		ds, err = loadCSV(cfg.Path)
	case config.SourcePostgres:
		if pool == nil {
			return nil, ErrNoDatabase
		}
		ds, err = database.NewMatchRepository(pool, cfg.Table, logger).Load(ctx)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", cfg.Name, err)
	}

	log.WithDataset(cfg.Name).WithFields(logrus.Fields{
		"source":      cfg.Source,
		"rows":        ds.Nrow(),
		"columns":     ds.Ncol(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Dataset loaded")
	return ds, nil
}

func loadCSV(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadCSV(f)
}
