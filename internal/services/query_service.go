package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/irfndi/oddsframe/internal/cache"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/pipeline"
)

// QueryResult is the output of a query run.
type QueryResult struct {
	Dataset     *dataset.Dataset
	Fingerprint string
	Cached      bool
	Duration    time.Duration
}

// QueryService runs pipelines against one loaded dataset.
type QueryService struct {
	name   string
	data   *dataset.Dataset
	cache  cache.ResultCache
	logger *logging.StandardLogger
}

// NewQueryService creates a query service over data. A nil resultCache
// disables caching.
func NewQueryService(name string, data *dataset.Dataset, resultCache cache.ResultCache, logger *logrus.Logger) *QueryService {
	if resultCache == nil {
		resultCache = cache.NoopCache{}
	}
	return &QueryService{
		name:   name,
		data:   data,
		cache:  resultCache,
		logger: logging.Wrap(logger),
	}
}

// DatasetName returns the name results are cached under.
func (s *QueryService) DatasetName() string {
	return s.name
}

// Dataset returns the loaded dataset.
func (s *QueryService) Dataset() *dataset.Dataset {
	return s.data
}

// Query builds spec and runs it, serving the result from cache when an
// identical query has already run.
func (s *QueryService) Query(ctx context.Context, spec pipeline.Spec) (*QueryResult, error) {
	p, err := pipeline.Build(spec, pipeline.WithLogger(s.logger.Logger()))
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, p)
}

// Run runs an already built pipeline.
func (s *QueryService) Run(ctx context.Context, p *pipeline.Pipeline) (*QueryResult, error) {
	start := time.Now()
	fp := p.Fingerprint()

	if ds, ok := s.cache.Get(ctx, s.name, fp); ok {
		return &QueryResult{Dataset: ds, Fingerprint: fp, Cached: true, Duration: time.Since(start)}, nil
	}

	ds, err := p.Run(ctx, s.data)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.name, fp, ds); err != nil {
		s.logger.WithComponent("query_service").WithError(err).Warn("Failed to cache query result")
	}

	s.logger.WithDataset(s.name).WithFields(logrus.Fields{
		"fingerprint": fp,
		"steps":       p.Len(),
		"rows":        ds.Nrow(),
		"columns":     ds.Ncol(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Query executed")

	return &QueryResult{Dataset: ds, Fingerprint: fp, Duration: time.Since(start)}, nil
}

// InvalidateCache drops every cached result of the dataset.
func (s *QueryService) InvalidateCache(ctx context.Context) (int, error) {
	n, err := s.cache.Invalidate(ctx, s.name)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return n, nil
}

// CacheStats returns the result cache counters.
func (s *QueryService) CacheStats() cache.ResultCacheStats {
	return s.cache.GetStats()
}
