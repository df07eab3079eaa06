package services

import (
	"context"

	"github.com/irfndi/oddsframe/internal/goals"
	"github.com/irfndi/oddsframe/internal/pipeline"
)

// GoalService computes goal distributions over query results.
type GoalService struct {
	queries *QueryService
}

// NewGoalService creates a goal service backed by queries.
func NewGoalService(queries *QueryService) *GoalService {
	return &GoalService{queries: queries}
}

// Distribution runs spec, if it has steps, and computes the goal
// distribution of the result.
func (s *GoalService) Distribution(ctx context.Context, spec pipeline.Spec) (*goals.Distribution, error) {
	ds := s.queries.Dataset()
	if len(spec.Steps) > 0 {
		res, err := s.queries.Query(ctx, spec)
		if err != nil {
			return nil, err
		}
		ds = res.Dataset
	}
	return goals.Compute(ds)
}
