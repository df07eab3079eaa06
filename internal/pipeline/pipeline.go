// Package pipeline runs declarative queries: an ordered list of filter and
// slice steps applied to a dataset.
//
// A query is decoded and validated when it is built, so an invalid token or
// parameter type is reported before any row is read.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/telemetry"
)

// Spec is the serializable form of a query.
type Spec struct {
	Steps []Step `mapstructure:"steps" json:"steps" yaml:"steps"`
}

type stage struct {
	step Step
	op   operation
}

// Pipeline is a built, validated query. It holds no per-run state and can be
// run concurrently.
type Pipeline struct {
	spec        Spec
	stages      []stage
	fingerprint string
	logger      *logrus.Logger
	tracer      trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for step logs.
func WithLogger(logger *logrus.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithTracer sets the tracer used for run and step spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = tracer }
}

// Build decodes and validates every step of spec.
func Build(spec Spec, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		spec:   spec,
		logger: logrus.StandardLogger(),
		tracer: telemetry.GetPipelineTracer(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.stages = make([]stage, 0, len(spec.Steps))
	for i, step := range spec.Steps {
		op, err := step.build()
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.name(), err)
		}
		p.stages = append(p.stages, stage{step: step, op: op})
	}

	fp, err := fingerprint(spec)
	if err != nil {
		return nil, err
	}
	p.fingerprint = fp
	return p, nil
}

// Spec returns the query the pipeline was built from.
func (p *Pipeline) Spec() Spec {
	return p.spec
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Fingerprint identifies the query: equal specs have equal fingerprints
// regardless of parameter key order.
func (p *Pipeline) Fingerprint() string {
	return p.fingerprint
}

// Run applies the steps in order. ds is never modified. An empty pipeline
// returns ds.
func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	ctx, span := telemetry.StartSpan(ctx, p.tracer, "pipeline.run",
		attribute.Int("pipeline.steps", len(p.stages)),
		attribute.String("pipeline.fingerprint", p.fingerprint),
		attribute.Int("dataset.rows", ds.Nrow()),
	)
	defer span.End()

	out := ds
	for i, st := range p.stages {
		if err := ctx.Err(); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		next, err := p.runStage(ctx, i, st, out)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		out = next
	}

	span.SetAttributes(
		attribute.Int("result.rows", out.Nrow()),
		attribute.Int("result.columns", out.Ncol()),
	)
	return out, nil
}

func (p *Pipeline) runStage(ctx context.Context, i int, st stage, in *dataset.Dataset) (*dataset.Dataset, error) {
	_, span := telemetry.StartSpan(ctx, p.tracer, "pipeline.step",
		attribute.Int("step.index", i),
		attribute.String("step.type", string(st.step.Type)),
		attribute.String("step.kind", st.step.Kind),
	)
	defer span.End()

	start := time.Now()
	out, err := st.op.Apply(in)
	if err != nil {
		telemetry.RecordError(span, err)
		p.logger.WithFields(logrus.Fields{
			"step":  i,
			"type":  st.step.Type,
			"kind":  st.step.Kind,
			"error": err.Error(),
		}).Warn("Pipeline step failed")
		return nil, fmt.Errorf("step %d (%s): %w", i, st.step.name(), err)
	}

	span.SetAttributes(
		attribute.Int("step.rows_out", out.Nrow()),
		attribute.Int("step.columns_out", out.Ncol()),
	)
	p.logger.WithFields(logrus.Fields{
		"step":        i,
		"type":        st.step.Type,
		"kind":        st.step.Kind,
		"rows_in":     in.Nrow(),
		"rows_out":    out.Nrow(),
		"columns_out": out.Ncol(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Pipeline step applied")
	return out, nil
}

// fingerprint hashes the canonical JSON of spec. encoding/json sorts map keys.
func fingerprint(spec Spec) (string, error) {
	canonical, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(canonical), 16), nil
}
