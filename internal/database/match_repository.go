package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/telemetry"
)

// DatabasePool defines the interface for database pool operations.
// This interface allows for both real pool and mock pool implementations.
type DatabasePool interface {
	// QueryRow executes a query that is expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	// Query executes a query that returns rows.
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// MatchRepository reads the match/odds table.
type MatchRepository struct {
	pool   DatabasePool
	table  string
	logger *logging.StandardLogger
}

// NewMatchRepository creates a repository over table, which may be
// schema-qualified ("public.matches").
func NewMatchRepository(pool DatabasePool, table string, logger *logrus.Logger) *MatchRepository {
	return &MatchRepository{
		pool:   pool,
		table:  table,
		logger: logging.Wrap(logger),
	}
}

func (r *MatchRepository) identifier() string {
	return pgx.Identifier(strings.Split(r.table, ".")).Sanitize()
}

// Count returns the number of rows in the table.
func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	query := "SELECT count(*) FROM " + r.identifier()
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}
	return n, nil
}

// Load reads the whole table into a dataset. Columns keep the table order;
// NULL becomes a missing cell.
func (r *MatchRepository) Load(ctx context.Context) (*dataset.Dataset, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.GetDatabaseTracer(), "database.load_matches",
		attribute.String("db.table", r.table))
	defer span.End()

	start := time.Now()
	rows, err := r.pool.Query(ctx, "SELECT * FROM "+r.identifier())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
	}

	records := [][]string{header}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("failed to read %s row: %w", r.table, err)
		}
		rec := make([]string, len(values))
		for i, v := range values {
			rec[i] = cellText(v)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to iterate %s: %w", r.table, err)
	}

	ds, err := dataset.FromRecords(records)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows", ds.Nrow()))
	r.logger.LogDatabaseOperation("load", r.table, time.Since(start).Milliseconds(), int64(ds.Nrow()))
	return ds, nil
}

// cellText renders a column value the way the CSV export writes it.
func cellText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.UTC().Format("2006-01-02 15:04:05")
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return ""
		}
		return cellText(dv)
	}
	return fmt.Sprint(v)
}
