// Command oddsquery applies a query file to a match CSV and writes the
// result as CSV, or the goal distribution of the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/irfndi/oddsframe/internal/config"
	"github.com/irfndi/oddsframe/internal/goals"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/pipeline"
	"github.com/irfndi/oddsframe/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "oddsquery: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	data     string
	query    string
	out      string
	goals    bool
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("oddsquery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.data, "data", "", "Match CSV to query (required)")
	fs.StringVar(&opts.query, "query", "", "Query file (YAML, JSON or TOML). Empty = no steps")
	fs.StringVar(&opts.out, "out", "", "Output file (if not provided, stdout will be used)")
	fs.BoolVar(&opts.goals, "goals", false, "Write the goal distribution of the result as JSON instead of CSV")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.data == "" {
		fs.Usage()
		return opts, errors.New("-data is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(opts.logLevel, "development", stderr)

	var spec pipeline.Spec
	if opts.query != "" {
		spec, err = pipeline.LoadFile(opts.query)
		if err != nil {
			return err
		}
	}
	p, err := pipeline.Build(spec, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	data, err := services.LoadDataset(ctx, config.DatasetConfig{
		Name:   opts.data,
		Source: config.SourceCSV,
		Path:   opts.data,
	}, nil, logger)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, data)
	if err != nil {
		return err
	}

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if opts.goals {
		dist, err := goals.Compute(result)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dist)
	}
	return result.WriteCSV(w)
}
