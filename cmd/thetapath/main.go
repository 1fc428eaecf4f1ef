// Command thetapath answers path queries over a YAML scene.
//
// Usage:
//
//	thetapath -scene room.yaml                   # run the scene's queries
//	thetapath -scene room.yaml -from -4,0.5,-4 -to 4,0.5,-4
//	thetapath -scene room.yaml -format csv -metrics
//
// Without -scene the embedded default scene (an empty 20×20 ground) is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/thetanav/metrics"
	"github.com/katalvlaran/thetanav/scene"
	"github.com/katalvlaran/thetanav/thetastar"
)

// pointRow is one CSV line: a single point of one query's path.
type pointRow struct {
	Query   string  `csv:"query"`
	Outcome string  `csv:"outcome"`
	Index   int     `csv:"index"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Z       float64 `csv:"z"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("thetapath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "Scene YAML file (default: embedded empty scene)")
		from      = fs.String("from", "", "Start point x,y,z; replaces the scene's queries")
		to        = fs.String("to", "", "End point x,y,z (with -from)")
		format    = fs.String("format", "text", "Output format: text or csv")
		withStats = fs.Bool("metrics", false, "Print Prometheus metrics after the run")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "text" && *format != "csv" {
		return fmt.Errorf("unknown -format %q", *format)
	}

	cfg, err := scene.Load(*scenePath)
	if err != nil {
		return err
	}
	if *from != "" || *to != "" {
		q, err := flagQuery(*from, *to)
		if err != nil {
			return err
		}
		cfg.Queries = []scene.QueryConfig{q}
	}

	thetastar.SetLogger(log.New(stderr, "", 0).Printf)
	var (
		reg  = prometheus.NewRegistry()
		opts []thetastar.Option
	)
	if *withStats {
		opts = append(opts, thetastar.WithObserver(metrics.NewCollector(reg)))
	}
	world, err := cfg.Build(opts...)
	if err != nil {
		return err
	}

	results := world.RunQueries()
	switch *format {
	case "csv":
		err = writeCSV(stdout, results)
	default:
		err = writeText(stdout, results)
	}
	if err != nil {
		return err
	}

	if *withStats {
		return metrics.WriteText(stdout, reg)
	}

	return nil
}

func flagQuery(from, to string) (scene.QueryConfig, error) {
	if from == "" || to == "" {
		return scene.QueryConfig{}, errors.New("-from and -to must be given together")
	}
	a, err := parseVec(from)
	if err != nil {
		return scene.QueryConfig{}, fmt.Errorf("-from: %w", err)
	}
	b, err := parseVec(to)
	if err != nil {
		return scene.QueryConfig{}, fmt.Errorf("-to: %w", err)
	}

	return scene.QueryConfig{Name: "cli", From: a, To: b}, nil
}

// parseVec reads "x,y,z".
func parseVec(s string) (scene.Vec3, error) {
	var v scene.Vec3
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}

	return v, nil
}

func writeText(w io.Writer, results []scene.QueryResult) error {
	for _, r := range results {
		res := r.Result
		if _, err := fmt.Fprintf(w, "%s: %s, %d points, length %.3f\n",
			r.Query.Name, res.Outcome, len(res.Path), thetastar.Length(res.Path)); err != nil {
			return err
		}
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "  error: %v\n", r.Err); err != nil {
				return err
			}
		}
		for i, p := range res.Path {
			if _, err := fmt.Fprintf(w, "  %d: (%.3f, %.3f, %.3f)\n", i, p.X, p.Y, p.Z); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeCSV(w io.Writer, results []scene.QueryResult) error {
	var rows []pointRow
	for _, r := range results {
		for i, p := range r.Result.Path {
			rows = append(rows, pointRow{
				Query:   r.Query.Name,
				Outcome: r.Result.Outcome.String(),
				Index:   i,
				X:       p.X,
				Y:       p.Y,
				Z:       p.Z,
			})
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
