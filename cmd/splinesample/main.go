// Command splinesample evaluates a spline described by a YAML file and
// writes evenly spaced samples as CSV.
//
// Usage:
//
//	splinesample -config spline.yaml [-n samples] [-o out.csv]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"honnef.co/go/spline/internal/config"
	"honnef.co/go/spline/internal/log"
)

var (
	configPath = flag.String("config", "", "spline description (YAML)")
	samples    = flag.Int("n", 0, "number of sample intervals; overrides the config")
	output     = flag.String("o", "", "output file; overrides the config, - for stdout")
)

func main() {
	flag.Parse()

	if *configPath == "" || flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "usage: splinesample -config spline.yaml [-n samples] [-o out.csv]\n")
		os.Exit(2)
	}
	if err := run(*configPath, *samples, *output); err != nil {
		log.L().Error("sampling failed", slog.String("config", *configPath), slog.Any("err", err))
		log.Close()
		os.Exit(1)
	}
	log.Close()
}

func run(path string, n int, out string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Init(cfg.Logging.Options())
	l := log.WithComponent("splinesample")

	if n > 0 {
		cfg.Samples = n
	}
	if out != "" {
		cfg.Output = out
	}
	l.Debug("loaded config", slog.String("path", path), slog.String("kind", cfg.Spline.Kind), slog.Int("points", len(cfg.Spline.Points)))

	start := time.Now()
	s, err := build(cfg.Spline)
	if err != nil {
		return err
	}
	log.WithOperation(l, "build").Info("spline ready",
		slog.String("kind", cfg.Spline.Kind),
		slog.Int("dims", s.dims),
		slog.Int("segments", s.segments),
		slog.Float64("u0", s.u0),
		slog.Float64("u1", s.u1))

	var w io.Writer = os.Stdout
	if cfg.Output != "" && cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := s.writeCSV(w, cfg.Samples); err != nil {
		return err
	}
	log.WithOperation(l, "sample").Info("done",
		slog.Int("samples", cfg.Samples+1),
		slog.String("output", cfg.Output),
		slog.Duration("took", time.Since(start)))
	return nil
}
