package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/spline/internal/log"
)

const catromDoc = `
spline:
  kind: catrom
  points:
    - [0, 0]
    - [1, 2]
    - [3, 2.5]
  endpoints: collapse
samples: 16
logging:
  level: debug
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSamples, log.EnvLogLevel, log.EnvLogFormat, log.EnvLogSource, log.EnvLogFile} {
		t.Setenv(k, "")
	}
}

func TestParse(t *testing.T) {
	clearEnv(t)
	cfg, err := Parse([]byte(catromDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.Spline.Kind = "catrom"
	want.Spline.Points = [][]float64{{0, 0}, {1, 2}, {3, 2.5}}
	want.Spline.Endpoints = "collapse"
	want.Samples = 16
	want.Logging.Level = "debug"
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
	n, err := cfg.Spline.Dimensions()
	if err != nil || n != 2 {
		t.Errorf("Dimensions() = %d, %v, want 2", n, err)
	}
}

func TestParseSchemaViolations(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing spline", "samples: 3\n", "spline"},
		{"unknown kind", "spline: {kind: bspline, points: [[0, 0], [1, 1]]}\n", "spline.kind"},
		{"unknown field", "spline: {kind: catrom, points: [[0, 0], [1, 1]]}\ncolour: red\n", "colour"},
		{"one point", "spline: {kind: catrom, points: [[0, 0]]}\n", "spline.points"},
		{"4d point", "spline: {kind: catrom, points: [[0, 0, 0, 0], [1, 1, 1, 1]]}\n", "spline.points"},
		{"zero weight", "spline: {kind: nurbs, points: [[0, 0], [1, 1]], weights: [1, 0]}\n", "spline.weights"},
		{"degree", "spline: {kind: nurbs, points: [[0, 0], [1, 1]], degree: 11}\n", "spline.degree"},
		{"empty", "", "spline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var serr *SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("got error %v, want *SchemaError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q doesn't mention %q", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("spline: [")); err == nil {
		t.Error("malformed YAML was accepted")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSamples, "7")
	t.Setenv(log.EnvLogFormat, "JSON")
	t.Setenv(log.EnvLogSource, "on")
	cfg, err := Parse([]byte(catromDoc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 7 {
		t.Errorf("Samples = %d, want 7", cfg.Samples)
	}
	want := log.Options{Level: "debug", Format: "json", AddSource: true}
	if d := cmp.Diff(want, cfg.Logging.Options()); d != "" {
		t.Error(d)
	}

	t.Setenv(EnvSamples, "not a number")
	cfg, err = Parse([]byte(catromDoc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 16 {
		t.Errorf("invalid override changed Samples to %d", cfg.Samples)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "spline.yaml")
	if err := os.WriteFile(path, []byte(catromDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Spline.Kind != "catrom" {
		t.Errorf("Kind = %q", cfg.Spline.Kind)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want not-exist", err)
	}
}

func TestDimensions(t *testing.T) {
	s := SplineConfig{Points: [][]float64{{0, 0, 0}, {1, 1}}}
	if _, err := s.Dimensions(); err == nil {
		t.Error("mixed dimensions were accepted")
	}
	if _, err := (SplineConfig{}).Dimensions(); err == nil {
		t.Error("empty point list was accepted")
	}
}
