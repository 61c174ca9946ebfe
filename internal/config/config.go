// Package config loads the YAML description of a spline consumed by
// splinesample.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"honnef.co/go/spline/internal/log"
)

// SplineConfig describes the spline to build. Which fields matter depends
// on Kind.
type SplineConfig struct {
	// Kind is one of "catrom", "nurbs" and "bezier".
	Kind string `yaml:"kind"`
	// Points holds the control points. All points must have the same
	// number of coordinates, either 2 or 3.
	Points [][]float64 `yaml:"points"`
	// Knots are optional for catrom and nurbs.
	Knots   []float64 `yaml:"knots,omitempty"`
	Weights []float64 `yaml:"weights,omitempty"` // nurbs only
	Degree  int       `yaml:"degree"`            // nurbs only
	Alpha   float64   `yaml:"alpha"`             // catrom only
	// Endpoints is the catrom endpoint mode: "none", "extrapolate" or
	// "collapse".
	Endpoints string `yaml:"endpoints"`
	// Closed selects closed uniform knots for nurbs without explicit knots.
	Closed bool `yaml:"closed"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Options converts the logging configuration for log.Init.
func (l LoggingConfig) Options() log.Options {
	return log.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}

// File is the top-level configuration document.
type File struct {
	ConfigVersion int           `yaml:"config_version"`
	Spline        SplineConfig  `yaml:"spline"`
	Samples       int           `yaml:"samples"`
	Output        string        `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the configuration applied before the file is read.
func Defaults() File {
	return File{
		ConfigVersion: 1,
		Spline: SplineConfig{
			Alpha:     0.5,
			Degree:    3,
			Endpoints: "extrapolate",
		},
		Samples: 100,
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// EnvSamples overrides the number of samples. The logging fields are
// overridden by the variables named in package log.
const EnvSamples = "SPLINE_SAMPLES"

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// SchemaError lists every violation of the configuration schema.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "config: invalid document: " + strings.Join(e.Errors, "; ")
}

// Load reads and parses the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates a YAML document against the schema and decodes it on top
// of Defaults. Environment overrides are applied last.
func Parse(data []byte) (File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	schema, err := loadSchema()
	if err != nil {
		return File{}, fmt.Errorf("config: schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	if !res.Valid() {
		serr := &SchemaError{}
		for _, e := range res.Errors() {
			serr.Errors = append(serr.Errors, e.String())
		}
		return File{}, serr
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *File) {
	if v := strings.TrimSpace(os.Getenv(EnvSamples)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Samples = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(log.EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(log.EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(log.EnvLogSource)); v != "" {
		cfg.Logging.Source = log.ParseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(log.EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// Dimensions returns the number of coordinates shared by all points, or an
// error if they disagree.
func (s SplineConfig) Dimensions() (int, error) {
	if len(s.Points) == 0 {
		return 0, fmt.Errorf("config: spline has no points")
	}
	n := len(s.Points[0])
	for i, p := range s.Points {
		if len(p) != n {
			return 0, fmt.Errorf("config: point %d has %d coordinates, want %d", i, len(p), n)
		}
	}
	return n, nil
}
