// SPDX-License-Identifier: MIT
// Package config: Config type, loading and validation.
//
// Sources, in increasing precedence:
//   - Default(): the literal constants of the feature models.
//   - a YAML file (Load), strictly decoded: unknown keys are errors.
//   - command-line flags, applied by the caller.
//
// Validate must be called after the last override.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gml4tdm/linkfeatures/core"
	"github.com/gml4tdm/linkfeatures/matrix"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	// Workers bounds concurrent pair scoring per graph; 0 means GOMAXPROCS.
	Workers      int    `yaml:"workers" validate:"gte=0"`
	Granularity  string `yaml:"granularity" validate:"oneof=package class"`
	GraphPattern string `yaml:"graph_pattern" validate:"required"`
	// FailFast stops the run at the first failing graph instead of
	// logging it and moving on.
	FailFast    bool   `yaml:"fail_fast"`
	MetricsFile string `yaml:"metrics_file"`

	Katz    KatzConfig    `yaml:"katz"`
	SimRank SimRankConfig `yaml:"simrank"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// KatzConfig parameterises the Katz index.
type KatzConfig struct {
	Beta float64 `yaml:"beta" validate:"finite"`
}

// SimRankConfig parameterises the SimRank iteration.
type SimRankConfig struct {
	Damping       float64 `yaml:"damping" validate:"finite,gt=0,lte=1"`
	Tolerance     float64 `yaml:"tolerance" validate:"finite,gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
}

// OutputConfig selects where feature tables go.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=json sqlite"`
	Pretty bool   `yaml:"pretty"`
	// SQLite is the database path used when Format is "sqlite".
	SQLite string `yaml:"sqlite" validate:"required_if=Format sqlite"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Granularity:  "package",
		GraphPattern: "*.odem",
		Katz:         KatzConfig{Beta: matrix.DefaultKatzBeta},
		SimRank: SimRankConfig{
			Damping:       matrix.DefaultSimRankDamping,
			Tolerance:     matrix.DefaultSimRankTolerance,
			MaxIterations: matrix.DefaultSimRankMaxIterations,
		},
		Output: OutputConfig{Format: "json", Pretty: true, SQLite: "features.sqlite"},
		Log:    LogConfig{Level: "info", Format: "auto"},
	}
}

// Load reads path over Default(). The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: %v violates %s", fe.Namespace(), fe.Value(), rule))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// CoreOptions translates the numeric parameters into Graph options.
// cfg must be valid.
func (c Config) CoreOptions() []core.Option {
	return []core.Option{
		core.WithKatzBeta(c.Katz.Beta),
		core.WithSimRankDamping(c.SimRank.Damping),
		core.WithSimRankTolerance(c.SimRank.Tolerance),
		core.WithSimRankMaxIterations(c.SimRank.MaxIterations),
	}
}

// SlogLevel maps Level onto slog; unknown names map to Info.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report yaml names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}

	return v
}
