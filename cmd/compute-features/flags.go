// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gml4tdm/linkfeatures/config"
)

const (
	flagConfig          = "config"
	flagGranularity     = "granularity"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagWorkers         = "workers"
	flagGraphPattern    = "graph-pattern"
	flagFailFast        = "fail-fast"
	flagMetricsFile     = "metrics-file"
	flagOutputFormat    = "output-format"
	flagPretty          = "pretty"
	flagSQLite          = "sqlite"
	flagKatzBeta        = "katz-beta"
	flagSimRankDamping  = "simrank-damping"
	flagSimRankTol      = "simrank-tolerance"
	flagSimRankMaxIters = "simrank-max-iterations"
)

// addGlobalFlags declares the flags shared by every subcommand.
func addGlobalFlags(cmd *cobra.Command) {
	def := config.Default()
	pf := cmd.PersistentFlags()
	pf.String(flagConfig, "", "YAML configuration file")
	pf.String(flagGranularity, def.Granularity, "vertex granularity: package or class")
	pf.String(flagLogLevel, def.Log.Level, "log level: debug, info, warn, error")
	pf.String(flagLogFormat, def.Log.Format, "log format: auto, text, json")
}

// addComputeFlags declares the flags of the feature computation itself.
func addComputeFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.Int(flagWorkers, def.Workers, "concurrent source vertices per graph (0 = GOMAXPROCS)")
	f.String(flagGraphPattern, def.GraphPattern, "glob matching graph file names")
	f.Bool(flagFailFast, def.FailFast, "stop at the first graph that fails")
	f.String(flagMetricsFile, def.MetricsFile, "write Prometheus metrics to this textfile")
	f.String(flagOutputFormat, def.Output.Format, "output format: json or sqlite")
	f.Bool(flagPretty, def.Output.Pretty, "indent JSON output")
	f.String(flagSQLite, def.Output.SQLite, "SQLite database path for --output-format sqlite")
	f.Float64(flagKatzBeta, def.Katz.Beta, "Katz damping factor")
	f.Float64(flagSimRankDamping, def.SimRank.Damping, "SimRank decay constant")
	f.Float64(flagSimRankTol, def.SimRank.Tolerance, "SimRank convergence threshold (max-norm)")
	f.Int(flagSimRankMaxIters, def.SimRank.MaxIterations, "SimRank iteration cap")
}

// resolveConfig layers defaults, the optional config file and every flag the
// user set explicitly, then validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()
	if path, _ := flags.GetString(flagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := map[string]override{
		flagGranularity:     setString(&cfg.Granularity),
		flagLogLevel:        setString(&cfg.Log.Level),
		flagLogFormat:       setString(&cfg.Log.Format),
		flagWorkers:         setInt(&cfg.Workers),
		flagGraphPattern:    setString(&cfg.GraphPattern),
		flagFailFast:        setBool(&cfg.FailFast),
		flagMetricsFile:     setString(&cfg.MetricsFile),
		flagOutputFormat:    setString(&cfg.Output.Format),
		flagPretty:          setBool(&cfg.Output.Pretty),
		flagSQLite:          setString(&cfg.Output.SQLite),
		flagKatzBeta:        setFloat(&cfg.Katz.Beta),
		flagSimRankDamping:  setFloat(&cfg.SimRank.Damping),
		flagSimRankTol:      setFloat(&cfg.SimRank.Tolerance),
		flagSimRankMaxIters: setInt(&cfg.SimRank.MaxIterations),
	}
	var err error
	flags.Visit(func(f *pflag.Flag) {
		apply, ok := overrides[f.Name]
		if !ok || err != nil {
			return
		}
		if applyErr := apply(flags, f.Name); applyErr != nil {
			err = fmt.Errorf("--%s: %w", f.Name, applyErr)
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// override copies one flag value into the config.
type override func(fs *pflag.FlagSet, name string) error

func setString(dst *string) override {
	return func(fs *pflag.FlagSet, name string) (err error) {
		*dst, err = fs.GetString(name)
		return err
	}
}

func setInt(dst *int) override {
	return func(fs *pflag.FlagSet, name string) (err error) {
		*dst, err = fs.GetInt(name)
		return err
	}
}

func setBool(dst *bool) override {
	return func(fs *pflag.FlagSet, name string) (err error) {
		*dst, err = fs.GetBool(name)
		return err
	}
}

func setFloat(dst *float64) override {
	return func(fs *pflag.FlagSet, name string) (err error) {
		*dst, err = fs.GetFloat64(name)
		return err
	}
}
