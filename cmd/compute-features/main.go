// SPDX-License-Identifier: MIT
// Command compute-features builds link-prediction feature tables.
//
// For every <project>/<project>-<version>.odem under the data directory it
// loads the dependency graph, joins its pairwise topological scores with the
// semantic similarity table of the same version and writes the result next
// to the graph (<project>-<version>.json) or into a SQLite database.
//
// Usage:
//
//	compute-features [flags] <directory>
//	compute-features dot [--granularity class] <file.odem>
//	compute-features show-config [--config file.yaml]
//	compute-features version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "compute-features <directory>",
		Short: "Compute topological and semantic link features for dependency graphs",
		Long: `compute-features scans every project directory under <directory> for ODEM
dependency graphs, pairs each graph with the semantic similarity table of the
same project version, and writes one feature table per graph.

Each ordered pair of distinct vertices that has a semantic row yields eight
topological scores (common neighbours, Salton, Sorensen, Adamic-Adar,
Russel-Rao, resource allocation, Katz, SimRank) and sixteen cosine
similarities.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCompute,
	}

	addGlobalFlags(rootCmd)
	addComputeFlags(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newDotCmd(),
		newShowConfigCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compute-features version %s\n", version)
		},
	}
}

func newShowConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			raw, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
