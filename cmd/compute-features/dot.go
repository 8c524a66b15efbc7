// SPDX-License-Identifier: MIT
package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gml4tdm/linkfeatures/converters"
	"github.com/gml4tdm/linkfeatures/dataset/odem"
)

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <file.odem>",
		Short: "Render an ODEM dependency graph as Graphviz DOT",
		Long: `dot loads one ODEM file at the selected granularity and writes the graph
in Graphviz DOT to standard output. Self-dependencies are not drawn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			granularity, err := odem.ParseGranularity(cfg.Granularity)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

			g, _, err := odem.LoadFile(args[0], odem.WithGranularity(granularity), odem.WithLogger(logger))
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}
			out, err := converters.MarshalDOT(g, name)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().String("name", "", "DOT graph name (default: file name without extension)")

	return cmd
}
