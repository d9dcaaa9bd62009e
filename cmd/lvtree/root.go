// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree
//
// root.go — root command, persistent flags and logger setup.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	logLevel  string
	logFormat string
	log       *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "lvtree",
		Short: "Compare trees: containment, isomorphism and edit distance",
		Long: `lvtree runs the lvtree engines over trees stored as YAML or JSON documents.

Document kinds:
  rooted    nested {label, children} nodes
  unrooted  nodes + edges (+ optional labels)
  matrix    parent matrix (+ optional labels)

A file may hold several documents separated by "---".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	root.AddCommand(
		newContainsCmd(a),
		newIsoCmd(a),
		newCanonCmd(a),
		newDistanceCmd(a),
		newPairwiseCmd(a),
		newClassesCmd(a),
		newSearchCmd(a),
		newGenCmd(a),
	)
	return root
}

// newLogger builds the stderr logger selected by the persistent flags.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lv}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", format)
	}
}
