// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree
//
// cmd_batch.go — corpus commands: pairwise, classes, search.

package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/batch"
)

func (a *app) batchOptions(workers int) []batch.Option {
	return []batch.Option{batch.WithWorkers(workers), batch.WithLogger(a.log)}
}

func newPairwiseCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "pairwise FILE...",
		Short: "Print the edit-distance matrix of every document",
		Long: `Reads all documents from all files and prints a tab-separated distance
matrix preceded by a header of document names.

Examples:
  lvtree pairwise corpus.yaml
  lvtree pairwise a.yaml b.yaml c.yaml --workers 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.readDocs(args...)
			if err != nil {
				return err
			}
			trees, err := rootedAll(docs)
			if err != nil {
				return err
			}
			dist, err := batch.PairwiseDistances(cmd.Context(), trees, a.batchOptions(workers)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := lo.Map(docs, func(d namedDoc, _ int) string { return d.name })
			fmt.Fprintln(out, "\t"+strings.Join(names, "\t"))
			for i, row := range dist {
				cells := lo.Map(row, func(d int, _ int) string { return strconv.Itoa(d) })
				fmt.Fprintln(out, names[i]+"\t"+strings.Join(cells, "\t"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent engine calls")
	return cmd
}

func newClassesCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "classes FILE...",
		Short: "Group documents into isomorphism classes",
		Long: `Prints one line per class listing the names of mutually isomorphic trees.

Examples:
  lvtree classes corpus.yaml --workers 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.readDocs(args...)
			if err != nil {
				return err
			}
			trees, err := unrootedAll(docs)
			if err != nil {
				return err
			}
			classes, err := batch.IsomorphismClasses(cmd.Context(), trees, a.batchOptions(workers)...)
			if err != nil {
				return err
			}
			for _, c := range classes {
				names := lo.Map(c, func(idx int, _ int) string { return docs[idx].name })
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent engine calls")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "search PATTERN FILE...",
		Short: "List the documents that contain PATTERN",
		Long: `Runs containment of PATTERN against every document and prints the names
of the matching ones.

Examples:
  lvtree search pattern.yaml corpus.yaml`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := a.readRooted(args[0])
			if err != nil {
				return err
			}
			docs, err := a.readDocs(args[1:]...)
			if err != nil {
				return err
			}
			targets, err := rootedAll(docs)
			if err != nil {
				return err
			}
			hits, err := batch.Search(cmd.Context(), pattern, targets, a.batchOptions(workers)...)
			if err != nil {
				return err
			}
			for _, i := range hits {
				fmt.Fprintln(cmd.OutOrStdout(), docs[i].name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent engine calls")
	return cmd
}
