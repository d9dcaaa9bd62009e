// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree
//
// cmd_compare.go — two-tree commands: contains, iso, canon, distance.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/canon"
	"github.com/katalvlaran/lvtree/subiso"
	"github.com/katalvlaran/lvtree/ted"
)

func newContainsCmd(a *app) *cobra.Command {
	var all, mapping bool
	cmd := &cobra.Command{
		Use:   "contains PATTERN TARGET",
		Short: "Report whether TARGET contains an embedding of PATTERN",
		Long: `Checks unordered subtree containment: some target node must root a copy
of the pattern with labels matching; extra target children are allowed.

Examples:
  lvtree contains pattern.yaml target.yaml
  lvtree contains pattern.yaml target.yaml --all
  lvtree contains pattern.yaml target.yaml --mapping`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := a.readRooted(args[0])
			if err != nil {
				return err
			}
			target, err := a.readRooted(args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case all:
				roots, err := subiso.Roots(pattern, target)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, roots)
			case mapping:
				emb, ok, err := subiso.Find(pattern, target)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, false)
					return nil
				}
				for s, t := range emb.Mapping {
					fmt.Fprintf(out, "%d\t%s\t->\t%d\t%s\n", s, pattern.Label(s), t, target.Label(t))
				}
			default:
				ok, err := subiso.Contains(pattern, target)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ok)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every target node rooting an embedding")
	cmd.Flags().BoolVar(&mapping, "mapping", false, "print the first embedding as pattern key -> target key")
	cmd.MarkFlagsMutuallyExclusive("all", "mapping")
	return cmd
}

func newIsoCmd(a *app) *cobra.Command {
	var structural bool
	cmd := &cobra.Command{
		Use:   "iso A B",
		Short: "Report whether two unrooted trees are isomorphic",
		Long: `Compares canonical forms. Labels count when both trees carry them;
--structural ignores labels entirely.

Examples:
  lvtree iso a.yaml b.yaml
  lvtree iso a.yaml b.yaml --structural`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readUnrooted(args[0])
			if err != nil {
				return err
			}
			y, err := a.readUnrooted(args[1])
			if err != nil {
				return err
			}
			var ok bool
			if structural {
				ok = x.Len() == y.Len() && canon.StructuralForm(x) == canon.StructuralForm(y)
			} else if ok, err = canon.AreIsomorphic(x, y); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&structural, "structural", false, "ignore node labels")
	return cmd
}

func newCanonCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "canon FILE...",
		Short: "Print the canonical signature of every document",
		Long: `Prints node count, center count, hash and canonical form per document.

Examples:
  lvtree canon corpus.yaml
  lvtree canon corpus.yaml --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("--format: unknown format %q", format)
			}
			docs, err := a.readDocs(args...)
			if err != nil {
				return err
			}
			trees, err := unrootedAll(docs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			type entry struct {
				Name            string `yaml:"name"`
				canon.Signature `yaml:",inline"`
			}
			entries := make([]entry, len(trees))
			for i, u := range trees {
				sig, err := canon.Sign(u)
				if err != nil {
					return fmt.Errorf("%s: %w", docs[i].name, err)
				}
				entries[i] = entry{Name: docs[i].name, Signature: sig}
			}

			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return err
				}
				return enc.Close()
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Signature)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|yaml")
	return cmd
}

func newDistanceCmd(a *app) *cobra.Command {
	var insert, del, sub int
	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Print the tree edit distance between two ordered trees",
		Long: `Computes the Zhang–Shasha edit distance. Children keep document order.

Examples:
  lvtree distance a.yaml b.yaml
  lvtree distance a.yaml b.yaml --insert 2 --delete 2 --substitute 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readRooted(args[0])
			if err != nil {
				return err
			}
			y, err := a.readRooted(args[1])
			if err != nil {
				return err
			}
			res, err := ted.Compute(x, y, ted.Costs[string]{
				Insert: func(string) int { return insert },
				Delete: func(string) int { return del },
				Substitute: func(p, q string) int {
					if p == q {
						return 0
					}
					return sub
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Distance())
			return nil
		},
	}
	cmd.Flags().IntVar(&insert, "insert", 1, "cost of inserting a node")
	cmd.Flags().IntVar(&del, "delete", 1, "cost of deleting a node")
	cmd.Flags().IntVar(&sub, "substitute", 1, "cost of relabeling a node")
	return cmd
}
