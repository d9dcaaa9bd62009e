// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree
//
// cmd_gen.go — tree generators.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/treeio"
)

// genFlags are shared by every gen subcommand.
type genFlags struct {
	n      int
	seed   int64
	root   int
	rooted bool
	labels string
}

func (f *genFlags) options() ([]builder.BuilderOption, error) {
	opts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	switch f.labels {
	case "":
	case "decimal":
		opts = append(opts, builder.WithLabelFn(builder.DecimalLabel))
	case "letter":
		opts = append(opts, builder.WithLabelFn(builder.LetterLabel))
	case "hex":
		opts = append(opts, builder.WithLabelFn(builder.HexLabel))
	default:
		return nil, fmt.Errorf("--labels: unknown scheme %q", f.labels)
	}
	return opts, nil
}

func newGenCmd(a *app) *cobra.Command {
	f := &genFlags{}
	var legs, k, depth int

	cmd := &cobra.Command{
		Use:   "gen KIND",
		Short: "Generate a tree document",
		Long: `Writes a generated tree as a YAML document to stdout.

Kinds:
  path         -n nodes in a line
  star         hub plus -n-1 leaves
  caterpillar  spine of -n nodes with --legs leaves each
  kary         complete --k-ary tree of depth --depth
  random       uniform random tree on -n nodes (--seed)

Examples:
  lvtree gen random -n 20 --seed 7
  lvtree gen kary --k 2 --depth 3 --rooted --labels letter`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "star", "caterpillar", "kary", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var con builder.Constructor
			switch args[0] {
			case "path":
				con = builder.Path(f.n)
			case "star":
				con = builder.Star(f.n)
			case "caterpillar":
				con = builder.Caterpillar(f.n, legs)
			case "kary":
				con = builder.KAry(k, depth)
			case "random":
				con = builder.RandomTree(f.n)
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			a.log.Debug("generate", "kind", args[0], "n", f.n, "seed", f.seed)

			out := cmd.OutOrStdout()
			if f.rooted {
				r, err := builder.BuildRooted(con, f.root, opts...)
				if err != nil {
					return err
				}
				return treeio.EncodeRooted(out, r)
			}
			u, err := builder.BuildTree(con, opts...)
			if err != nil {
				return err
			}
			return treeio.EncodeUnrooted(out, u)
		},
	}
	cmd.Flags().IntVarP(&f.n, "nodes", "n", 10, "node count (spine length for caterpillar)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&f.rooted, "rooted", false, "emit a rooted document")
	cmd.Flags().IntVar(&f.root, "root", 0, "root node for --rooted")
	cmd.Flags().StringVar(&f.labels, "labels", "", "label scheme: decimal|letter|hex (default unlabeled)")
	cmd.Flags().IntVar(&legs, "legs", 1, "leaves per spine node (caterpillar)")
	cmd.Flags().IntVar(&k, "k", 2, "arity (kary)")
	cmd.Flags().IntVar(&depth, "depth", 3, "depth, 0 is a single node (kary)")
	return cmd
}
