// SPDX-License-Identifier: MIT

// Command lvtree compares trees stored as YAML or JSON documents.
//
//	lvtree contains pattern.yaml target.yaml
//	lvtree iso a.yaml b.yaml
//	lvtree canon corpus.yaml
//	lvtree distance a.yaml b.yaml
//	lvtree pairwise corpus.yaml --workers 8
//	lvtree classes corpus.yaml
//	lvtree search pattern.yaml corpus.yaml
//	lvtree gen random -n 20 --seed 7
//
// See package treeio for the document format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvtree:", err)
		os.Exit(1)
	}
}
