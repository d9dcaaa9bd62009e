// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// labels.go — deterministic node label schemes.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn maps a node index to its label. Implementations must be pure.
type LabelFn func(idx int) string

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// LetterLabel returns the spreadsheet-column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
func LetterLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// HexLabel returns the lowercase hexadecimal form of idx. Panics if idx < 0.
func HexLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexLabel: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixLabel returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ConstLabel labels every node with s.
func ConstLabel(s string) LabelFn {
	return func(int) string { return s }
}

// ModLabel labels node idx with the decimal form of idx mod k, producing
// repeated labels. Panics if k < 1.
func ModLabel(k int) LabelFn {
	if k < 1 {
		panic(fmt.Sprintf("ModLabel: k must be ≥ 1, got %d", k))
	}
	return func(idx int) string { return strconv.Itoa(idx % k) }
}
