// Package builder contains unit tests for the configuration primitives
// (builderConfig, BuilderOption and label schemes).
package builder

import (
	"math/rand"
	"testing"
)

// TestLabelOptions verifies label schemes and last-wins option order.
func TestLabelOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.labelFn != nil {
		t.Errorf("default labelFn: expected nil")
	}
	if got := newBuilderConfig().rootedLabel()(7); got != "7" {
		t.Errorf("default rooted label: expected \"7\", got %q", got)
	}

	cases := []struct {
		fn   LabelFn
		idx  int
		want string
	}{
		{DecimalLabel, 42, "42"},
		{LetterLabel, 0, "A"},
		{LetterLabel, 27, "AB"},
		{HexLabel, 255, "ff"},
		{PrefixLabel("n"), 3, "n3"},
		{ConstLabel("x"), 9, "x"},
		{ModLabel(3), 7, "1"},
	}
	for _, tc := range cases {
		if got := newBuilderConfig(WithLabelFn(tc.fn)).labelFn(tc.idx); got != tc.want {
			t.Errorf("label(%d): expected %q, got %q", tc.idx, tc.want, got)
		}
	}

	cfg := newBuilderConfig(WithLabelFn(LetterLabel), WithLabelFn(HexLabel))
	if got := cfg.labelFn(10); got != "a" {
		t.Errorf("last option should win: expected \"a\", got %q", got)
	}
}

// TestRNGOptions verifies that WithSeed is reproducible and WithRand shares
// the caller's stream.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Errorf("default rng: expected nil")
	}

	a := newBuilderConfig(WithSeed(5)).rng.Int63()
	b := newBuilderConfig(WithSeed(5)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected identical draws, got %d and %d", a, b)
	}

	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithRand(r)).rng != r {
		t.Errorf("WithRand: expected the provided *rand.Rand")
	}
}

// TestOptionPanics verifies fail-fast option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, f := range map[string]func(){
		"WithLabelFn(nil)": func() { WithLabelFn(nil) },
		"WithRand(nil)":    func() { WithRand(nil) },
		"ModLabel(0)":      func() { ModLabel(0) },
		"LetterLabel(-1)":  func() { LetterLabel(-1) },
		"HexLabel(-1)":     func() { HexLabel(-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			f()
		}()
	}
}

// TestDecodePrufer checks decoding against hand-computed sequences.
func TestDecodePrufer(t *testing.T) {
	t.Parallel()

	// Prüfer [3 3 3] on 5 nodes is the star centred at 3.
	got := decodePrufer([]int{3, 3, 3}, 5)
	want := [][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 4}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// Prüfer [1 2] on 4 nodes is the path 0-1-2-3.
	got = decodePrufer([]int{1, 2}, 4)
	want = [][2]int{{0, 1}, {1, 2}, {2, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path edge %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
