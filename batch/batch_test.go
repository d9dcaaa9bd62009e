package batch_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtree/batch"
	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/ted"
	"github.com/katalvlaran/lvtree/tree"
)

// BatchSuite shares a small corpus of rooted and unrooted trees.
type BatchSuite struct {
	suite.Suite
	rooted   []*tree.Rooted[string]
	unrooted []*tree.Unrooted[int]
}

func (s *BatchSuite) SetupSuite() {
	for seed := int64(1); seed <= 8; seed++ {
		r, err := builder.BuildRooted(builder.RandomTree(6+int(seed)), 0,
			builder.WithSeed(seed), builder.WithLabelFn(builder.ModLabel(3)))
		s.Require().NoError(err)
		s.rooted = append(s.rooted, r)
	}

	build := func(c builder.Constructor, seed int64) *tree.Unrooted[int] {
		u, err := builder.BuildTree(c, builder.WithSeed(seed))
		s.Require().NoError(err)
		return u
	}
	s.unrooted = []*tree.Unrooted[int]{
		build(builder.Path(6), 1),                    // 0: path
		build(builder.Star(6), 1),                    // 1: star
		build(builder.Permuted(builder.Path(6)), 7),  // 2: path
		build(builder.Caterpillar(3, 1), 1),          // 3: caterpillar
		build(builder.Permuted(builder.Star(6)), 9),  // 4: star
		build(builder.Permuted(builder.Path(6)), 11), // 5: path
		build(builder.Path(7), 1),                    // 6: longer path
	}
}

func TestBatchSuite(t *testing.T) {
	suite.Run(t, new(BatchSuite))
}

// TestPairwiseDistances agrees with ted.Distance for any worker count.
func (s *BatchSuite) TestPairwiseDistances() {
	for _, workers := range []int{1, 3, 16} {
		dist, err := batch.PairwiseDistances(context.Background(), s.rooted, batch.WithWorkers(workers))
		s.Require().NoError(err)
		s.Require().Len(dist, len(s.rooted))
		for i := range s.rooted {
			s.Equal(0, dist[i][i])
			for j := range s.rooted {
				s.Equal(dist[i][j], dist[j][i])
				if i < j {
					want, err := ted.Distance(s.rooted[i], s.rooted[j])
					s.Require().NoError(err)
					s.Equal(want, dist[i][j], "pair %d,%d", i, j)
				}
			}
		}
	}
}

// TestIsomorphismClasses groups generated shapes.
func (s *BatchSuite) TestIsomorphismClasses() {
	classes, err := batch.IsomorphismClasses(context.Background(), s.unrooted, batch.WithWorkers(2))
	s.Require().NoError(err)
	s.Equal([][]int{{0, 2, 5}, {1, 4}, {3}, {6}}, classes)
}

// TestSearch finds the targets containing a two-leaf pattern.
func (s *BatchSuite) TestSearch() {
	star, err := builder.BuildRooted(builder.Star(4), 0, builder.WithLabelFn(builder.ConstLabel("x")))
	s.Require().NoError(err)
	path, err := builder.BuildRooted(builder.Path(4), 0, builder.WithLabelFn(builder.ConstLabel("x")))
	s.Require().NoError(err)
	cherry, err := tree.NewRooted(tree.N("x", tree.N("x"), tree.N("x")))
	s.Require().NoError(err)

	hits, err := batch.Search(context.Background(), cherry, []*tree.Rooted[string]{path, star, cherry})
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, hits)

	hits, err = batch.Search(context.Background(), star, []*tree.Rooted[string]{path})
	s.Require().NoError(err)
	s.Empty(hits)
}

// TestProgressAndLogging observes the hook and the debug log.
func (s *BatchSuite) TestProgressAndLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var calls, last atomic.Int64

	_, err := batch.PairwiseDistances(context.Background(), s.rooted,
		batch.WithLogger(logger),
		batch.WithProgress(func(done, total int) {
			calls.Add(1)
			last.Store(int64(done))
			s.Equal(len(s.rooted)*(len(s.rooted)-1)/2, total)
		}),
	)
	s.Require().NoError(err)

	pairs := int64(len(s.rooted) * (len(s.rooted) - 1) / 2)
	s.Equal(pairs, calls.Load())
	s.Equal(pairs, last.Load())
	s.Contains(buf.String(), "batch: start")
	s.Contains(buf.String(), "batch: done")
	s.Contains(buf.String(), "op=pairwise")
	s.Equal(int(pairs), strings.Count(buf.String(), "batch: task start"))
	s.Equal(int(pairs), strings.Count(buf.String(), "batch: task done"))
	s.Contains(buf.String(), "task=0")
	s.Contains(buf.String(), fmt.Sprintf("task=%d", pairs-1))
}

// TestOptionViolation rejects a non-positive worker count before any work.
func TestOptionViolation(t *testing.T) {
	_, err := batch.PairwiseDistances[string](context.Background(), nil, batch.WithWorkers(0))
	assert.ErrorIs(t, err, batch.ErrOptionViolation)

	_, err = batch.Search[string](context.Background(), nil, nil, batch.WithWorkers(-2))
	assert.ErrorIs(t, err, batch.ErrOptionViolation)
}

// TestInvalidTrees reports the offending index.
func TestInvalidTrees(t *testing.T) {
	ok, err := tree.NewRooted(tree.N("a"))
	require.NoError(t, err)

	_, err = batch.PairwiseDistances(context.Background(), []*tree.Rooted[string]{ok, nil})
	assert.ErrorIs(t, err, tree.ErrInvalidTree)
	assert.Contains(t, err.Error(), "tree 1")

	_, err = batch.Search(context.Background(), nil, []*tree.Rooted[string]{ok})
	assert.ErrorIs(t, err, tree.ErrInvalidTree)
	assert.Contains(t, err.Error(), "pattern")

	_, err = batch.IsomorphismClasses(context.Background(), []*tree.Unrooted[int]{nil})
	assert.ErrorIs(t, err, tree.ErrInvalidTree)
}

// TestCancelled returns the context error.
func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trees := make([]*tree.Rooted[string], 4)
	for i := range trees {
		r, err := builder.BuildRooted(builder.Path(5), 0)
		require.NoError(t, err)
		trees[i] = r
	}
	_, err := batch.PairwiseDistances(ctx, trees)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEmptyCorpus returns empty results.
func TestEmptyCorpus(t *testing.T) {
	dist, err := batch.PairwiseDistances[string](context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, dist)

	classes, err := batch.IsomorphismClasses[int](context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, classes)
}
