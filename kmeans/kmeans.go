// SPDX-License-Identifier: MIT

package kmeans

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/startupseg/logging"
	"github.com/katalvlaran/startupseg/matrix"
)

const methodTrain = "Train"

// Result is the best partition found across all restarts.
type Result struct {
	// K is the number of clusters requested.
	K int
	// Assignments[i] is the cluster index in [0, K) of row i.
	Assignments []int
	// Centroids is K × d; row c is the mean of the rows assigned to c.
	Centroids *matrix.Dense
	// Sizes[c] is the number of rows assigned to cluster c.
	Sizes []int
	// Inertia is the sum of squared distances from each row to its centroid.
	Inertia float64
	// Iterations is the number of update cycles run by the winning restart.
	Iterations int
	// Converged reports whether the winning restart stopped because assignments were stable.
	Converged bool
	// Restart is the index of the winning restart.
	Restart int
}

// run is the outcome of one seeded restart.
type run struct {
	labels     []int
	centroids  [][]float64
	inertia    float64
	iterations int
	converged  bool
}

// Train partitions the rows of X into k clusters with Lloyd's algorithm.
//
// Contract:
//   - 1 ≤ k ≤ X.Rows(), otherwise ErrInvalidClusterCount.
//   - X must be finite; a NaN/±Inf fails with matrix.ErrNaNInf.
//   - The same X, k and options always produce the same Result, whatever the parallelism.
//   - Among restarts the lowest inertia wins; ties go to the earliest restart.
//   - ctx is checked before each restart; cancellation returns ctx.Err() wrapped.
//
// Complexity: O(restarts · maxIter · n · k · d) time, O(n + k·d) space per running restart.
func Train(ctx context.Context, X *matrix.Dense, k int, opts ...Option) (*Result, error) {
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTrain, err)
	}
	n, d := X.Rows(), X.Cols()
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("%s: %d×%d: %w", methodTrain, n, d, ErrEmptyMatrix)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d with %d entities: %w", methodTrain, k, n, ErrInvalidClusterCount)
	}
	cfg := newConfig(opts...)

	runs := make([]run, cfg.restarts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for r := 0; r < cfg.restarts; r++ {
		r := r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("restart %d: %w", r, err)
			}
			runs[r] = lloyd(X, k, restartRNG(cfg.seed, r), cfg)
			cfg.log.V(logging.TRACE).Info("restart finished",
				"k", k, "restart", r, "inertia", runs[r].inertia,
				"iterations", runs[r].iterations, "converged", runs[r].converged)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTrain, err)
	}
	// errgroup only cancels gctx on error; a parent cancelled after the last
	// restart started still counts as cancelled.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTrain, err)
	}

	best := 0
	for r := 1; r < len(runs); r++ {
		if runs[r].inertia < runs[best].inertia {
			best = r
		}
	}

	return newResult(k, d, best, runs[best])
}

func newResult(k, d, restart int, w run) (*Result, error) {
	flat := make([]float64, 0, k*d)
	for _, c := range w.centroids {
		flat = append(flat, c...)
	}
	centroids, err := matrix.NewDenseFrom(k, d, flat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTrain, err)
	}
	sizes := make([]int, k)
	for _, c := range w.labels {
		sizes[c]++
	}

	return &Result{
		K:           k,
		Assignments: w.labels,
		Centroids:   centroids,
		Sizes:       sizes,
		Inertia:     w.inertia,
		Iterations:  w.iterations,
		Converged:   w.converged,
		Restart:     restart,
	}, nil
}

// lloyd runs one restart: seed, assign, then alternate update/assign until
// no assignment changes or maxIter update cycles have run.
func lloyd(X *matrix.Dense, k int, rng *rand.Rand, cfg config) run {
	n := X.Rows()
	var centroids [][]float64
	if cfg.init == InitRandom {
		centroids = seedRandom(X, k, rng)
	} else {
		centroids = seedPlusPlus(X, k, rng)
	}

	labels := make([]int, n)
	assign(X, centroids, labels)

	out := run{labels: labels, centroids: centroids}
	for out.iterations < cfg.maxIter {
		out.iterations++
		update(X, labels, centroids)
		if assign(X, centroids, labels) == 0 {
			out.converged = true
			break
		}
	}
	// The final assign may have moved rows after the last update; refresh so
	// every centroid is the mean of its members.
	if !out.converged {
		update(X, labels, centroids)
	}
	out.inertia = inertia(X, centroids, labels)

	return out
}

// assign labels each row with its nearest centroid and returns how many labels changed.
// Ties go to the lowest centroid index.
func assign(X *matrix.Dense, centroids [][]float64, labels []int) int {
	changed := 0
	for i := range labels {
		row := X.RowView(i)
		best, bestD := 0, matrix.SquaredDistance(row, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if dist := matrix.SquaredDistance(row, centroids[c]); dist < bestD {
				best, bestD = c, dist
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed++
		}
	}

	return changed
}

// update moves each non-empty centroid to the mean of its members.
// A centroid whose cluster emptied keeps its previous position.
func update(X *matrix.Dense, labels []int, centroids [][]float64) {
	d := X.Cols()
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, d)
	}
	for i, c := range labels {
		row := X.RowView(i)
		for j := 0; j < d; j++ {
			sums[c][j] += row[j]
		}
		counts[c]++
	}
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		size := float64(counts[c])
		for j := 0; j < d; j++ {
			centroids[c][j] = sums[c][j] / size
		}
	}
}

func inertia(X *matrix.Dense, centroids [][]float64, labels []int) float64 {
	var total float64
	for i, c := range labels {
		total += matrix.SquaredDistance(X.RowView(i), centroids[c])
	}

	return total
}

// seedRandom picks k distinct rows uniformly.
func seedRandom(X *matrix.Dense, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(X.Rows())
	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		centroids[c] = append([]float64(nil), X.RowView(perm[c])...)
	}

	return centroids
}

// seedPlusPlus implements k-means++ seeding. When every remaining row coincides
// with a chosen centroid (all D² are zero), the lowest-index unused row is taken.
func seedPlusPlus(X *matrix.Dense, k int, rng *rand.Rand) [][]float64 {
	n := X.Rows()
	used := make([]bool, n)
	centroids := make([][]float64, 0, k)

	first := rng.Intn(n)
	used[first] = true
	centroids = append(centroids, append([]float64(nil), X.RowView(first)...))

	d2 := make([]float64, n)
	for i := 0; i < n; i++ {
		d2[i] = matrix.SquaredDistance(X.RowView(i), centroids[0])
	}

	for len(centroids) < k {
		next := pickWeighted(d2, used, rng)
		used[next] = true
		c := append([]float64(nil), X.RowView(next)...)
		centroids = append(centroids, c)
		for i := 0; i < n; i++ {
			if dist := matrix.SquaredDistance(X.RowView(i), c); dist < d2[i] {
				d2[i] = dist
			}
		}
	}

	return centroids
}

// pickWeighted draws an index with probability d2[i]/Σd2.
func pickWeighted(d2 []float64, used []bool, rng *rand.Rand) int {
	var total float64
	for _, v := range d2 {
		total += v
	}
	if total == 0 || math.IsInf(total, 0) {
		for i, u := range used {
			if !u {
				return i
			}
		}
	}

	target := rng.Float64() * total
	last := -1
	var cum float64
	for i, v := range d2 {
		if v == 0 {
			continue
		}
		last = i
		cum += v
		if cum > target {
			return i
		}
	}

	// Rounding left target just past the cumulative sum.
	return last
}
