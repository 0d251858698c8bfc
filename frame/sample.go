package frame

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/go-sif/plyr/errors"
)

// SampleOptions configures Sample
type SampleOptions struct {
	N       int        // Number of rows to draw
	Replace bool       // Draw with replacement
	Weights []float64  // Optional relative probability of drawing each row
	Rand    *rand.Rand // Source of randomness. Defaults to a time-seeded source.
}

// Sample draws rows at random, returning them in the order they were drawn
func (t *Table) Sample(opts SampleOptions) (*Table, error) {
	if opts.N < 0 {
		return nil, errors.InvalidArgumentsError{Verb: "sample", Reason: "sample size must be non-negative"}
	}
	if !opts.Replace && opts.N > t.nrows {
		return nil, errors.InvalidArgumentsError{
			Verb:   "sample",
			Reason: fmt.Sprintf("cannot take a sample of %d rows from %d rows without replacement", opts.N, t.nrows),
		}
	}
	if t.nrows == 0 && opts.N > 0 {
		return nil, errors.InvalidArgumentsError{Verb: "sample", Reason: "cannot sample from an empty table"}
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Weights == nil {
		if opts.Replace {
			rows := make([]int, opts.N)
			for i := range rows {
				rows[i] = r.Intn(t.nrows)
			}
			return t.Take(rows), nil
		}
		return t.Take(r.Perm(t.nrows)[:opts.N]), nil
	}
	if len(opts.Weights) != t.nrows {
		return nil, errors.InvalidArgumentsError{
			Verb:   "sample",
			Reason: fmt.Sprintf("%d weights given for %d rows", len(opts.Weights), t.nrows),
		}
	}
	weights := make([]float64, len(opts.Weights))
	var total float64
	for i, w := range opts.Weights {
		if w < 0 {
			return nil, errors.InvalidArgumentsError{Verb: "sample", Reason: "weights must be non-negative"}
		}
		if w == w { // skip NaN
			weights[i] = w
			total += w
		}
	}
	if total == 0 && opts.N > 0 {
		return nil, errors.InvalidArgumentsError{Verb: "sample", Reason: "weights sum to zero"}
	}
	rows := make([]int, 0, opts.N)
	if opts.Replace {
		cumulative := make([]float64, len(weights))
		var acc float64
		for i, w := range weights {
			acc += w
			cumulative[i] = acc
		}
		for len(rows) < opts.N {
			target := r.Float64() * acc
			i := sort.Search(len(cumulative), func(j int) bool { return cumulative[j] > target })
			if i >= len(cumulative) {
				i = len(cumulative) - 1
			}
			rows = append(rows, i)
		}
		return t.Take(rows), nil
	}
	for len(rows) < opts.N {
		if total <= 0 {
			return nil, errors.InvalidArgumentsError{Verb: "sample", Reason: "fewer rows with non-zero weight than requested"}
		}
		target := r.Float64() * total
		chosen := -1
		for i, w := range weights {
			if w == 0 {
				continue
			}
			chosen = i
			if target < w {
				break
			}
			target -= w
		}
		rows = append(rows, chosen)
		total -= weights[chosen]
		weights[chosen] = 0
	}
	return t.Take(rows), nil
}
