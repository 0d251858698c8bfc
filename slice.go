package plyr

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

const defaultSliceSize = 5

type sliceConf struct {
	n        *int
	prop     *float64
	replace  bool
	weightBy string
	seed     *int64
	rand     *rand.Rand
}

// SliceOption configures the slice_* verbs
type SliceOption func(*sliceConf)

// N requests n rows, which must not be negative. It takes precedence over Prop for slice_head,
// slice_tail, slice_min and slice_max.
func N(n int) SliceOption {
	return func(c *sliceConf) { c.n = &n }
}

// Prop requests round(p * rows) rows, rounding half to even
func Prop(p float64) SliceOption {
	return func(c *sliceConf) { c.prop = &p }
}

// Replace samples with replacement
func Replace() SliceOption {
	return func(c *sliceConf) { c.replace = true }
}

// WeightBy samples rows with probability proportional to a numeric column. Missing weights count as zero.
func WeightBy(col string) SliceOption {
	return func(c *sliceConf) { c.weightBy = col }
}

// Seed makes sampling deterministic. Every call of the verb starts from the same seed.
func Seed(seed int64) SliceOption {
	return func(c *sliceConf) { c.seed = &seed }
}

// WithRand samples from r, which must not be shared between goroutines
func WithRand(r *rand.Rand) SliceOption {
	return func(c *sliceConf) { c.rand = r }
}

func newSliceConf(verb string, opts []SliceOption) (*sliceConf, error) {
	conf := &sliceConf{}
	for _, opt := range opts {
		opt(conf)
	}
	if conf.n != nil && *conf.n < 0 {
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: fmt.Sprintf("n must not be negative, got %d", *conf.n)}
	}
	if conf.prop != nil && (*conf.prop < 0 || math.IsNaN(*conf.prop)) {
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: fmt.Sprintf("prop must not be negative, got %v", *conf.prop)}
	}
	return conf, nil
}

// size returns the number of rows requested out of nrows
func (c *sliceConf) size(nrows, otherwise int) int {
	switch {
	case c.n != nil:
		return *c.n
	case c.prop != nil:
		return int(math.RoundToEven(*c.prop * float64(nrows)))
	}
	return otherwise
}

// Slice selects rows by position. One position selects a single row, with negative positions counting
// back from the last row. Two or three arguments are start, stop and step with the usual slicing rules.
func Slice(in TableRef, positions ...int) (TableRef, error) {
	if len(positions) == 0 || len(positions) > 3 {
		return nil, errors.InvalidArgumentsError{
			Verb:   "slice",
			Reason: fmt.Sprintf("between 1 and 3 positions are required, %d given", len(positions)),
		}
	}
	return applyPerGroup("slice", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		switch len(positions) {
		case 1:
			p := positions[0]
			if p < 0 {
				p += t.NumRows()
			}
			if p < 0 || p >= t.NumRows() {
				return t.Take(nil), nil
			}
			return t.Take([]int{p}), nil
		case 2:
			return t.SliceRows(positions[0], positions[1], 1)
		}
		return t.SliceRows(positions[0], positions[1], positions[2])
	})
}

// SliceHead keeps the first N rows, or the first Prop of rows, or 5 rows
func SliceHead(in TableRef, opts ...SliceOption) (TableRef, error) {
	conf, err := newSliceConf("slice_head", opts)
	if err != nil {
		return nil, err
	}
	return applyPerGroup("slice_head", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		return head(t, conf.size(t.NumRows(), defaultSliceSize))
	})
}

// Head is SliceHead
func Head(in TableRef, opts ...SliceOption) (TableRef, error) {
	return SliceHead(in, opts...)
}

// SliceTail keeps the last N rows, or the last Prop of rows, or 5 rows
func SliceTail(in TableRef, opts ...SliceOption) (TableRef, error) {
	conf, err := newSliceConf("slice_tail", opts)
	if err != nil {
		return nil, err
	}
	return applyPerGroup("slice_tail", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		n := conf.size(t.NumRows(), defaultSliceSize)
		start := t.NumRows() - n
		if start < 0 {
			start = 0
		}
		return t.SliceRows(start, t.NumRows(), 1)
	})
}

// Tail is SliceTail
func Tail(in TableRef, opts ...SliceOption) (TableRef, error) {
	return SliceTail(in, opts...)
}

// SliceSample draws N rows, or Prop of rows, or 1 row at random from every group
func SliceSample(in TableRef, opts ...SliceOption) (TableRef, error) {
	conf, err := newSliceConf("slice_sample", opts)
	if err != nil {
		return nil, err
	}
	if conf.n != nil && conf.prop != nil {
		return nil, errors.InvalidArgumentsError{Verb: "slice_sample", Reason: "only one of n and prop may be defined"}
	}
	r := conf.rand
	switch {
	case r != nil:
	case conf.seed != nil:
		r = rand.New(rand.NewSource(*conf.seed))
	default:
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return applyPerGroup("slice_sample", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		sampleOpts := frame.SampleOptions{
			N:       conf.size(t.NumRows(), 1),
			Replace: conf.replace,
			Rand:    r,
		}
		if conf.weightBy != "" {
			w, err := t.Column(conf.weightBy)
			if err != nil {
				return nil, err
			}
			sampleOpts.Weights = make([]float64, w.Len())
			for i := range sampleOpts.Weights {
				sampleOpts.Weights[i], _ = w.Float(i)
			}
		}
		return t.Sample(sampleOpts)
	})
}

// SliceMax keeps the rows with the largest values of by: N rows, or Prop of rows, or 5 rows
func SliceMax(in TableRef, by string, opts ...SliceOption) (TableRef, error) {
	return sliceExtreme("slice_max", in, Desc(by), opts)
}

// SliceMin keeps the rows with the smallest values of by: N rows, or Prop of rows, or 5 rows
func SliceMin(in TableRef, by string, opts ...SliceOption) (TableRef, error) {
	return sliceExtreme("slice_min", in, Asc(by), opts)
}

func sliceExtreme(verb string, in TableRef, key frame.SortKey, opts []SliceOption) (TableRef, error) {
	conf, err := newSliceConf(verb, opts)
	if err != nil {
		return nil, err
	}
	return applyPerGroup(verb, in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		sorted, err := t.SortBy(key)
		if err != nil {
			return nil, err
		}
		return head(sorted, conf.size(t.NumRows(), defaultSliceSize))
	})
}

func head(t *frame.Table, n int) (*frame.Table, error) {
	return t.SliceRows(0, n, 1)
}
