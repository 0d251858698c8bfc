package accumulators

import (
	"fmt"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// numeric resolves col and checks that it holds numbers
func numeric(t *frame.Table, col string) (*frame.Series, error) {
	s, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	switch s.Type().(type) {
	case *frame.IntColumnType, *frame.FloatColumnType, *frame.BoolColumnType:
		return s, nil
	}
	return nil, errors.IncompatibleColumnError{
		Name:   col,
		Reason: fmt.Sprintf("cannot aggregate a column of type %s numerically", s.Type().Name()),
	}
}

// Sum returns a summary adding the non-missing values of a numeric column. Integer columns sum to an int64.
func Sum(col string) plyr.ColumnFunc {
	return func(t *frame.Table) (interface{}, error) {
		s, err := numeric(t, col)
		if err != nil {
			return nil, err
		}
		if _, ok := s.Type().(*frame.IntColumnType); ok {
			var sum int64
			for i := 0; i < s.Len(); i++ {
				if v, ok := s.Int(i); ok {
					sum += v
				}
			}
			return sum, nil
		}
		return s.Sum(), nil
	}
}

// Mean returns a summary averaging the non-missing values of a numeric column. The mean of no values is missing.
func Mean(col string) plyr.ColumnFunc {
	return func(t *frame.Table) (interface{}, error) {
		s, err := numeric(t, col)
		if err != nil {
			return nil, err
		}
		return s.Mean(), nil
	}
}

// Min returns a summary of the smallest non-missing value of a column
func Min(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		return s.Min()
	})
}

// Max returns a summary of the largest non-missing value of a column
func Max(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		return s.Max()
	})
}

// First returns a summary of the first value of a column, or nil for an empty table
func First(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		if s.Len() == 0 {
			return nil
		}
		return s.At(0)
	})
}

// Last returns a summary of the last value of a column, or nil for an empty table
func Last(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		if s.Len() == 0 {
			return nil
		}
		return s.At(s.Len() - 1)
	})
}
