package accumulators

import (
	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/frame"
)

// Count returns a summary counting the rows of a table
func Count() plyr.ColumnFunc {
	return func(t *frame.Table) (interface{}, error) {
		return int64(t.NumRows()), nil
	}
}

// NonMissing returns a summary counting the non-missing values of a column
func NonMissing(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		return int64(s.Count())
	})
}

// NDistinct returns a summary counting the distinct non-missing values of a column
func NDistinct(col string) plyr.ColumnFunc {
	return onColumn(col, func(s *frame.Series) interface{} {
		return int64(s.NUnique())
	})
}

// onColumn builds a summary from a function of one column
func onColumn(col string, fn func(s *frame.Series) interface{}) plyr.ColumnFunc {
	return func(t *frame.Table) (interface{}, error) {
		s, err := t.Column(col)
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	}
}
