package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// Asc orders rows by ascending values of col, missing values last
func Asc(col string) frame.SortKey {
	return frame.SortKey{Column: col}
}

// Desc orders rows by descending values of col, missing values last
func Desc(col string) frame.SortKey {
	return frame.SortKey{Column: col, Descending: true}
}

// Arrange stably orders rows by keys, within each group when grouped
func Arrange(in TableRef, keys ...frame.SortKey) (TableRef, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidArgumentsError{Verb: "arrange", Reason: "at least one sort key is required"}
	}
	return applyPerGroup("arrange", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		return t.SortBy(keys...)
	})
}
