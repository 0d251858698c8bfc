package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// Predicate decides which rows of a table to keep. It returns a single bool applied to every row,
// a []bool with one value per row, or a bool *frame.Series.
type Predicate func(t *frame.Table) (interface{}, error)

// Filter keeps the rows satisfying pred. On grouped input pred sees one partition at a time, so a
// single bool computed from a group aggregate keeps or drops whole groups.
func Filter(in TableRef, pred Predicate) (TableRef, error) {
	if pred == nil {
		return nil, errors.InvalidArgumentsError{Verb: "filter", Reason: "a predicate is required"}
	}
	return applyPerGroup("filter", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		mask, err := pred(t)
		if err != nil {
			return nil, err
		}
		return t.Mask(mask)
	})
}

// Distinct keeps the first occurrence of every distinct row, comparing only the subset columns if any
func Distinct(in TableRef, subset ...string) (TableRef, error) {
	return applyPerGroup("distinct", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		return t.Distinct(subset...)
	})
}
