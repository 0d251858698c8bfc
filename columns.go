package plyr

import (
	"fmt"

	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// Selection picks columns in exactly one of three ways: a list of column references, a predicate on
// column names, or an inclusive range between two column references. A column reference is a name
// or a position, with negative positions counting back from the last column.
type Selection struct {
	Columns   []interface{}
	Predicate func(name string) bool
	Start     interface{}
	End       interface{}
}

// Cols selects columns by name or position, in the given order
func Cols(refs ...interface{}) Selection {
	return Selection{Columns: append([]interface{}{}, refs...)}
}

// Matching selects the columns whose name satisfies pred, in table order
func Matching(pred func(name string) bool) Selection {
	return Selection{Predicate: pred}
}

// Range selects the columns from start to end inclusive, each given by name or position
func Range(start, end interface{}) Selection {
	return Selection{Start: start, End: end}
}

// resolve converts a Selection to column names of t
func (s Selection) resolve(verb string, t *frame.Table) ([]string, error) {
	forms := 0
	if s.Columns != nil {
		forms++
	}
	if s.Predicate != nil {
		forms++
	}
	if s.Start != nil || s.End != nil {
		forms++
	}
	switch {
	case forms == 0:
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: "either columns, a predicate, or both start and end must be defined"}
	case forms > 1:
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: "only one of columns, a predicate, or a range may be defined"}
	}

	names := t.Names()
	switch {
	case s.Columns != nil:
		out := make([]string, len(s.Columns))
		for i, ref := range s.Columns {
			name, err := columnName(verb, t, ref)
			if err != nil {
				return nil, err
			}
			out[i] = name
		}
		return out, nil
	case s.Predicate != nil:
		var out []string
		for _, name := range names {
			if s.Predicate(name) {
				out = append(out, name)
			}
		}
		return out, nil
	}
	if s.Start == nil || s.End == nil {
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: "a range requires both start and end"}
	}
	start, err := columnPosition(verb, t, s.Start)
	if err != nil {
		return nil, err
	}
	end, err := columnPosition(verb, t, s.End)
	if err != nil {
		return nil, err
	}
	if end < start {
		return []string{}, nil
	}
	return append([]string{}, names[start:end+1]...), nil
}

// columnName resolves a column reference to a name
func columnName(verb string, t *frame.Table, ref interface{}) (string, error) {
	if name, ok := ref.(string); ok {
		if !t.HasColumn(name) {
			return "", errors.KeyResolutionError{Key: name}
		}
		return name, nil
	}
	pos, err := columnPosition(verb, t, ref)
	if err != nil {
		return "", err
	}
	return t.Names()[pos], nil
}

// columnPosition resolves a column reference to a non-negative position
func columnPosition(verb string, t *frame.Table, ref interface{}) (int, error) {
	var pos int
	switch v := ref.(type) {
	case string:
		pos = t.ColumnIndex(v)
		if pos < 0 {
			return 0, errors.KeyResolutionError{Key: v}
		}
		return pos, nil
	case int:
		pos = v
	case int64:
		pos = int(v)
	case int32:
		pos = int(v)
	default:
		return 0, errors.InvalidArgumentsError{Verb: verb, Reason: fmt.Sprintf("%v (%T) is not a column name or position", ref, ref)}
	}
	c, err := t.ColumnAt(pos)
	if err != nil {
		return 0, err
	}
	return t.ColumnIndex(c.Name()), nil
}
