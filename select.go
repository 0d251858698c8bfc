package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// Select keeps only the selected columns, in selection order
func Select(in TableRef, sel Selection) (TableRef, error) {
	return applyWhole("select", in, func(t *frame.Table) (*frame.Table, error) {
		names, err := sel.resolve("select", t)
		if err != nil {
			return nil, err
		}
		return t.Select(names...)
	})
}

// Drop removes the selected columns
func Drop(in TableRef, sel Selection) (TableRef, error) {
	return applyWhole("drop", in, func(t *frame.Table) (*frame.Table, error) {
		names, err := sel.resolve("drop", t)
		if err != nil {
			return nil, err
		}
		return t.Drop(names...)
	})
}

// Placement positions relocated columns before or after an anchor column, given by name or position.
// The zero Placement moves columns to the front. After: -1 moves them to the end.
type Placement struct {
	Before interface{}
	After  interface{}
}

// Relocate moves the selected columns, keeping their selection order
func Relocate(in TableRef, sel Selection, place Placement) (TableRef, error) {
	if place.Before != nil && place.After != nil {
		return nil, errors.InvalidArgumentsError{Verb: "relocate", Reason: "only one of before and after may be defined"}
	}
	return applyWhole("relocate", in, func(t *frame.Table) (*frame.Table, error) {
		moved, err := sel.resolve("relocate", t)
		if err != nil {
			return nil, err
		}
		isMoved := make(map[string]bool, len(moved))
		for _, name := range moved {
			isMoved[name] = true
		}
		rest := make([]string, 0, t.NumCols())
		for _, name := range t.Names() {
			if !isMoved[name] {
				rest = append(rest, name)
			}
		}

		var at int
		switch {
		case place.Before == nil && place.After == nil, place.Before == 0:
			at = 0
		case place.After == -1:
			at = len(rest)
		default:
			anchor := place.Before
			if anchor == nil {
				anchor = place.After
			}
			name, err := columnName("relocate", t, anchor)
			if err != nil {
				return nil, err
			}
			if isMoved[name] {
				return nil, errors.InvalidArgumentsError{Verb: "relocate", Reason: "the anchor column " + name + " cannot be relocated"}
			}
			for i, n := range rest {
				if n == name {
					at = i
				}
			}
			if place.After != nil {
				at++
			}
		}
		order := make([]string, 0, t.NumCols())
		order = append(order, rest[:at]...)
		order = append(order, moved...)
		order = append(order, rest[at:]...)
		return t.Select(order...)
	})
}

// Renaming renames the column Old, given by name or position, to New
type Renaming struct {
	New string
	Old interface{}
}

// As renames the column old, given by name or position, to newName
func As(newName string, old interface{}) Renaming {
	return Renaming{New: newName, Old: old}
}

// Rename renames columns. Columns not mentioned keep their name.
func Rename(in TableRef, renames ...Renaming) (TableRef, error) {
	return applyWhole("rename", in, func(t *frame.Table) (*frame.Table, error) {
		mapping := make(map[string]string, len(renames))
		for _, r := range renames {
			old, err := columnName("rename", t, r.Old)
			if err != nil {
				return nil, err
			}
			mapping[old] = r.New
		}
		return t.Rename(mapping)
	})
}

// RenameWith renames every column with fn
func RenameWith(in TableRef, fn func(name string) string) (TableRef, error) {
	if fn == nil {
		return nil, errors.InvalidArgumentsError{Verb: "rename_with", Reason: "a renaming function is required"}
	}
	return applyWhole("rename_with", in, func(t *frame.Table) (*frame.Table, error) {
		return t.RenameFunc(fn)
	})
}

// Pull extracts one column, by name or position. A nil reference pulls the last column.
func Pull(in TableRef, col interface{}) (*frame.Series, error) {
	if err := validateRef("pull", in); err != nil {
		return nil, err
	}
	if col == nil {
		col = -1
	}
	name, err := columnName("pull", in.Table(), col)
	if err != nil {
		return nil, err
	}
	return in.Table().Column(name)
}
