package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// ColumnFunc computes a column (or, for Summarise, a single value) from a table
type ColumnFunc func(t *frame.Table) (interface{}, error)

// Expr names the value of an output column. Value is a literal repeated for every row, a slice or
// *frame.Series with one value per row, or a ColumnFunc evaluated against the table.
type Expr struct {
	Name  string
	Value interface{}
}

// Col creates an Expr
func Col(name string, value interface{}) Expr {
	return Expr{Name: name, Value: value}
}

func (e Expr) evaluate(t *frame.Table) (interface{}, error) {
	switch fn := e.Value.(type) {
	case ColumnFunc:
		return fn(t)
	case func(*frame.Table) (interface{}, error):
		return fn(t)
	}
	return e.Value, nil
}

func validateExprs(verb string, exprs []Expr) error {
	if len(exprs) == 0 {
		return errors.InvalidArgumentsError{Verb: verb, Reason: "at least one column expression is required"}
	}
	for _, e := range exprs {
		if e.Name == "" {
			return errors.InvalidArgumentsError{Verb: verb, Reason: "column expressions must be named"}
		}
	}
	return nil
}

// assign evaluates exprs in order, so that each one sees the columns assigned before it
func assign(t *frame.Table, exprs []Expr) (*frame.Table, error) {
	for _, e := range exprs {
		v, err := e.evaluate(t)
		if err != nil {
			return nil, err
		}
		if t, err = t.Assign(e.Name, v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func exprNames(exprs []Expr) []string {
	seen := make(map[string]bool, len(exprs))
	names := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// Mutate adds or replaces columns. Expressions are evaluated in order against each group, and later
// expressions see the columns produced by earlier ones.
func Mutate(in TableRef, exprs ...Expr) (TableRef, error) {
	if err := validateExprs("mutate", exprs); err != nil {
		return nil, err
	}
	return applyPerGroup("mutate", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		return assign(t, exprs)
	})
}

// Transmute is Mutate, keeping only the grouping keys and the produced columns
func Transmute(in TableRef, exprs ...Expr) (TableRef, error) {
	if err := validateExprs("transmute", exprs); err != nil {
		return nil, err
	}
	keep := exprNames(exprs)
	if g, ok := in.(*Grouped); ok && g != nil {
		for _, key := range g.spec.Keys {
			for _, name := range keep {
				if name == key {
					return nil, errors.NameCollisionError{Name: name, Reason: "Grouping keys cannot be transmuted"}
				}
			}
		}
		keep = append(append([]string{}, g.spec.Keys...), keep...)
	}
	return applyPerGroup("transmute", in, func(_ []interface{}, t *frame.Table) (*frame.Table, error) {
		out, err := assign(t, exprs)
		if err != nil {
			return nil, err
		}
		return out.Select(keep...)
	})
}

// Summarise reduces every group, or the whole table, to one row. Each expression is evaluated against
// the group's rows. Grouping keys become ordinary leading columns and the result is never grouped.
func Summarise(in TableRef, exprs ...Expr) (TableRef, error) {
	if err := validateExprs("summarise", exprs); err != nil {
		return nil, err
	}
	var keyNames []string
	if g, ok := in.(*Grouped); ok && g != nil {
		keyNames = g.spec.keyNames()
		for _, name := range keyNames {
			for _, e := range exprs {
				if e.Name == name {
					return nil, errors.NameCollisionError{Name: name, Reason: "Summaries cannot replace grouping keys"}
				}
			}
		}
	}
	out, err := applyPerGroupFlat("summarise", in, func(key []interface{}, t *frame.Table) (*frame.Table, error) {
		row := frame.Blank(1)
		var err error
		for i, name := range keyNames {
			var v interface{}
			if i < len(key) {
				v = key[i]
			}
			if row, err = row.Assign(name, v); err != nil {
				return nil, err
			}
		}
		for _, e := range exprs {
			v, err := e.evaluate(t)
			if err != nil {
				return nil, err
			}
			if row, err = row.Assign(e.Name, v); err != nil {
				return nil, err
			}
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summarize is Summarise
func Summarize(in TableRef, exprs ...Expr) (TableRef, error) {
	return Summarise(in, exprs...)
}
