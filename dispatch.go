package plyr

import (
	"github.com/go-sif/plyr/frame"
)

// tableFunc is the flat-table logic of a verb
type tableFunc func(t *frame.Table) (*frame.Table, error)

// groupFunc is the flat-table logic of a verb applied to one partition. key is nil for flat input.
type groupFunc func(key []interface{}, sub *frame.Table) (*frame.Table, error)

// applyWhole runs fn once over the underlying table, regrouping the result with the original spec
// when the input was grouped. It serves group-invariant verbs.
func applyWhole(verb string, in TableRef, fn tableFunc) (TableRef, error) {
	if err := validateRef(verb, in); err != nil {
		return nil, err
	}
	out, err := fn(in.Table())
	if err != nil {
		return nil, err
	}
	g, ok := in.(*Grouped)
	if !ok {
		return Flat{table: out}, nil
	}
	grouped, err := regroup(out, g.spec)
	if err != nil {
		return nil, err
	}
	return grouped, nil
}

// applyPerGroup runs fn once per partition when the input is grouped, concatenating the results in
// group order, resetting the row index and regrouping with the original spec. Flat input is handed to
// fn whole.
func applyPerGroup(verb string, in TableRef, fn groupFunc) (TableRef, error) {
	if err := validateRef(verb, in); err != nil {
		return nil, err
	}
	g, ok := in.(*Grouped)
	if !ok {
		out, err := fn(nil, in.Table())
		if err != nil {
			return nil, err
		}
		return Flat{table: out}, nil
	}
	out, err := concatGroups(g, fn)
	if err != nil {
		return nil, err
	}
	grouped, err := regroup(out, g.spec)
	if err != nil {
		return nil, err
	}
	return grouped, nil
}

// applyPerGroupFlat is applyPerGroup for verbs whose output is never grouped
func applyPerGroupFlat(verb string, in TableRef, fn groupFunc) (Flat, error) {
	if err := validateRef(verb, in); err != nil {
		return Flat{}, err
	}
	g, ok := in.(*Grouped)
	if !ok {
		out, err := fn(nil, in.Table())
		if err != nil {
			return Flat{}, err
		}
		return Flat{table: out}, nil
	}
	out, err := concatGroups(g, fn)
	if err != nil {
		return Flat{}, err
	}
	return Flat{table: out}, nil
}

// concatGroups applies fn to every partition of g and stacks the results with a fresh row index.
// Without partitions, fn still sees an empty table so that the output columns are known.
func concatGroups(g *Grouped, fn groupFunc) (*frame.Table, error) {
	if len(g.groups) == 0 {
		out, err := fn(nil, g.table.Take(nil))
		if err != nil {
			return nil, err
		}
		return out.Take(nil), nil
	}
	parts := make([]*frame.Table, len(g.groups))
	for i, grp := range g.groups {
		out, err := fn(append([]interface{}(nil), grp.Key...), g.table.Take(grp.Rows))
		if err != nil {
			return nil, err
		}
		parts[i] = out
	}
	out, err := frame.Concat(parts...)
	if err != nil {
		return nil, err
	}
	return out.ResetIndex(), nil
}
