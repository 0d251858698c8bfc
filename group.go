package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// GroupBy partitions a table by key columns. Grouped input is ungrouped first.
func GroupBy(in TableRef, keys []string, opts ...GroupOption) (TableRef, error) {
	if err := validateRef("group_by", in); err != nil {
		return nil, err
	}
	grouped, err := regroup(in.Table(), NewGroupSpec(keys, opts...))
	if err != nil {
		return nil, err
	}
	return grouped, nil
}

// Groupby is GroupBy
func Groupby(in TableRef, keys []string, opts ...GroupOption) (TableRef, error) {
	return GroupBy(in, keys, opts...)
}

// Ungroup returns the underlying table of a grouped view. A flat table gets a fresh row index.
func Ungroup(in TableRef) (TableRef, error) {
	if err := validateRef("ungroup", in); err != nil {
		return nil, err
	}
	if _, ok := in.(*Grouped); ok {
		return Flat{table: in.Table()}, nil
	}
	return Flat{table: in.Table().ResetIndex()}, nil
}

// ResetIndex renumbers rows 0..n-1, keeping any grouping
func ResetIndex(in TableRef) (TableRef, error) {
	return applyWhole("reset_index", in, func(t *frame.Table) (*frame.Table, error) {
		return t.ResetIndex(), nil
	})
}

type tallyConf struct {
	name string
	sort bool
}

// TallyOption configures Tally and Count
type TallyOption func(*tallyConf)

// Name sets the name of the count column. Defaults to "n".
func Name(name string) TallyOption {
	return func(c *tallyConf) { c.name = name }
}

// SortCounts orders the result by descending count
func SortCounts() TallyOption {
	return func(c *tallyConf) { c.sort = true }
}

// Tally counts rows. Grouped input yields one row per group holding the grouping keys and the count,
// computed from partition membership; flat input yields a single row. The result is never grouped.
func Tally(in TableRef, opts ...TallyOption) (TableRef, error) {
	if err := validateRef("tally", in); err != nil {
		return nil, err
	}
	conf := &tallyConf{name: "n"}
	for _, opt := range opts {
		opt(conf)
	}
	g, ok := in.(*Grouped)
	if !ok {
		t, err := frame.New(frame.Ints(conf.name, int64(in.Table().NumRows())))
		if err != nil {
			return nil, err
		}
		return Flat{table: t}, nil
	}

	keyNames := g.spec.keyNames()
	for _, name := range keyNames {
		if name == conf.name {
			return nil, errors.NameCollisionError{Name: name, Reason: "Please specify another name for tally"}
		}
	}
	rows := make([][]interface{}, len(g.groups))
	for i, grp := range g.groups {
		row := append([]interface{}{}, grp.Key...)
		rows[i] = append(row, int64(len(grp.Rows)))
	}
	t, err := frame.FromRecords(append(keyNames, conf.name), rows)
	if err != nil {
		return nil, err
	}
	if conf.sort {
		if t, err = t.SortBy(Desc(conf.name)); err != nil {
			return nil, err
		}
		t = t.ResetIndex()
	}
	return Flat{table: t}, nil
}

// Count groups by keys and tallies the groups
func Count(in TableRef, keys []string, opts ...TallyOption) (TableRef, error) {
	grouped, err := GroupBy(in, keys)
	if err != nil {
		return nil, err
	}
	return Tally(grouped, opts...)
}

// GroupFunc is called with the key tuple and rows of one group. The key is nil for flat input.
type GroupFunc func(key []interface{}, sub *frame.Table) error

// GroupWalk calls fn on every group, in group order, for its side effects, and returns its input
// unchanged. Flat input is a single group.
func GroupWalk(in TableRef, fn GroupFunc) (TableRef, error) {
	if fn == nil {
		return nil, errors.InvalidArgumentsError{Verb: "group_walk", Reason: "a function is required"}
	}
	if err := validateRef("group_walk", in); err != nil {
		return nil, err
	}
	if g, ok := in.(*Grouped); ok {
		if err := g.Each(fn); err != nil {
			return nil, err
		}
		return in, nil
	}
	if err := fn(nil, in.Table()); err != nil {
		return nil, err
	}
	return in, nil
}

// GroupMap calls fn on every group, in group order, and collects the results. Flat input is a single group.
func GroupMap[T any](in TableRef, fn func(key []interface{}, sub *frame.Table) (T, error)) ([]T, error) {
	if fn == nil {
		return nil, errors.InvalidArgumentsError{Verb: "group_map", Reason: "a function is required"}
	}
	if err := validateRef("group_map", in); err != nil {
		return nil, err
	}
	var out []T
	collect := func(key []interface{}, sub *frame.Table) error {
		v, err := fn(key, sub)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	}
	if g, ok := in.(*Grouped); ok {
		if err := g.Each(collect); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := collect(nil, in.Table()); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupModifyFunc replaces the rows of one group. The key is nil for flat input.
type GroupModifyFunc func(key []interface{}, sub *frame.Table) (*frame.Table, error)

// GroupModify replaces every group with the table fn returns for it, and regroups the concatenated
// result with the original grouping. Flat input is a single group.
func GroupModify(in TableRef, fn GroupModifyFunc) (TableRef, error) {
	if fn == nil {
		return nil, errors.InvalidArgumentsError{Verb: "group_modify", Reason: "a function is required"}
	}
	return applyPerGroup("group_modify", in, groupFunc(fn))
}
