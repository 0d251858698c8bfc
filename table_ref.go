package plyr

import (
	"fmt"

	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// TableRef is either a Flat table or a Grouped view of a table. Every verb accepts both.
type TableRef interface {
	// Table returns the underlying flat table
	Table() *frame.Table
	isTableRef()
}

// Flat is an ungrouped table
type Flat struct {
	table *frame.Table
}

// NewFlat wraps a table for use with the verbs
func NewFlat(t *frame.Table) Flat {
	return Flat{table: t}
}

// Table returns the wrapped table
func (f Flat) Table() *frame.Table {
	return f.table
}

func (f Flat) isTableRef() {}

// String renders the wrapped table
func (f Flat) String() string {
	return f.table.String()
}

// Grouped is a partitioning of a table by a GroupSpec. It owns no data beyond the partition row lists.
type Grouped struct {
	table  *frame.Table
	spec   GroupSpec
	groups []frame.Group
}

// Table returns the underlying flat table, or nil for a nil Grouped
func (g *Grouped) Table() *frame.Table {
	if g == nil {
		return nil
	}
	return g.table
}

func (g *Grouped) isTableRef() {}

// Spec returns the GroupSpec this view was derived with
func (g *Grouped) Spec() GroupSpec {
	return g.spec.clone()
}

// NumGroups returns the number of partitions
func (g *Grouped) NumGroups() int {
	return len(g.groups)
}

// Keys returns the key tuple of every partition, in group order
func (g *Grouped) Keys() [][]interface{} {
	keys := make([][]interface{}, len(g.groups))
	for i, grp := range g.groups {
		keys[i] = append([]interface{}(nil), grp.Key...)
	}
	return keys
}

// Each calls fn with a copy of the key tuple and the rows of every partition, in group order, stopping at
// the first error
func (g *Grouped) Each(fn func(key []interface{}, sub *frame.Table) error) error {
	for _, grp := range g.groups {
		key := append([]interface{}(nil), grp.Key...)
		if err := fn(key, g.table.Take(grp.Rows)); err != nil {
			return err
		}
	}
	return nil
}

// String renders the grouping keys and the underlying table
func (g *Grouped) String() string {
	return fmt.Sprintf("Groups: %v [%d]\n%s", g.spec.keyNames(), len(g.groups), g.table.String())
}

// KeyFunc computes a grouping key for one row of a table
type KeyFunc func(t *frame.Table, row int) (interface{}, error)

// GroupSpec describes how a Grouped view partitions its table. Re-deriving a view from another table
// with the same GroupSpec reproduces an equivalent partitioning.
type GroupSpec struct {
	Keys        []string // Key columns
	KeyFunc     KeyFunc  // Optional computed key, applied after Keys
	KeyFuncName string   // Name of the computed key in verb outputs. Defaults to "key".
	AsIndex     bool     // Whether keys form the index of aggregated output
	Sort        bool     // Emit groups in sorted key order, rather than order of first appearance
	GroupKeys   bool     // Whether per-group results are labelled by group key
	Observed    bool     // Only consider observed key combinations
	DropNA      bool     // Drop rows with a missing key
}

// GroupOption customizes a GroupSpec
type GroupOption func(*GroupSpec)

// NewGroupSpec creates a GroupSpec with default options: AsIndex, Sort, GroupKeys and DropNA set, Observed unset
func NewGroupSpec(keys []string, opts ...GroupOption) GroupSpec {
	spec := GroupSpec{
		Keys:        append([]string(nil), keys...),
		KeyFuncName: "key",
		AsIndex:     true,
		Sort:        true,
		GroupKeys:   true,
		DropNA:      true,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// SortGroups sets whether groups are emitted in sorted key order
func SortGroups(sort bool) GroupOption {
	return func(s *GroupSpec) { s.Sort = sort }
}

// DropNA sets whether rows with a missing key are dropped
func DropNA(drop bool) GroupOption {
	return func(s *GroupSpec) { s.DropNA = drop }
}

// AsIndex sets whether keys form the index of aggregated output
func AsIndex(asIndex bool) GroupOption {
	return func(s *GroupSpec) { s.AsIndex = asIndex }
}

// GroupKeys sets whether per-group results are labelled by group key
func GroupKeys(groupKeys bool) GroupOption {
	return func(s *GroupSpec) { s.GroupKeys = groupKeys }
}

// Observed sets whether only observed key combinations are considered
func Observed(observed bool) GroupOption {
	return func(s *GroupSpec) { s.Observed = observed }
}

// KeyBy adds a computed key, reported under name
func KeyBy(name string, fn KeyFunc) GroupOption {
	return func(s *GroupSpec) {
		s.KeyFunc = fn
		if name != "" {
			s.KeyFuncName = name
		}
	}
}

func (s GroupSpec) clone() GroupSpec {
	s.Keys = append([]string(nil), s.Keys...)
	return s
}

// keyNames returns the names under which the keys of this spec appear in verb outputs
func (s GroupSpec) keyNames() []string {
	names := append([]string(nil), s.Keys...)
	if s.KeyFunc != nil {
		names = append(names, s.KeyFuncName)
	}
	return names
}

// partition derives the groups of t according to this spec
func (s GroupSpec) partition(t *frame.Table) ([]frame.Group, error) {
	if len(s.Keys) == 0 && s.KeyFunc == nil {
		return nil, errors.InvalidArgumentsError{Verb: "group_by", Reason: "at least one grouping key is required"}
	}
	keys := make([]*frame.Series, 0, len(s.Keys)+1)
	for _, name := range s.Keys {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, c)
	}
	if s.KeyFunc != nil {
		values := make([]interface{}, t.NumRows())
		for r := range values {
			v, err := s.KeyFunc(t, r)
			if err != nil {
				return nil, err
			}
			values[r] = v
		}
		c, err := frame.NewTypedSeries(s.KeyFuncName, frame.InferColumnType(values), values)
		if err != nil {
			return nil, err
		}
		keys = append(keys, c)
	}
	return t.PartitionBy(keys, frame.PartitionOptions{Sort: s.Sort, DropNA: s.DropNA})
}

// regroup re-derives a Grouped view over t with the original spec
func regroup(t *frame.Table, spec GroupSpec) (*Grouped, error) {
	groups, err := spec.partition(t)
	if err != nil {
		return nil, err
	}
	return &Grouped{table: t, spec: spec, groups: groups}, nil
}

// Validate returns an InvalidArgumentsError unless in refers to a table
func Validate(verb string, in TableRef) error {
	return validateRef(verb, in)
}

func validateRef(verb string, in TableRef) error {
	switch ref := in.(type) {
	case Flat:
		if ref.table != nil {
			return nil
		}
	case *Grouped:
		if ref != nil && ref.table != nil {
			return nil
		}
	}
	return errors.InvalidArgumentsError{Verb: verb, Reason: "a table is required"}
}
