package frame

import (
	"fmt"
	"slices"

	"github.com/go-sif/plyr/errors"
)

// Group is one partition of a Table: a tuple of key values and the positions of its rows, in table order
type Group struct {
	Key  []interface{}
	Rows []int
}

// PartitionOptions configures Partition
type PartitionOptions struct {
	Sort   bool // Emit groups in ascending key order, rather than order of first appearance
	DropNA bool // Drop rows with a missing value in any key
}

// Partition splits the rows of this Table by the values of the named key columns
func (t *Table) Partition(names []string, opts PartitionOptions) ([]Group, error) {
	keys := make([]*Series, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		keys[i] = c
	}
	return t.PartitionBy(keys, opts)
}

// PartitionBy splits the rows of this Table by a tuple of key Series, which need not be columns of
// the Table but must have one value per row
func (t *Table) PartitionBy(keys []*Series, opts PartitionOptions) ([]Group, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidArgumentsError{Verb: "partition", Reason: "at least one key is required"}
	}
	for _, k := range keys {
		if k.Len() != t.nrows {
			return nil, errors.IncompatibleColumnError{
				Name:   k.name,
				Reason: fmt.Sprintf("key has %d values, expected %d", k.Len(), t.nrows),
			}
		}
	}
	ki := newKeyIndex(keys)
	for r := 0; r < t.nrows; r++ {
		if opts.DropNA && hasNA(keys, r) {
			continue
		}
		ki.add(r)
	}
	groups := make([]Group, len(ki.first))
	for b, first := range ki.first {
		key := make([]interface{}, len(keys))
		for i, k := range keys {
			key[i] = k.data[first]
		}
		groups[b] = Group{Key: key, Rows: ki.rows[b]}
	}
	if opts.Sort {
		slices.SortStableFunc(groups, func(a, b Group) int {
			for _, k := range keys {
				if cmp := k.Compare(a.Rows[0], b.Rows[0]); cmp != 0 {
					return cmp
				}
			}
			return 0
		})
	}
	return groups, nil
}
