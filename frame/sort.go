package frame

import (
	"slices"
)

// SortKey orders rows by one column
type SortKey struct {
	Column     string
	Descending bool
	NAFirst    bool // Missing values are placed last unless NAFirst is set, regardless of direction
}

// SortBy returns a new Table with rows stably ordered by the given keys, compared in turn
func (t *Table) SortBy(keys ...SortKey) (*Table, error) {
	cols := make([]*Series, len(keys))
	for i, k := range keys {
		c, err := t.Column(k.Column)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	perm := defaultIndex(t.nrows)
	slices.SortStableFunc(perm, func(a, b int) int {
		for i, k := range keys {
			c := cols[i]
			naA, naB := c.IsNA(a), c.IsNA(b)
			if naA || naB {
				if naA && naB {
					continue
				}
				if naA == k.NAFirst {
					return -1
				}
				return 1
			}
			cmp := c.ctype.Compare(c.data[a], c.data[b])
			if k.Descending {
				cmp = -cmp
			}
			if cmp != 0 {
				return cmp
			}
		}
		return 0
	})
	return t.Take(perm), nil
}
