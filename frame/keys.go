package frame

import (
	xxhash "github.com/cespare/xxhash/v2"
)

// hashValues generates a hash key for one row of a tuple of key columns
func hashValues(keys []*Series, row int) uint64 {
	hasher := xxhash.New()
	for _, k := range keys {
		v := k.data[row]
		if v == nil {
			hasher.Write([]byte{'n'})
			continue
		}
		k.ctype.Hash(hasher, v)
	}
	return hasher.Sum64()
}

// equalValues returns true iff row i of keys a holds the same key tuple as row j of keys b.
// Missing values are equal to each other.
func equalValues(a []*Series, i int, b []*Series, j int) bool {
	for k := range a {
		x, y := a[k].data[i], b[k].data[j]
		if x == nil || y == nil {
			if x != y {
				return false
			}
			continue
		}
		if a[k].ctype.Compare(x, y) != 0 {
			return false
		}
	}
	return true
}

// keyIndex buckets the rows of a tuple of key columns by hash, resolving collisions by comparison.
// Buckets are numbered in order of first appearance.
type keyIndex struct {
	keys    []*Series
	buckets map[uint64][]int // hash -> bucket ids
	first   []int            // bucket id -> first row
	rows    [][]int          // bucket id -> all rows
}

func newKeyIndex(keys []*Series) *keyIndex {
	return &keyIndex{keys: keys, buckets: make(map[uint64][]int)}
}

// add assigns a row to a bucket, creating it if necessary, and returns the bucket id
func (ki *keyIndex) add(row int) int {
	h := hashValues(ki.keys, row)
	for _, b := range ki.buckets[h] {
		if equalValues(ki.keys, ki.first[b], ki.keys, row) {
			ki.rows[b] = append(ki.rows[b], row)
			return b
		}
	}
	b := len(ki.first)
	ki.buckets[h] = append(ki.buckets[h], b)
	ki.first = append(ki.first, row)
	ki.rows = append(ki.rows, []int{row})
	return b
}

// lookup finds the bucket holding the key tuple at row of probe, or -1
func (ki *keyIndex) lookup(probe []*Series, row int) int {
	h := hashValues(probe, row)
	for _, b := range ki.buckets[h] {
		if equalValues(ki.keys, ki.first[b], probe, row) {
			return b
		}
	}
	return -1
}

// castSeries re-normalizes a Series into another ColumnType
func castSeries(s *Series, ctype ColumnType) (*Series, error) {
	if s.ctype.Name() == ctype.Name() {
		return s, nil
	}
	return NewTypedSeries(s.name, ctype, s.data)
}

func hasNA(keys []*Series, row int) bool {
	for _, k := range keys {
		if k.data[row] == nil {
			return true
		}
	}
	return false
}
