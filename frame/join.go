package frame

import (
	"fmt"
	"slices"

	"github.com/go-sif/plyr/errors"
)

// JoinType identifies a join algorithm
type JoinType int

const (
	// InnerJoin keeps rows whose key appears on both sides
	InnerJoin JoinType = iota
	// LeftJoin keeps every left row
	LeftJoin
	// RightJoin keeps every right row
	RightJoin
	// OuterJoin keeps every row from both sides, ordered by key
	OuterJoin
	// SemiJoin keeps left rows whose key appears on the right, with left columns only
	SemiJoin
	// AntiJoin keeps left rows whose key does not appear on the right, with left columns only
	AntiJoin
)

// IndicatorColumn is the name of the column added by JoinOptions.Indicator
const IndicatorColumn = "_merge"

// String returns the name of a JoinType
func (j JoinType) String() string {
	switch j {
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	case OuterJoin:
		return "outer"
	case SemiJoin:
		return "semi"
	case AntiJoin:
		return "anti"
	default:
		return "inner"
	}
}

// ParseJoinType converts a join name ("inner", "left", "right", "outer", "semi", "anti") to a JoinType
func ParseJoinType(how string) (JoinType, error) {
	for _, j := range []JoinType{InnerJoin, LeftJoin, RightJoin, OuterJoin, SemiJoin, AntiJoin} {
		if j.String() == how {
			return j, nil
		}
	}
	return InnerJoin, errors.InvalidArgumentsError{Verb: "merge", Reason: fmt.Sprintf("unknown join type %q", how)}
}

// JoinOptions configures Join
type JoinOptions struct {
	How       JoinType
	LeftOn    []string  // Key columns of the left Table
	RightOn   []string  // Key columns of the right Table, paired with LeftOn
	Suffixes  [2]string // Appended to non-key column names present on both sides
	Sort      bool      // Order result rows by key
	Indicator bool      // Add an IndicatorColumn recording where each row came from
}

// Join combines this Table with another on equal key values. Missing key values match each other.
// The result has fresh row labels.
func (t *Table) Join(right *Table, opts JoinOptions) (*Table, error) {
	if len(opts.LeftOn) == 0 || len(opts.LeftOn) != len(opts.RightOn) {
		return nil, errors.InvalidArgumentsError{
			Verb:   "join",
			Reason: fmt.Sprintf("%d left keys and %d right keys given", len(opts.LeftOn), len(opts.RightOn)),
		}
	}
	lkeys := make([]*Series, len(opts.LeftOn))
	rkeys := make([]*Series, len(opts.RightOn))
	for i := range opts.LeftOn {
		l, err := t.Column(opts.LeftOn[i])
		if err != nil {
			return nil, err
		}
		r, err := right.Column(opts.RightOn[i])
		if err != nil {
			return nil, err
		}
		ctype := CommonColumnType(l.ctype, r.ctype)
		if lkeys[i], err = castSeries(l, ctype); err != nil {
			return nil, err
		}
		if rkeys[i], err = castSeries(r, ctype); err != nil {
			return nil, err
		}
	}

	lrows, rrows := matchRows(lkeys, t.nrows, rkeys, right.nrows, opts.How)
	if opts.How == SemiJoin || opts.How == AntiJoin {
		return t.Take(lrows).ResetIndex(), nil
	}
	if opts.Sort || opts.How == OuterJoin {
		perm := defaultIndex(len(lrows))
		slices.SortStableFunc(perm, func(a, b int) int {
			for i := range lkeys {
				va, vb := joinedKey(lkeys[i], rkeys[i], lrows[a], rrows[a]), joinedKey(lkeys[i], rkeys[i], lrows[b], rrows[b])
				if cmp := compareNA(lkeys[i].ctype, va, vb); cmp != 0 {
					return cmp
				}
			}
			return 0
		})
		lrows, rrows = permute(lrows, perm), permute(rrows, perm)
	}
	return assembleJoin(t, right, lrows, rrows, lkeys, rkeys, opts)
}

// matchRows produces aligned row positions of the joined result; -1 marks a missing side
func matchRows(lkeys []*Series, lnum int, rkeys []*Series, rnum int, how JoinType) (lrows, rrows []int) {
	if how == RightJoin {
		li := newKeyIndex(lkeys)
		for r := 0; r < lnum; r++ {
			li.add(r)
		}
		for r := 0; r < rnum; r++ {
			b := li.lookup(rkeys, r)
			if b < 0 {
				lrows, rrows = append(lrows, -1), append(rrows, r)
				continue
			}
			for _, l := range li.rows[b] {
				lrows, rrows = append(lrows, l), append(rrows, r)
			}
		}
		return
	}
	ri := newKeyIndex(rkeys)
	for r := 0; r < rnum; r++ {
		ri.add(r)
	}
	matched := make([]bool, len(ri.first))
	for l := 0; l < lnum; l++ {
		b := ri.lookup(lkeys, l)
		switch how {
		case SemiJoin:
			if b >= 0 {
				lrows = append(lrows, l)
			}
			continue
		case AntiJoin:
			if b < 0 {
				lrows = append(lrows, l)
			}
			continue
		}
		if b < 0 {
			if how != InnerJoin {
				lrows, rrows = append(lrows, l), append(rrows, -1)
			}
			continue
		}
		matched[b] = true
		for _, r := range ri.rows[b] {
			lrows, rrows = append(lrows, l), append(rrows, r)
		}
	}
	if how == OuterJoin {
		for b, ok := range matched {
			if ok {
				continue
			}
			for _, r := range ri.rows[b] {
				lrows, rrows = append(lrows, -1), append(rrows, r)
			}
		}
	}
	return
}

func assembleJoin(left, right *Table, lrows, rrows []int, lkeys, rkeys []*Series, opts JoinOptions) (*Table, error) {
	shared := make(map[string]int) // key names present, paired, on both sides
	for i := range opts.LeftOn {
		if opts.LeftOn[i] == opts.RightOn[i] {
			shared[opts.LeftOn[i]] = i
		}
	}
	cols := make([]*Series, 0, len(left.cols)+len(right.cols)+1)
	for _, c := range left.cols {
		if k, ok := shared[c.name]; ok {
			data := make([]interface{}, len(lrows))
			for i := range lrows {
				data[i] = joinedKey(lkeys[k], rkeys[k], lrows[i], rrows[i])
			}
			cols = append(cols, &Series{name: c.name, ctype: lkeys[k].ctype, data: data})
			continue
		}
		name := c.name
		if right.HasColumn(name) {
			name += opts.Suffixes[0]
		}
		cols = append(cols, takeOrNA(c, lrows).Rename(name))
	}
	for _, c := range right.cols {
		if _, ok := shared[c.name]; ok {
			continue
		}
		name := c.name
		if left.HasColumn(name) {
			name += opts.Suffixes[1]
		}
		cols = append(cols, takeOrNA(c, rrows).Rename(name))
	}
	if opts.Indicator {
		data := make([]interface{}, len(lrows))
		for i := range lrows {
			switch {
			case lrows[i] < 0:
				data[i] = "right_only"
			case rrows[i] < 0:
				data[i] = "left_only"
			default:
				data[i] = "both"
			}
		}
		cols = append(cols, &Series{name: IndicatorColumn, ctype: &StringColumnType{}, data: data})
	}
	if len(cols) == 0 {
		return Blank(len(lrows)), nil
	}
	return New(cols...)
}

func joinedKey(l, r *Series, lrow, rrow int) interface{} {
	if lrow >= 0 {
		return l.data[lrow]
	}
	return r.data[rrow]
}

func takeOrNA(s *Series, rows []int) *Series {
	data := make([]interface{}, len(rows))
	for i, r := range rows {
		if r >= 0 {
			data[i] = s.data[r]
		}
	}
	return &Series{name: s.name, ctype: s.ctype, data: data}
}

func compareNA(ctype ColumnType, a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return ctype.Compare(a, b)
}

func permute(rows, perm []int) []int {
	out := make([]int, len(perm))
	for i, p := range perm {
		out[i] = rows[p]
	}
	return out
}
