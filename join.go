package plyr

import (
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

type joinConf struct {
	on        []string
	leftOn    []string
	rightOn   []string
	suffixes  [2]string
	sort      bool
	indicator bool
}

// JoinOption configures the join verbs
type JoinOption func(*joinConf)

// On joins on columns present on both sides under the same names
func On(cols ...string) JoinOption {
	return func(c *joinConf) { c.on = cols }
}

// LeftOn names the key columns of the left table, paired with RightOn
func LeftOn(cols ...string) JoinOption {
	return func(c *joinConf) { c.leftOn = cols }
}

// RightOn names the key columns of the right table, paired with LeftOn
func RightOn(cols ...string) JoinOption {
	return func(c *joinConf) { c.rightOn = cols }
}

// Suffixes are appended to non-key column names present on both sides. Defaults to "_x" and "_y".
func Suffixes(left, right string) JoinOption {
	return func(c *joinConf) { c.suffixes = [2]string{left, right} }
}

// SortKeys orders the result by key
func SortKeys() JoinOption {
	return func(c *joinConf) { c.sort = true }
}

// Indicator adds a "_merge" column recording whether each row came from the left, the right or both
func Indicator() JoinOption {
	return func(c *joinConf) { c.indicator = true }
}

func (c *joinConf) options(verb string, how frame.JoinType, left, right *frame.Table) (frame.JoinOptions, error) {
	opts := frame.JoinOptions{How: how, Suffixes: c.suffixes, Sort: c.sort, Indicator: c.indicator}
	switch {
	case len(c.on) > 0 && (len(c.leftOn) > 0 || len(c.rightOn) > 0):
		return opts, errors.InvalidArgumentsError{Verb: verb, Reason: "on cannot be combined with left_on or right_on"}
	case len(c.on) > 0:
		opts.LeftOn, opts.RightOn = c.on, c.on
	case len(c.leftOn) > 0 || len(c.rightOn) > 0:
		if len(c.leftOn) != len(c.rightOn) {
			return opts, errors.InvalidArgumentsError{Verb: verb, Reason: "left_on and right_on must name the same number of columns"}
		}
		opts.LeftOn, opts.RightOn = c.leftOn, c.rightOn
	default:
		var common []string
		for _, name := range left.Names() {
			if right.HasColumn(name) {
				common = append(common, name)
			}
		}
		if len(common) == 0 {
			return opts, errors.InvalidArgumentsError{Verb: verb, Reason: "no common columns to join on"}
		}
		opts.LeftOn, opts.RightOn = common, common
	}
	return opts, nil
}

func join(verb string, how frame.JoinType, in TableRef, right *frame.Table, opts []JoinOption) (TableRef, error) {
	if right == nil {
		return nil, errors.InvalidArgumentsError{Verb: verb, Reason: "a right table is required"}
	}
	conf := &joinConf{suffixes: [2]string{"_x", "_y"}}
	for _, opt := range opts {
		opt(conf)
	}
	return applyWhole(verb, in, func(t *frame.Table) (*frame.Table, error) {
		joinOpts, err := conf.options(verb, how, t, right)
		if err != nil {
			return nil, err
		}
		return t.Join(right, joinOpts)
	})
}

// InnerJoin keeps rows whose key appears in both tables
func InnerJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("inner_join", frame.InnerJoin, in, right, opts)
}

// LeftJoin keeps every row of the input, adding matching right columns
func LeftJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("left_join", frame.LeftJoin, in, right, opts)
}

// RightJoin keeps every row of right, adding matching input columns
func RightJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("right_join", frame.RightJoin, in, right, opts)
}

// OuterJoin keeps every row of both tables, ordered by key
func OuterJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("outer_join", frame.OuterJoin, in, right, opts)
}

// SemiJoin keeps the rows of the input whose key appears in right, without adding columns
func SemiJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("semi_join", frame.SemiJoin, in, right, opts)
}

// AntiJoin keeps the rows of the input whose key does not appear in right
func AntiJoin(in TableRef, right *frame.Table, opts ...JoinOption) (TableRef, error) {
	return join("anti_join", frame.AntiJoin, in, right, opts)
}

// Merge joins with a join type given by name: "inner", "left", "right", "outer", "semi" or "anti"
func Merge(in TableRef, right *frame.Table, how string, opts ...JoinOption) (TableRef, error) {
	joinType, err := frame.ParseJoinType(how)
	if err != nil {
		return nil, err
	}
	return join("merge", joinType, in, right, opts)
}
