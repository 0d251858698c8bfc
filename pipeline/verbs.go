package pipeline

import (
	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/frame"
)

func toArgs[T any](leading []interface{}, xs []T) []interface{} {
	args := make([]interface{}, 0, len(leading)+len(xs))
	args = append(args, leading...)
	for _, x := range xs {
		args = append(args, x)
	}
	return args
}

// Select appends plyr.Select
func (p *Pipeline) Select(sel plyr.Selection) *Pipeline {
	return p.Verb("select", sel)
}

// Drop appends plyr.Drop
func (p *Pipeline) Drop(sel plyr.Selection) *Pipeline {
	return p.Verb("drop", sel)
}

// Relocate appends plyr.Relocate
func (p *Pipeline) Relocate(sel plyr.Selection, place plyr.Placement) *Pipeline {
	return p.Verb("relocate", sel, place)
}

// Rename appends plyr.Rename
func (p *Pipeline) Rename(renames ...plyr.Renaming) *Pipeline {
	return p.Verb("rename", toArgs(nil, renames)...)
}

// RenameWith appends plyr.RenameWith
func (p *Pipeline) RenameWith(fn func(name string) string) *Pipeline {
	return p.Verb("rename_with", fn)
}

// Filter appends plyr.Filter
func (p *Pipeline) Filter(pred plyr.Predicate) *Pipeline {
	return p.Verb("filter", pred)
}

// Distinct appends plyr.Distinct
func (p *Pipeline) Distinct(subset ...string) *Pipeline {
	return p.Verb("distinct", toArgs(nil, subset)...)
}

// Slice appends plyr.Slice
func (p *Pipeline) Slice(positions ...int) *Pipeline {
	return p.Verb("slice", toArgs(nil, positions)...)
}

// SliceHead appends plyr.SliceHead
func (p *Pipeline) SliceHead(opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("slice_head", toArgs(nil, opts)...)
}

// Head appends plyr.SliceHead
func (p *Pipeline) Head(opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("head", toArgs(nil, opts)...)
}

// SliceTail appends plyr.SliceTail
func (p *Pipeline) SliceTail(opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("slice_tail", toArgs(nil, opts)...)
}

// Tail appends plyr.SliceTail
func (p *Pipeline) Tail(opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("tail", toArgs(nil, opts)...)
}

// SliceSample appends plyr.SliceSample
func (p *Pipeline) SliceSample(opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("slice_sample", toArgs(nil, opts)...)
}

// SliceMax appends plyr.SliceMax
func (p *Pipeline) SliceMax(by string, opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("slice_max", toArgs([]interface{}{by}, opts)...)
}

// SliceMin appends plyr.SliceMin
func (p *Pipeline) SliceMin(by string, opts ...plyr.SliceOption) *Pipeline {
	return p.Verb("slice_min", toArgs([]interface{}{by}, opts)...)
}

// Arrange appends plyr.Arrange
func (p *Pipeline) Arrange(keys ...frame.SortKey) *Pipeline {
	return p.Verb("arrange", toArgs(nil, keys)...)
}

// Mutate appends plyr.Mutate
func (p *Pipeline) Mutate(exprs ...plyr.Expr) *Pipeline {
	return p.Verb("mutate", toArgs(nil, exprs)...)
}

// Transmute appends plyr.Transmute
func (p *Pipeline) Transmute(exprs ...plyr.Expr) *Pipeline {
	return p.Verb("transmute", toArgs(nil, exprs)...)
}

// Summarise appends plyr.Summarise
func (p *Pipeline) Summarise(exprs ...plyr.Expr) *Pipeline {
	return p.Verb("summarise", toArgs(nil, exprs)...)
}

// Summarize appends plyr.Summarise
func (p *Pipeline) Summarize(exprs ...plyr.Expr) *Pipeline {
	return p.Verb("summarize", toArgs(nil, exprs)...)
}

// GroupBy appends plyr.GroupBy
func (p *Pipeline) GroupBy(keys []string, opts ...plyr.GroupOption) *Pipeline {
	return p.Verb("group_by", toArgs([]interface{}{keys}, opts)...)
}

// Groupby appends plyr.GroupBy
func (p *Pipeline) Groupby(keys []string, opts ...plyr.GroupOption) *Pipeline {
	return p.Verb("groupby", toArgs([]interface{}{keys}, opts)...)
}

// Ungroup appends plyr.Ungroup
func (p *Pipeline) Ungroup() *Pipeline {
	return p.Verb("ungroup")
}

// ResetIndex appends plyr.ResetIndex
func (p *Pipeline) ResetIndex() *Pipeline {
	return p.Verb("reset_index")
}

// Tally appends plyr.Tally
func (p *Pipeline) Tally(opts ...plyr.TallyOption) *Pipeline {
	return p.Verb("tally", toArgs(nil, opts)...)
}

// Count appends plyr.Count
func (p *Pipeline) Count(keys []string, opts ...plyr.TallyOption) *Pipeline {
	return p.Verb("count", toArgs([]interface{}{keys}, opts)...)
}

// Merge appends plyr.Merge
func (p *Pipeline) Merge(right *frame.Table, how string, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("merge", toArgs([]interface{}{right, how}, opts)...)
}

// InnerJoin appends plyr.InnerJoin
func (p *Pipeline) InnerJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("inner_join", toArgs([]interface{}{right}, opts)...)
}

// LeftJoin appends plyr.LeftJoin
func (p *Pipeline) LeftJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("left_join", toArgs([]interface{}{right}, opts)...)
}

// RightJoin appends plyr.RightJoin
func (p *Pipeline) RightJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("right_join", toArgs([]interface{}{right}, opts)...)
}

// OuterJoin appends plyr.OuterJoin
func (p *Pipeline) OuterJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("outer_join", toArgs([]interface{}{right}, opts)...)
}

// SemiJoin appends plyr.SemiJoin
func (p *Pipeline) SemiJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("semi_join", toArgs([]interface{}{right}, opts)...)
}

// AntiJoin appends plyr.AntiJoin
func (p *Pipeline) AntiJoin(right *frame.Table, opts ...plyr.JoinOption) *Pipeline {
	return p.Verb("anti_join", toArgs([]interface{}{right}, opts)...)
}

// GroupWalk appends plyr.GroupWalk
func (p *Pipeline) GroupWalk(fn plyr.GroupFunc) *Pipeline {
	return p.Verb("group_walk", fn)
}

// GroupModify appends plyr.GroupModify
func (p *Pipeline) GroupModify(fn plyr.GroupModifyFunc) *Pipeline {
	return p.Verb("group_modify", fn)
}
