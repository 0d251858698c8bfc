package pipeline

import (
	"fmt"
	"sort"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
)

// binder validates the arguments of a verb and binds them into a Transform
type binder func(args []interface{}) (Transform, error)

// aliases maps alternative verb names to canonical ones
var aliases = map[string]string{
	"head":      "slice_head",
	"tail":      "slice_tail",
	"summarize": "summarise",
	"groupby":   "group_by",
}

// Canonical resolves a verb alias to its canonical name. Other names are returned unchanged.
func Canonical(name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Verbs returns the canonical names of every verb available to Pipeline.Verb, sorted
func Verbs() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]binder{
	"select": func(args []interface{}) (Transform, error) {
		sel, err := single[plyr.Selection]("select", args)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Select(in, sel) }, nil
	},
	"drop": func(args []interface{}) (Transform, error) {
		sel, err := single[plyr.Selection]("drop", args)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Drop(in, sel) }, nil
	},
	"relocate": func(args []interface{}) (Transform, error) {
		if err := arity("relocate", args, 1, 2); err != nil {
			return nil, err
		}
		sel, err := argAt[plyr.Selection]("relocate", args, 0)
		if err != nil {
			return nil, err
		}
		var place plyr.Placement
		if len(args) == 2 {
			if place, err = argAt[plyr.Placement]("relocate", args, 1); err != nil {
				return nil, err
			}
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Relocate(in, sel, place) }, nil
	},
	"rename": func(args []interface{}) (Transform, error) {
		renames, err := argsFrom[plyr.Renaming]("rename", args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Rename(in, renames...) }, nil
	},
	"rename_with": func(args []interface{}) (Transform, error) {
		fn, err := single[func(string) string]("rename_with", args)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.RenameWith(in, fn) }, nil
	},
	"filter": func(args []interface{}) (Transform, error) {
		if err := arity("filter", args, 1, 1); err != nil {
			return nil, err
		}
		var pred plyr.Predicate
		switch fn := args[0].(type) {
		case plyr.Predicate:
			pred = fn
		case func(*frame.Table) (interface{}, error):
			pred = fn
		default:
			return nil, wrongType("filter", 0, pred, args[0])
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Filter(in, pred) }, nil
	},
	"distinct": func(args []interface{}) (Transform, error) {
		subset, err := argsFrom[string]("distinct", args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Distinct(in, subset...) }, nil
	},
	"slice": func(args []interface{}) (Transform, error) {
		if err := arity("slice", args, 1, 3); err != nil {
			return nil, err
		}
		positions, err := argsFrom[int]("slice", args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Slice(in, positions...) }, nil
	},
	"slice_head":   bindSlice("slice_head", plyr.SliceHead),
	"slice_tail":   bindSlice("slice_tail", plyr.SliceTail),
	"slice_sample": bindSlice("slice_sample", plyr.SliceSample),
	"slice_max":    bindSliceBy("slice_max", plyr.SliceMax),
	"slice_min":    bindSliceBy("slice_min", plyr.SliceMin),
	"arrange": func(args []interface{}) (Transform, error) {
		if err := arity("arrange", args, 1, -1); err != nil {
			return nil, err
		}
		keys, err := argsFrom[frame.SortKey]("arrange", args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Arrange(in, keys...) }, nil
	},
	"mutate":    bindExprs("mutate", plyr.Mutate),
	"transmute": bindExprs("transmute", plyr.Transmute),
	"summarise": bindExprs("summarise", plyr.Summarise),
	"group_by": func(args []interface{}) (Transform, error) {
		if err := arity("group_by", args, 1, -1); err != nil {
			return nil, err
		}
		keys, err := argAt[[]string]("group_by", args, 0)
		if err != nil {
			return nil, err
		}
		opts, err := argsFrom[plyr.GroupOption]("group_by", args, 1)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.GroupBy(in, keys, opts...) }, nil
	},
	"ungroup": func(args []interface{}) (Transform, error) {
		if err := arity("ungroup", args, 0, 0); err != nil {
			return nil, err
		}
		return plyr.Ungroup, nil
	},
	"reset_index": func(args []interface{}) (Transform, error) {
		if err := arity("reset_index", args, 0, 0); err != nil {
			return nil, err
		}
		return plyr.ResetIndex, nil
	},
	"tally": func(args []interface{}) (Transform, error) {
		opts, err := argsFrom[plyr.TallyOption]("tally", args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Tally(in, opts...) }, nil
	},
	"count": func(args []interface{}) (Transform, error) {
		if err := arity("count", args, 1, -1); err != nil {
			return nil, err
		}
		keys, err := argAt[[]string]("count", args, 0)
		if err != nil {
			return nil, err
		}
		opts, err := argsFrom[plyr.TallyOption]("count", args, 1)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Count(in, keys, opts...) }, nil
	},
	"merge": func(args []interface{}) (Transform, error) {
		if err := arity("merge", args, 2, -1); err != nil {
			return nil, err
		}
		right, err := argAt[*frame.Table]("merge", args, 0)
		if err != nil {
			return nil, err
		}
		how, err := argAt[string]("merge", args, 1)
		if err != nil {
			return nil, err
		}
		if _, err := frame.ParseJoinType(how); err != nil {
			return nil, err
		}
		opts, err := argsFrom[plyr.JoinOption]("merge", args, 2)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.Merge(in, right, how, opts...) }, nil
	},
	"inner_join": bindJoin("inner_join", plyr.InnerJoin),
	"left_join":  bindJoin("left_join", plyr.LeftJoin),
	"right_join": bindJoin("right_join", plyr.RightJoin),
	"outer_join": bindJoin("outer_join", plyr.OuterJoin),
	"semi_join":  bindJoin("semi_join", plyr.SemiJoin),
	"anti_join":  bindJoin("anti_join", plyr.AntiJoin),
	"group_walk": func(args []interface{}) (Transform, error) {
		if err := arity("group_walk", args, 1, 1); err != nil {
			return nil, err
		}
		var fn plyr.GroupFunc
		switch f := args[0].(type) {
		case plyr.GroupFunc:
			fn = f
		case func([]interface{}, *frame.Table) error:
			fn = f
		default:
			return nil, wrongType("group_walk", 0, fn, args[0])
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.GroupWalk(in, fn) }, nil
	},
	"group_modify": func(args []interface{}) (Transform, error) {
		if err := arity("group_modify", args, 1, 1); err != nil {
			return nil, err
		}
		var fn plyr.GroupModifyFunc
		switch f := args[0].(type) {
		case plyr.GroupModifyFunc:
			fn = f
		case func([]interface{}, *frame.Table) (*frame.Table, error):
			fn = f
		default:
			return nil, wrongType("group_modify", 0, fn, args[0])
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return plyr.GroupModify(in, fn) }, nil
	},
}

func bindSlice(verb string, fn func(plyr.TableRef, ...plyr.SliceOption) (plyr.TableRef, error)) binder {
	return func(args []interface{}) (Transform, error) {
		opts, err := argsFrom[plyr.SliceOption](verb, args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return fn(in, opts...) }, nil
	}
}

func bindSliceBy(verb string, fn func(plyr.TableRef, string, ...plyr.SliceOption) (plyr.TableRef, error)) binder {
	return func(args []interface{}) (Transform, error) {
		if err := arity(verb, args, 1, -1); err != nil {
			return nil, err
		}
		by, err := argAt[string](verb, args, 0)
		if err != nil {
			return nil, err
		}
		opts, err := argsFrom[plyr.SliceOption](verb, args, 1)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return fn(in, by, opts...) }, nil
	}
}

func bindExprs(verb string, fn func(plyr.TableRef, ...plyr.Expr) (plyr.TableRef, error)) binder {
	return func(args []interface{}) (Transform, error) {
		if err := arity(verb, args, 1, -1); err != nil {
			return nil, err
		}
		exprs, err := argsFrom[plyr.Expr](verb, args, 0)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return fn(in, exprs...) }, nil
	}
}

func bindJoin(verb string, fn func(plyr.TableRef, *frame.Table, ...plyr.JoinOption) (plyr.TableRef, error)) binder {
	return func(args []interface{}) (Transform, error) {
		if err := arity(verb, args, 1, -1); err != nil {
			return nil, err
		}
		right, err := argAt[*frame.Table](verb, args, 0)
		if err != nil {
			return nil, err
		}
		opts, err := argsFrom[plyr.JoinOption](verb, args, 1)
		if err != nil {
			return nil, err
		}
		return func(in plyr.TableRef) (plyr.TableRef, error) { return fn(in, right, opts...) }, nil
	}
}

// arity checks the number of arguments. A negative max means no upper bound.
func arity(verb string, args []interface{}, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return errors.InvalidArgumentsError{Verb: verb, Reason: fmt.Sprintf("%d arguments given", len(args))}
	}
	return nil
}

func single[T any](verb string, args []interface{}) (T, error) {
	if err := arity(verb, args, 1, 1); err != nil {
		var zero T
		return zero, err
	}
	return argAt[T](verb, args, 0)
}

func argAt[T any](verb string, args []interface{}, i int) (T, error) {
	v, ok := args[i].(T)
	if !ok {
		return v, wrongType(verb, i, v, args[i])
	}
	return v, nil
}

func argsFrom[T any](verb string, args []interface{}, from int) ([]T, error) {
	out := make([]T, 0, len(args))
	for i := from; i < len(args); i++ {
		v, err := argAt[T](verb, args, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func wrongType(verb string, i int, expected, got interface{}) error {
	return errors.InvalidArgumentsError{Verb: verb, Reason: fmt.Sprintf("argument %d should be a %T, not a %T", i, expected, got)}
}
