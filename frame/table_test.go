package frame

import (
	"strings"
	"testing"

	"github.com/go-sif/plyr/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesColumns(t *testing.T) {
	_, err := New(Ints("a", 1, 2), Ints("a", 3, 4), Strings("b", "x"))
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.IsType(t, errors.NameCollisionError{}, merr.Errors[0])
	require.IsType(t, errors.IncompatibleColumnError{}, merr.Errors[1])
}

func TestTypedSeriesConstruction(t *testing.T) {
	s, err := NewSeries("x", []int{1, 2, 3})
	require.Nil(t, err)
	require.Equal(t, "int", s.Type().Name())
	require.Equal(t, int64(2), s.At(1))

	s, err = NewSeries("x", []interface{}{1, 2.5, nil})
	require.Nil(t, err)
	require.Equal(t, "float", s.Type().Name())
	require.Equal(t, 1.0, s.At(0))
	require.True(t, s.IsNA(2))

	_, err = NewSeries("x", 42)
	require.IsType(t, errors.IncompatibleColumnError{}, err)
}

func TestSelectDropRename(t *testing.T) {
	tab := MustNew(Ints("x", 1, 2), Ints("y", 3, 4), Ints("z", 5, 6))

	sel, err := tab.Select("z", "x")
	require.Nil(t, err)
	require.Equal(t, []string{"z", "x"}, sel.Names())

	_, err = tab.Select("nope")
	require.Equal(t, errors.KeyResolutionError{Key: "nope"}, err)

	dropped, err := tab.Drop("y")
	require.Nil(t, err)
	require.Equal(t, []string{"x", "z"}, dropped.Names())

	renamed, err := tab.Rename(map[string]string{"x": "y", "y": "x"})
	require.Nil(t, err)
	require.Equal(t, []string{"y", "x", "z"}, renamed.Names())
	require.Equal(t, int64(1), renamed.MustColumn("y").At(0))

	_, err = tab.Rename(map[string]string{"x": "z"})
	require.IsType(t, errors.NameCollisionError{}, err)
	// the original is untouched
	require.Equal(t, []string{"x", "y", "z"}, tab.Names())
}

func TestAssignBroadcastsAndReplaces(t *testing.T) {
	tab := MustNew(Ints("x", 1, 2, 3))
	out, err := tab.Assign("c", "k")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"k", "k", "k"}, out.MustColumn("c").Values())

	out, err = out.Assign("x", []float64{0.5, 1.5, 2.5})
	require.Nil(t, err)
	require.Equal(t, []string{"x", "c"}, out.Names())
	require.Equal(t, "float", out.MustColumn("x").Type().Name())

	_, err = tab.Assign("bad", []int{1})
	require.IsType(t, errors.IncompatibleColumnError{}, err)
}

func TestSliceRowsFollowsSliceSemantics(t *testing.T) {
	tab := MustNew(Ints("x", 0, 1, 2, 3, 4))
	cases := []struct {
		start, stop, step int
		expected          []interface{}
	}{
		{0, 2, 1, []interface{}{int64(0), int64(1)}},
		{-2, 5, 1, []interface{}{int64(3), int64(4)}},
		{0, 5, 2, []interface{}{int64(0), int64(2), int64(4)}},
		{4, -6, -1, []interface{}{int64(4), int64(3), int64(2), int64(1), int64(0)}},
		{3, 100, 1, []interface{}{int64(3), int64(4)}},
		{4, 2, 1, []interface{}{}},
	}
	for _, c := range cases {
		out, err := tab.SliceRows(c.start, c.stop, c.step)
		require.Nil(t, err)
		require.Equal(t, c.expected, out.MustColumn("x").Values())
	}
	_, err := tab.SliceRows(0, 1, 0)
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}

func TestMask(t *testing.T) {
	tab := MustNew(Ints("x", 1, 2, 3))
	out, err := tab.Mask(true)
	require.Nil(t, err)
	require.Equal(t, 3, out.NumRows())
	out, err = tab.Mask(false)
	require.Nil(t, err)
	require.Equal(t, 0, out.NumRows())
	out, err = tab.Mask(tab.MustColumn("x").Gt(1))
	require.Nil(t, err)
	require.Equal(t, []int{1, 2}, out.Index())
	out, err = tab.Mask(Values("m", true, nil, true))
	require.Nil(t, err)
	require.Equal(t, []int{0, 2}, out.Index())
	_, err = tab.Mask("yes")
	require.NotNil(t, err)
}

func TestConcatUnionsColumns(t *testing.T) {
	a := MustNew(Ints("x", 1), Strings("y", "a"))
	b := MustNew(Floats("x", 2.5), Bools("z", true))
	out, err := Concat(a, b)
	require.Nil(t, err)
	require.Equal(t, []string{"x", "y", "z"}, out.Names())
	require.Equal(t, "float", out.MustColumn("x").Type().Name())
	require.Equal(t, []interface{}{"a", nil}, out.MustColumn("y").Values())
	require.Equal(t, []int{0, 0}, out.Index())
	require.Equal(t, []int{0, 1}, out.ResetIndex().Index())
}

func TestSortByIsStableWithNALast(t *testing.T) {
	tab := MustNew(
		Values("k", 2, nil, 1, 2, 1),
		Strings("v", "a", "b", "c", "d", "e"),
	)
	out, err := tab.SortBy(SortKey{Column: "k"})
	require.Nil(t, err)
	require.Equal(t, []interface{}{"c", "e", "a", "d", "b"}, out.MustColumn("v").Values())

	out, err = tab.SortBy(SortKey{Column: "k", Descending: true})
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "d", "c", "e", "b"}, out.MustColumn("v").Values())

	out, err = tab.SortBy(SortKey{Column: "k", NAFirst: true})
	require.Nil(t, err)
	require.Equal(t, "b", out.MustColumn("v").At(0))

	_, err = tab.SortBy(SortKey{Column: "missing"})
	require.Equal(t, errors.KeyResolutionError{Key: "missing"}, err)
}

func TestPartition(t *testing.T) {
	tab := MustNew(
		Values("a", "y", "x", nil, "y", "x"),
		Ints("b", 1, 2, 3, 4, 5),
	)
	groups, err := tab.Partition([]string{"a"}, PartitionOptions{DropNA: true})
	require.Nil(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, []interface{}{"y"}, groups[0].Key)
	require.Equal(t, []int{0, 3}, groups[0].Rows)
	require.Equal(t, []int{1, 4}, groups[1].Rows)

	groups, err = tab.Partition([]string{"a"}, PartitionOptions{Sort: true})
	require.Nil(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, []interface{}{"x"}, groups[0].Key)
	require.Equal(t, []interface{}{nil}, groups[2].Key)

	_, err = tab.Partition([]string{"c"}, PartitionOptions{})
	require.Equal(t, errors.KeyResolutionError{Key: "c"}, err)
}

func TestDistinct(t *testing.T) {
	tab := MustNew(Ints("a", 1, 1, 2, 1), Strings("b", "x", "x", "y", "z"))
	out, err := tab.Distinct()
	require.Nil(t, err)
	require.Equal(t, []int{0, 2, 3}, out.Index())
	out, err = tab.Distinct("a")
	require.Nil(t, err)
	require.Equal(t, []int{0, 2}, out.Index())
}

func TestMixedNumbersGroupTogether(t *testing.T) {
	tab := MustNew(Values("a", 1, 1.0, int64(2), "1"), Ints("b", 1, 2, 3, 4))
	require.Equal(t, "any", tab.MustColumn("a").Type().Name())

	groups, err := tab.Partition([]string{"a"}, PartitionOptions{})
	require.Nil(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, []int{0, 1}, groups[0].Rows)
	require.Equal(t, []int{2}, groups[1].Rows)
	require.Equal(t, []int{3}, groups[2].Rows)

	out, err := tab.Distinct("a")
	require.Nil(t, err)
	require.Equal(t, []int{0, 2, 3}, out.Index())
}

func TestJoin(t *testing.T) {
	left := MustNew(Ints("k", 1, 2, 3), Strings("v", "a", "b", "c"))
	right := MustNew(Floats("k", 3, 1, 1, 4), Strings("v", "C", "A", "AA", "D"))

	inner, err := left.Join(right, JoinOptions{How: InnerJoin, LeftOn: []string{"k"}, RightOn: []string{"k"}, Suffixes: [2]string{"_x", "_y"}})
	require.Nil(t, err)
	require.Equal(t, []string{"k", "v_x", "v_y"}, inner.Names())
	require.Equal(t, [][]interface{}{
		{1.0, "a", "A"},
		{1.0, "a", "AA"},
		{3.0, "c", "C"},
	}, inner.Records())

	leftJoined, err := left.Join(right, JoinOptions{How: LeftJoin, LeftOn: []string{"k"}, RightOn: []string{"k"}, Suffixes: [2]string{"_x", "_y"}, Indicator: true})
	require.Nil(t, err)
	require.Equal(t, 4, leftJoined.NumRows())
	require.Equal(t, []interface{}{"both", "both", "left_only", "both"}, leftJoined.MustColumn(IndicatorColumn).Values())

	outer, err := left.Join(right, JoinOptions{How: OuterJoin, LeftOn: []string{"k"}, RightOn: []string{"k"}, Suffixes: [2]string{"_x", "_y"}})
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.0, 1.0, 2.0, 3.0, 4.0}, outer.MustColumn("k").Values())

	semi, err := left.Join(right, JoinOptions{How: SemiJoin, LeftOn: []string{"k"}, RightOn: []string{"k"}})
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "c"}, semi.MustColumn("v").Values())

	anti, err := left.Join(right, JoinOptions{How: AntiJoin, LeftOn: []string{"k"}, RightOn: []string{"k"}})
	require.Nil(t, err)
	require.Equal(t, []interface{}{"b"}, anti.MustColumn("v").Values())

	_, err = left.Join(right, JoinOptions{LeftOn: []string{"k"}})
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}

func TestFromJSONLines(t *testing.T) {
	data := `{"name": "Sean", "meta": {"index": 1}, "score": 1.5}
{"name": "Chris", "meta": {"index": 3}}

{"name": "Phil", "score": 2, "ok": true}`
	tab, err := FromJSONLines(strings.NewReader(data), nil)
	require.Nil(t, err)
	require.Equal(t, []string{"name", "meta", "score", "ok"}, tab.Names())
	require.Equal(t, 3, tab.NumRows())
	require.Equal(t, "float", tab.MustColumn("score").Type().Name())
	require.Nil(t, tab.MustColumn("score").At(1))
	require.Equal(t, []interface{}{nil, nil, true}, tab.MustColumn("ok").Values())

	tab, err = FromJSONLines(strings.NewReader(data), &JSONLinesConf{Columns: []string{"name", "meta.index"}})
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(3), nil}, tab.MustColumn("meta.index").Values())
}

func TestEqualIgnoresIndex(t *testing.T) {
	a := MustNew(Ints("x", 1, 2, 3))
	b, err := a.SliceRows(1, 3, 1)
	require.Nil(t, err)
	require.True(t, b.ResetIndex().Equal(MustNew(Ints("x", 2, 3))))
	require.False(t, a.Equal(b))
	require.Contains(t, a.String(), "x")
}
