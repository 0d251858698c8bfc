package plyr_test

import (
	"testing"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
	plyrtest "github.com/go-sif/plyr/testing"
	"github.com/stretchr/testify/require"
)

func joinSides() (plyr.Flat, *frame.Table) {
	left := frame.MustNew(frame.Ints("k", 1, 2, 3), frame.Strings("v", "a", "b", "c"))
	right := frame.MustNew(frame.Ints("k", 2, 3, 4), frame.Strings("w", "B", "C", "D"))
	return plyr.NewFlat(left), right
}

func TestJoins(t *testing.T) {
	cases := []struct {
		name     string
		join     func(plyr.TableRef, *frame.Table, ...plyr.JoinOption) (plyr.TableRef, error)
		names    []string
		expected [][]interface{}
	}{
		{"inner", plyr.InnerJoin, []string{"k", "v", "w"}, [][]interface{}{
			{2, "b", "B"},
			{3, "c", "C"},
		}},
		{"left", plyr.LeftJoin, []string{"k", "v", "w"}, [][]interface{}{
			{1, "a", nil},
			{2, "b", "B"},
			{3, "c", "C"},
		}},
		{"right", plyr.RightJoin, []string{"k", "v", "w"}, [][]interface{}{
			{2, "b", "B"},
			{3, "c", "C"},
			{4, nil, "D"},
		}},
		{"outer", plyr.OuterJoin, []string{"k", "v", "w"}, [][]interface{}{
			{1, "a", nil},
			{2, "b", "B"},
			{3, "c", "C"},
			{4, nil, "D"},
		}},
		{"semi", plyr.SemiJoin, []string{"k", "v"}, [][]interface{}{
			{2, "b"},
			{3, "c"},
		}},
		{"anti", plyr.AntiJoin, []string{"k", "v"}, [][]interface{}{
			{1, "a"},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			left, right := joinSides()
			out, err := c.join(left, right)
			require.Nil(t, err)
			plyrtest.RequireRecords(t, out.Table(), c.names, c.expected...)

			merged, err := plyr.Merge(left, right, c.name)
			require.Nil(t, err)
			plyrtest.RequireTableEqual(t, out.Table(), merged.Table())
		})
	}
}

func TestJoinSuffixesAndIndicator(t *testing.T) {
	left, _ := joinSides()
	right := frame.MustNew(frame.Ints("k", 3, 4), frame.Strings("v", "C", "D"))

	out, err := plyr.OuterJoin(left, right, plyr.On("k"), plyr.Indicator())
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"k", "v_x", "v_y", "_merge"},
		[]interface{}{1, "a", nil, "left_only"},
		[]interface{}{2, "b", nil, "left_only"},
		[]interface{}{3, "c", "C", "both"},
		[]interface{}{4, nil, "D", "right_only"},
	)

	out, err = plyr.InnerJoin(left, right, plyr.On("k"), plyr.Suffixes("_left", "_right"))
	require.Nil(t, err)
	require.Equal(t, []string{"k", "v_left", "v_right"}, out.Table().Names())
}

func TestJoinOnDifferentNames(t *testing.T) {
	left, _ := joinSides()
	right := frame.MustNew(frame.Ints("id", 3, 1), frame.Strings("w", "C", "A"))

	out, err := plyr.InnerJoin(left, right, plyr.LeftOn("k"), plyr.RightOn("id"), plyr.SortKeys())
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"k", "v", "id", "w"},
		[]interface{}{1, "a", 1, "A"},
		[]interface{}{3, "c", 3, "C"},
	)
}

func TestJoinMissingKeysMatch(t *testing.T) {
	left := plyr.NewFlat(frame.MustNew(frame.Values("k", 1, nil), frame.Strings("v", "a", "b")))
	right := frame.MustNew(frame.Values("k", nil), frame.Strings("w", "B"))
	out, err := plyr.InnerJoin(left, right)
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"k", "v", "w"}, []interface{}{nil, "b", "B"})
}

func TestJoinKeepsGrouping(t *testing.T) {
	left, right := joinSides()
	g, err := plyr.GroupBy(left, []string{"k"})
	require.Nil(t, err)
	out, err := plyr.LeftJoin(g, right)
	require.Nil(t, err)
	grouped, ok := out.(*plyr.Grouped)
	require.True(t, ok)
	require.Equal(t, 3, grouped.NumGroups())
	require.Equal(t, []string{"k", "v", "w"}, grouped.Table().Names())
}

func TestJoinErrors(t *testing.T) {
	left, right := joinSides()

	_, err := plyr.InnerJoin(left, nil)
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.InnerJoin(left, right, plyr.On("k"), plyr.LeftOn("k"))
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.InnerJoin(left, right, plyr.LeftOn("k", "v"), plyr.RightOn("k"))
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.InnerJoin(left, frame.MustNew(frame.Ints("z", 1)))
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.InnerJoin(left, right, plyr.On("nope"))
	require.Equal(t, errors.KeyResolutionError{Key: "nope"}, err)

	_, err = plyr.Merge(left, right, "cross")
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}
