package plyr_test

import (
	"strings"
	"testing"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
	plyrtest "github.com/go-sif/plyr/testing"
	"github.com/stretchr/testify/require"
)

func xyz() plyr.Flat {
	return plyr.NewFlat(frame.MustNew(
		frame.Ints("x", 1, 2),
		frame.Ints("y", 3, 4),
		frame.Ints("z", 5, 6),
	))
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name     string
		sel      plyr.Selection
		expected []string
	}{
		{"by name", plyr.Cols("x", "y"), []string{"x", "y"}},
		{"reordered", plyr.Cols("z", "x"), []string{"z", "x"}},
		{"by position", plyr.Cols(0, -1), []string{"x", "z"}},
		{"by predicate", plyr.Matching(func(name string) bool { return name != "y" }), []string{"x", "z"}},
		{"by range", plyr.Range("y", -1), []string{"y", "z"}},
		{"empty range", plyr.Range("z", "x"), []string{}},
		{"nothing", plyr.Cols(), []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := plyr.Select(xyz(), c.sel)
			require.Nil(t, err)
			require.Equal(t, c.expected, out.Table().Names())
			require.Equal(t, 2, out.Table().NumRows())
		})
	}
}

func TestSelectionErrors(t *testing.T) {
	_, err := plyr.Select(xyz(), plyr.Selection{})
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.Select(xyz(), plyr.Selection{Columns: []interface{}{"x"}, Predicate: func(string) bool { return true }})
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.Select(xyz(), plyr.Selection{Start: "x"})
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.Select(xyz(), plyr.Cols("w"))
	require.Equal(t, errors.KeyResolutionError{Key: "w"}, err)

	_, err = plyr.Select(xyz(), plyr.Cols(3))
	require.Equal(t, errors.KeyResolutionError{Key: 3}, err)

	_, err = plyr.Select(xyz(), plyr.Cols(1.5))
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}

func TestDrop(t *testing.T) {
	out, err := plyr.Drop(xyz(), plyr.Cols("y"))
	require.Nil(t, err)
	require.Equal(t, []string{"x", "z"}, out.Table().Names())

	out, err = plyr.Drop(xyz(), plyr.Range(0, 1))
	require.Nil(t, err)
	require.Equal(t, []string{"z"}, out.Table().Names())
}

func TestRelocate(t *testing.T) {
	cases := []struct {
		name     string
		sel      plyr.Selection
		place    plyr.Placement
		expected []string
	}{
		{"to the front by default", plyr.Cols("z"), plyr.Placement{}, []string{"z", "x", "y"}},
		{"before the first column", plyr.Cols("y", "z"), plyr.Placement{Before: 0}, []string{"y", "z", "x"}},
		{"to the end", plyr.Cols("x"), plyr.Placement{After: -1}, []string{"y", "z", "x"}},
		{"before a column", plyr.Cols("x"), plyr.Placement{Before: "z"}, []string{"y", "x", "z"}},
		{"after a column", plyr.Cols("z"), plyr.Placement{After: "x"}, []string{"x", "z", "y"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := plyr.Relocate(xyz(), c.sel, c.place)
			require.Nil(t, err)
			require.Equal(t, c.expected, out.Table().Names())
		})
	}
}

func TestRelocateErrors(t *testing.T) {
	_, err := plyr.Relocate(xyz(), plyr.Cols("x"), plyr.Placement{Before: "y", After: "z"})
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.Relocate(xyz(), plyr.Cols("x", "y"), plyr.Placement{After: "y"})
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.Relocate(xyz(), plyr.Cols("x"), plyr.Placement{Before: "w"})
	require.Equal(t, errors.KeyResolutionError{Key: "w"}, err)
}

func TestRename(t *testing.T) {
	out, err := plyr.Rename(xyz(), plyr.As("a", "x"), plyr.As("c", -1))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "y", "c"}, out.Table().Names())
	plyrtest.RequireColumn(t, out.Table(), "a", 1, 2)

	_, err = plyr.Rename(xyz(), plyr.As("a", "nope"))
	require.Equal(t, errors.KeyResolutionError{Key: "nope"}, err)

	_, err = plyr.Rename(xyz(), plyr.As("y", "x"))
	require.IsType(t, errors.NameCollisionError{}, err)
}

func TestRenameWith(t *testing.T) {
	out, err := plyr.RenameWith(xyz(), strings.ToUpper)
	require.Nil(t, err)
	require.Equal(t, []string{"X", "Y", "Z"}, out.Table().Names())

	_, err = plyr.RenameWith(xyz(), func(string) string { return "same" })
	require.IsType(t, errors.NameCollisionError{}, err)

	_, err = plyr.RenameWith(xyz(), nil)
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}

func TestRenameKeepsGrouping(t *testing.T) {
	g := groupBySpecies(t)
	out, err := plyr.Rename(g, plyr.As("mass", "body_mass_g"))
	require.Nil(t, err)
	grouped, ok := out.(*plyr.Grouped)
	require.True(t, ok)
	require.Equal(t, g.Keys(), grouped.Keys())
	require.True(t, grouped.Table().HasColumn("mass"))
}

func TestPull(t *testing.T) {
	s, err := plyr.Pull(xyz(), nil)
	require.Nil(t, err)
	require.Equal(t, "z", s.Name())
	require.Equal(t, []interface{}{int64(5), int64(6)}, s.Values())

	s, err = plyr.Pull(xyz(), "y")
	require.Nil(t, err)
	require.Equal(t, "y", s.Name())

	s, err = plyr.Pull(groupBySpecies(t), "island")
	require.Nil(t, err)
	require.Equal(t, 8, s.Len())

	_, err = plyr.Pull(xyz(), "w")
	require.Equal(t, errors.KeyResolutionError{Key: "w"}, err)
}
