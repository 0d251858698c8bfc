package plyr_test

import (
	"testing"

	"github.com/go-sif/plyr"
	"github.com/go-sif/plyr/errors"
	"github.com/go-sif/plyr/frame"
	plyrtest "github.com/go-sif/plyr/testing"
	"github.com/stretchr/testify/require"
)

func groupBySpecies(t *testing.T, opts ...plyr.GroupOption) *plyr.Grouped {
	in, err := plyr.GroupBy(plyr.NewFlat(plyrtest.Penguins()), []string{"species"}, opts...)
	require.Nil(t, err)
	g, ok := in.(*plyr.Grouped)
	require.True(t, ok)
	return g
}

func TestGroupByDefaults(t *testing.T) {
	g := groupBySpecies(t)
	spec := g.Spec()
	require.Equal(t, []string{"species"}, spec.Keys)
	require.True(t, spec.AsIndex)
	require.True(t, spec.Sort)
	require.True(t, spec.GroupKeys)
	require.True(t, spec.DropNA)
	require.False(t, spec.Observed)
	require.Equal(t, 3, g.NumGroups())
	require.Equal(t, [][]interface{}{{"Adelie"}, {"Chinstrap"}, {"Gentoo"}}, g.Keys())
}

func TestGroupByFirstAppearanceOrder(t *testing.T) {
	g := groupBySpecies(t, plyr.SortGroups(false))
	require.Equal(t, [][]interface{}{{"Adelie"}, {"Gentoo"}, {"Chinstrap"}}, g.Keys())
}

func TestGroupByRequiresKeys(t *testing.T) {
	_, err := plyr.GroupBy(plyr.NewFlat(plyrtest.Penguins()), nil)
	require.IsType(t, errors.InvalidArgumentsError{}, err)

	_, err = plyr.GroupBy(plyr.NewFlat(plyrtest.Penguins()), []string{"genus"})
	require.Equal(t, errors.KeyResolutionError{Key: "genus"}, err)
}

func TestGroupedVerbsKeepSpec(t *testing.T) {
	g := groupBySpecies(t, plyr.SortGroups(false), plyr.AsIndex(false))
	out, err := plyr.Filter(g, func(tab *frame.Table) (interface{}, error) {
		return tab.MustColumn("body_mass_g").Gt(3600), nil
	})
	require.Nil(t, err)
	grouped, ok := out.(*plyr.Grouped)
	require.True(t, ok)
	require.Equal(t, g.Spec(), grouped.Spec())
	require.Equal(t, [][]interface{}{{"Adelie"}, {"Gentoo"}, {"Chinstrap"}}, grouped.Keys())
	plyrtest.RequireColumn(t, grouped.Table(), "body_mass_g", 3750, 3800, 4500, 5700, 4450, 3900)
	// rows are renumbered after a per-group verb
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, grouped.Table().Index())
}

func TestDroppingGroupingKeyFails(t *testing.T) {
	g := groupBySpecies(t)
	_, err := plyr.Select(g, plyr.Cols("island"))
	require.Equal(t, errors.KeyResolutionError{Key: "species"}, err)

	_, err = plyr.Rename(g, plyr.As("kind", "species"))
	require.Equal(t, errors.KeyResolutionError{Key: "species"}, err)
}

func TestUngroupRoundTrip(t *testing.T) {
	penguins := plyrtest.Penguins()
	g, err := plyr.GroupBy(plyr.NewFlat(penguins), []string{"species", "island"})
	require.Nil(t, err)
	out, err := plyr.Ungroup(g)
	require.Nil(t, err)
	require.IsType(t, plyr.Flat{}, out)
	plyrtest.RequireTableEqual(t, penguins, out.Table())
	require.Equal(t, penguins.Index(), out.Table().Index())
}

func TestUngroupFlatResetsIndex(t *testing.T) {
	arranged, err := plyr.Arrange(plyr.NewFlat(plyrtest.Penguins()), plyr.Asc("body_mass_g"))
	require.Nil(t, err)
	require.Equal(t, []int{2, 5, 0, 1, 6, 7, 3, 4}, arranged.Table().Index())

	out, err := plyr.Ungroup(arranged)
	require.Nil(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, out.Table().Index())
	plyrtest.RequireColumn(t, out.Table(), "body_mass_g", 3250, 3500, 3750, 3800, 3900, 4450, 4500, 5700)
}

func TestComputedGroupKey(t *testing.T) {
	heavy := func(tab *frame.Table, row int) (interface{}, error) {
		mass, _ := tab.MustColumn("body_mass_g").Int(row)
		return mass > 4000, nil
	}
	g, err := plyr.GroupBy(plyr.NewFlat(plyrtest.Penguins()), nil, plyr.KeyBy("heavy", heavy))
	require.Nil(t, err)
	out, err := plyr.Tally(g)
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"heavy", "n"},
		[]interface{}{false, 5},
		[]interface{}{true, 3},
	)
}

func TestGroupByMissingKeys(t *testing.T) {
	penguins := plyr.NewFlat(plyrtest.Penguins())
	g, err := plyr.GroupBy(penguins, []string{"sex"})
	require.Nil(t, err)
	out, err := plyr.Tally(g)
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"sex", "n"},
		[]interface{}{"female", 4},
		[]interface{}{"male", 3},
	)

	g, err = plyr.GroupBy(penguins, []string{"sex"}, plyr.DropNA(false))
	require.Nil(t, err)
	out, err = plyr.Tally(g)
	require.Nil(t, err)
	plyrtest.RequireRecords(t, out.Table(), []string{"sex", "n"},
		[]interface{}{"female", 4},
		[]interface{}{"male", 3},
		[]interface{}{nil, 1},
	)
}

func TestNilTableRef(t *testing.T) {
	_, err := plyr.Select(nil, plyr.Cols("a"))
	require.IsType(t, errors.InvalidArgumentsError{}, err)
	_, err = plyr.Filter(plyr.Flat{}, func(*frame.Table) (interface{}, error) { return true, nil })
	require.IsType(t, errors.InvalidArgumentsError{}, err)
}
