// Package testing provides fixtures and assertions for tests of plyr and its subpackages
package testing

import (
	"strings"

	"github.com/go-sif/plyr/frame"
	"github.com/stretchr/testify/require"
)

// RequireTableEqual fails the test unless both tables have the same columns and values. Row labels
// are not compared.
func RequireTableEqual(t require.TestingT, expected, actual *frame.Table) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NotNil(t, actual)
	require.Equal(t, expected.Names(), actual.Names())
	require.True(t, expected.Equal(actual), "expected:\n%s\nactual:\n%s", expected, actual)
}

// RequireRecords fails the test unless the table has exactly the given column names and rows
func RequireRecords(t require.TestingT, actual *frame.Table, names []string, rows ...[]interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if rows == nil {
		rows = [][]interface{}{}
	}
	expected, err := frame.FromRecords(names, rows)
	require.Nil(t, err)
	RequireTableEqual(t, expected, actual)
}

// RequireColumn fails the test unless the named column holds exactly the given values
func RequireColumn(t require.TestingT, actual *frame.Table, name string, values ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	c, err := actual.Column(name)
	require.Nil(t, err)
	expected := frame.Values(name, values...)
	got, err := frame.New(c)
	require.Nil(t, err)
	require.True(t, frame.MustNew(expected).Equal(got), "expected %v, got %v", values, c.Values())
}

// MustReadJSONLines reads a table from JSON Lines text, panicking on error
func MustReadJSONLines(data string) *frame.Table {
	t, err := frame.FromJSONLines(strings.NewReader(data), nil)
	if err != nil {
		panic(err)
	}
	return t
}
