package frame

import (
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/go-sif/plyr/errors"
	"github.com/hashicorp/go-multierror"
)

// Table is an ordered collection of equal-length, uniquely named Series plus a row index of integer labels.
// Tables are never modified after construction: every operation returns a new Table, sharing unchanged Series.
type Table struct {
	cols   []*Series
	lookup map[string]int
	index  []int
	nrows  int
}

// New creates a Table from Series. Every problem with the Series (nil, unnamed, duplicated, ragged)
// is reported at once.
func New(cols ...*Series) (*Table, error) {
	var multierr *multierror.Error
	nrows := -1
	lookup := make(map[string]int, len(cols))
	for i, c := range cols {
		if c == nil {
			multierr = multierror.Append(multierr, errors.IncompatibleColumnError{Name: fmt.Sprintf("#%d", i), Reason: "column is nil"})
			continue
		}
		if c.name == "" {
			multierr = multierror.Append(multierr, errors.IncompatibleColumnError{Name: fmt.Sprintf("#%d", i), Reason: "column has no name"})
		}
		if _, ok := lookup[c.name]; ok {
			multierr = multierror.Append(multierr, errors.NameCollisionError{Name: c.name})
		}
		lookup[c.name] = i
		if nrows < 0 {
			nrows = c.Len()
		} else if c.Len() != nrows {
			multierr = multierror.Append(multierr, errors.IncompatibleColumnError{
				Name:   c.name,
				Reason: fmt.Sprintf("column has %d values, expected %d", c.Len(), nrows),
			})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if nrows < 0 {
		nrows = 0
	}
	return newTable(cols, defaultIndex(nrows), nrows), nil
}

// MustNew is like New, but panics on error. It is intended for literals and tests.
func MustNew(cols ...*Series) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Blank creates a Table with nrows rows and no columns, to which columns can be assigned
func Blank(nrows int) *Table {
	return newTable(nil, defaultIndex(nrows), nrows)
}

// FromRecords creates a Table from row-oriented data, inferring the type of every column
func FromRecords(names []string, rows [][]interface{}) (*Table, error) {
	var multierr *multierror.Error
	cols := make([]*Series, len(names))
	for c, name := range names {
		values := make([]interface{}, len(rows))
		for r, row := range rows {
			if len(row) != len(names) {
				if c == 0 {
					multierr = multierror.Append(multierr, errors.IncompatibleColumnError{
						Name:   name,
						Reason: fmt.Sprintf("row %d has %d values, expected %d", r, len(row), len(names)),
					})
				}
				continue
			}
			values[r] = row[c]
		}
		s, err := NewTypedSeries(name, InferColumnType(values), values)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		cols[c] = s
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return New(cols...)
}

func newTable(cols []*Series, index []int, nrows int) *Table {
	lookup := make(map[string]int, len(cols))
	for i, c := range cols {
		lookup[c.name] = i
	}
	return &Table{cols: cols, lookup: lookup, index: index, nrows: nrows}
}

func defaultIndex(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// NumRows returns the number of rows in this Table
func (t *Table) NumRows() int {
	return t.nrows
}

// NumCols returns the number of columns in this Table
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Names returns the column names of this Table, in order
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Index returns a copy of the row labels of this Table
func (t *Table) Index() []int {
	out := make([]int, len(t.index))
	copy(out, t.index)
	return out
}

// Columns returns the Series of this Table, in order
func (t *Table) Columns() []*Series {
	out := make([]*Series, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn returns true iff this Table has a column with the given name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.lookup[name]
	return ok
}

// ColumnIndex returns the position of a named column, or -1
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.lookup[name]; ok {
		return i
	}
	return -1
}

// Column returns a column by name
func (t *Table) Column(name string) (*Series, error) {
	i, ok := t.lookup[name]
	if !ok {
		return nil, errors.KeyResolutionError{Key: name}
	}
	return t.cols[i], nil
}

// MustColumn is like Column, but panics if the column does not exist
func (t *Table) MustColumn(name string) *Series {
	c, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ColumnAt returns a column by position. Negative positions count back from the last column.
func (t *Table) ColumnAt(pos int) (*Series, error) {
	i := pos
	if i < 0 {
		i += len(t.cols)
	}
	if i < 0 || i >= len(t.cols) {
		return nil, errors.KeyResolutionError{Key: pos}
	}
	return t.cols[i], nil
}

// Row returns the values of one row, by position
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.cols))
	for c, col := range t.cols {
		row[c] = col.data[i]
	}
	return row
}

// Records returns the values of this Table, row by row
func (t *Table) Records() [][]interface{} {
	rows := make([][]interface{}, t.nrows)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Select returns a new Table with only the named columns, in the given order
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Series, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, errors.NameCollisionError{Name: name, Reason: "Columns may only be selected once"}
		}
		seen[name] = true
		cols = append(cols, c)
	}
	return newTable(cols, t.index, t.nrows), nil
}

// Drop returns a new Table without the named columns
func (t *Table) Drop(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, errors.KeyResolutionError{Key: name}
		}
		drop[name] = true
	}
	cols := make([]*Series, 0, len(t.cols))
	for _, c := range t.cols {
		if !drop[c.name] {
			cols = append(cols, c)
		}
	}
	return newTable(cols, t.index, t.nrows), nil
}

// Rename returns a new Table with columns renamed according to a mapping from old name to new name
func (t *Table) Rename(mapping map[string]string) (*Table, error) {
	for old := range mapping {
		if !t.HasColumn(old) {
			return nil, errors.KeyResolutionError{Key: old}
		}
	}
	return t.RenameFunc(func(name string) string {
		if n, ok := mapping[name]; ok {
			return n
		}
		return name
	})
}

// RenameFunc returns a new Table with every column renamed by fn
func (t *Table) RenameFunc(fn func(name string) string) (*Table, error) {
	cols := make([]*Series, len(t.cols))
	seen := make(map[string]bool, len(t.cols))
	for i, c := range t.cols {
		name := fn(c.name)
		if seen[name] {
			return nil, errors.NameCollisionError{Name: name}
		}
		seen[name] = true
		cols[i] = c.Rename(name)
	}
	return newTable(cols, t.index, t.nrows), nil
}

// Assign returns a new Table in which the named column holds value. An existing column keeps its
// position, a new column is appended. value may be a *Series, a slice of matching length, or a single
// value which is repeated for every row. Slices of an unsupported element type are an IncompatibleColumnError.
func (t *Table) Assign(name string, value interface{}) (*Table, error) {
	s, err := t.toSeries(name, value)
	if err != nil {
		return nil, err
	}
	cols := make([]*Series, len(t.cols), len(t.cols)+1)
	copy(cols, t.cols)
	if i, ok := t.lookup[name]; ok {
		cols[i] = s
	} else {
		cols = append(cols, s)
	}
	return newTable(cols, t.index, t.nrows), nil
}

func (t *Table) toSeries(name string, value interface{}) (*Series, error) {
	var s *Series
	switch v := value.(type) {
	case *Series:
		s = v.Rename(name)
	default:
		if reflect.ValueOf(value).Kind() == reflect.Slice {
			var err error
			if s, err = NewSeries(name, v); err != nil {
				return nil, err
			}
			break
		}
		data := make([]interface{}, t.nrows)
		for i := range data {
			data[i] = value
		}
		var err error
		if s, err = NewTypedSeries(name, InferColumnType([]interface{}{value}), data); err != nil {
			return nil, err
		}
	}
	if s.Len() != t.nrows {
		return nil, errors.IncompatibleColumnError{
			Name:   name,
			Reason: fmt.Sprintf("column has %d values, expected %d", s.Len(), t.nrows),
		}
	}
	return s, nil
}

// Take returns a new Table containing the rows at the given positions, in the given order.
// Row labels travel with their rows.
func (t *Table) Take(rows []int) *Table {
	cols := make([]*Series, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.Take(rows)
	}
	index := make([]int, len(rows))
	for i, r := range rows {
		index[i] = t.index[r]
	}
	return newTable(cols, index, len(rows))
}

// SliceRows returns the rows selected by start:stop:step, with negative bounds counting back from
// the end and out-of-range bounds clamped
func (t *Table) SliceRows(start, stop, step int) (*Table, error) {
	rows, err := sliceIndices(t.nrows, start, stop, step)
	if err != nil {
		return nil, err
	}
	return t.Take(rows), nil
}

func sliceIndices(n, start, stop, step int) ([]int, error) {
	if step == 0 {
		return nil, errors.InvalidArgumentsError{Reason: "slice step cannot be zero"}
	}
	clamp := func(i, lo, hi int) int {
		if i < 0 {
			i += n
		}
		if i < lo {
			return lo
		}
		if i > hi {
			return hi
		}
		return i
	}
	var rows []int
	if step > 0 {
		start, stop = clamp(start, 0, n), clamp(stop, 0, n)
		for i := start; i < stop; i += step {
			rows = append(rows, i)
		}
	} else {
		start, stop = clamp(start, -1, n-1), clamp(stop, -1, n-1)
		for i := start; i > stop; i += step {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

// Where returns the rows for which mask is true
func (t *Table) Where(mask []bool) (*Table, error) {
	if len(mask) != t.nrows {
		return nil, errors.IncompatibleColumnError{
			Name:   "mask",
			Reason: fmt.Sprintf("mask has %d values, expected %d", len(mask), t.nrows),
		}
	}
	rows := make([]int, 0, t.nrows)
	for i, keep := range mask {
		if keep {
			rows = append(rows, i)
		}
	}
	return t.Take(rows), nil
}

// Mask filters rows with a bool (applied to every row), a []bool, or a bool *Series whose
// missing values count as false
func (t *Table) Mask(value interface{}) (*Table, error) {
	switch v := value.(type) {
	case bool:
		mask := make([]bool, t.nrows)
		for i := range mask {
			mask[i] = v
		}
		return t.Where(mask)
	case []bool:
		return t.Where(v)
	case *Series:
		if _, ok := v.ctype.(*BoolColumnType); !ok {
			return nil, errors.IncompatibleColumnError{Name: v.name, Reason: "mask column is not boolean"}
		}
		mask := v.Map(func(x interface{}) bool {
			b, _ := x.(bool)
			return b
		})
		return t.Where(mask)
	}
	return nil, fmt.Errorf("Cannot filter rows with a value of type %T", value)
}

// ResetIndex returns a new Table whose row labels are 0..n-1
func (t *Table) ResetIndex() *Table {
	return newTable(t.cols, defaultIndex(t.nrows), t.nrows)
}

// Concat stacks Tables vertically. Columns are matched by name in order of first appearance,
// columns absent from a Table are filled with missing values, and row labels are kept.
// Entirely missing columns do not influence the resulting column type.
func Concat(tables ...*Table) (*Table, error) {
	var names []string
	types := make(map[string]ColumnType)
	typed := make(map[string]bool)
	nrows := 0
	for _, t := range tables {
		nrows += t.nrows
		for _, c := range t.cols {
			existing, ok := types[c.name]
			switch {
			case !ok:
				names = append(names, c.name)
				types[c.name] = c.ctype
				typed[c.name] = c.Count() > 0
			case c.Count() == 0:
			case !typed[c.name]:
				types[c.name] = c.ctype
				typed[c.name] = true
			default:
				types[c.name] = CommonColumnType(existing, c.ctype)
			}
		}
	}
	var multierr *multierror.Error
	cols := make([]*Series, len(names))
	for i, name := range names {
		data := make([]interface{}, 0, nrows)
		for _, t := range tables {
			if c, ok := t.lookup[name]; ok {
				data = append(data, t.cols[c].data...)
			} else {
				data = append(data, make([]interface{}, t.nrows)...)
			}
		}
		s, err := NewTypedSeries(name, types[name], data)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		cols[i] = s
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	index := make([]int, 0, nrows)
	for _, t := range tables {
		index = append(index, t.index...)
	}
	return newTable(cols, index, nrows), nil
}

// Equal returns true iff both Tables have the same column names, in order, and the same values.
// Row labels are not compared.
func (t *Table) Equal(o *Table) bool {
	if t.nrows != o.nrows || len(t.cols) != len(o.cols) {
		return false
	}
	for i, c := range t.cols {
		if c.name != o.cols[i].name {
			return false
		}
		if !equalSeries(c, o.cols[i]) {
			return false
		}
	}
	return true
}

func equalSeries(a, b *Series) bool {
	ctype := CommonColumnType(a.ctype, b.ctype)
	ca, err := castSeries(a, ctype)
	if err != nil {
		return false
	}
	cb, err := castSeries(b, ctype)
	if err != nil {
		return false
	}
	for i := range ca.data {
		if !equalValues([]*Series{ca}, i, []*Series{cb}, i) {
			return false
		}
	}
	return true
}

// String renders this Table as aligned text, with row labels in the first column
func (t *Table) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, c := range t.cols {
		fmt.Fprintf(w, "\t%s", c.name)
	}
	fmt.Fprintln(w, "\t")
	for r := 0; r < t.nrows; r++ {
		fmt.Fprintf(w, "%d", t.index[r])
		for _, c := range t.cols {
			fmt.Fprintf(w, "\t%s", c.format(r))
		}
		fmt.Fprintln(w, "\t")
	}
	w.Flush()
	return sb.String()
}
