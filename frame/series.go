package frame

import (
	"fmt"
	"math"
	"time"

	"github.com/go-sif/plyr/errors"
)

// Series is a named, typed column of values. A nil value is missing (NA).
// Series are never modified after construction.
type Series struct {
	name  string
	ctype ColumnType
	data  []interface{}
}

// NewSeries creates a Series from a typed Go slice ([]int, []float64, []string, ...) or a []interface{},
// inferring its ColumnType
func NewSeries(name string, values interface{}) (*Series, error) {
	data, err := toInterfaces(values)
	if err != nil {
		return nil, errors.IncompatibleColumnError{Name: name, Reason: err.Error()}
	}
	return NewTypedSeries(name, InferColumnType(data), data)
}

// NewTypedSeries creates a Series of a specific ColumnType, normalizing every value
func NewTypedSeries(name string, ctype ColumnType, values []interface{}) (*Series, error) {
	data := make([]interface{}, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		nv, err := ctype.Normalize(v)
		if err != nil {
			return nil, errors.IncompatibleColumnError{Name: name, Reason: err.Error()}
		}
		data[i] = nv
	}
	return &Series{name: name, ctype: ctype, data: data}, nil
}

// Ints creates an IntColumnType Series
func Ints(name string, values ...int64) *Series {
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	return &Series{name: name, ctype: &IntColumnType{}, data: data}
}

// Floats creates a FloatColumnType Series. NaN values are missing.
func Floats(name string, values ...float64) *Series {
	data := make([]interface{}, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			data[i] = v
		}
	}
	return &Series{name: name, ctype: &FloatColumnType{}, data: data}
}

// Strings creates a StringColumnType Series
func Strings(name string, values ...string) *Series {
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	return &Series{name: name, ctype: &StringColumnType{}, data: data}
}

// Bools creates a BoolColumnType Series
func Bools(name string, values ...bool) *Series {
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	return &Series{name: name, ctype: &BoolColumnType{}, data: data}
}

// Times creates a TimeColumnType Series
func Times(name string, values ...time.Time) *Series {
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	return &Series{name: name, ctype: &TimeColumnType{}, data: data}
}

// Values creates a Series from loosely-typed values, inferring its ColumnType. It panics if a value
// cannot be normalized, and is intended for literals.
func Values(name string, values ...interface{}) *Series {
	s, err := NewTypedSeries(name, InferColumnType(values), values)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of this Series
func (s *Series) Name() string {
	return s.name
}

// Type returns the ColumnType of this Series
func (s *Series) Type() ColumnType {
	return s.ctype
}

// Len returns the number of values in this Series
func (s *Series) Len() int {
	return len(s.data)
}

// At returns the value at a row position, or nil if it is missing
func (s *Series) At(i int) interface{} {
	return s.data[i]
}

// IsNA returns true iff the value at a row position is missing
func (s *Series) IsNA(i int) bool {
	return s.data[i] == nil
}

// Values returns a copy of the values in this Series
func (s *Series) Values() []interface{} {
	out := make([]interface{}, len(s.data))
	copy(out, s.data)
	return out
}

// Int returns the value at a row position as an int64
func (s *Series) Int(i int) (int64, bool) {
	switch v := s.data[i].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// Float returns the value at a row position as a float64
func (s *Series) Float(i int) (float64, bool) {
	switch v := s.data[i].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Str returns the value at a row position as a string
func (s *Series) Str(i int) (string, bool) {
	v, ok := s.data[i].(string)
	return v, ok
}

// Bool returns the value at a row position as a bool
func (s *Series) Bool(i int) (bool, bool) {
	v, ok := s.data[i].(bool)
	return v, ok
}

// Rename returns a copy of this Series with a new name
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, ctype: s.ctype, data: s.data}
}

// Take returns a new Series containing the values at the given row positions
func (s *Series) Take(rows []int) *Series {
	data := make([]interface{}, len(rows))
	for i, r := range rows {
		data[i] = s.data[r]
	}
	return &Series{name: s.name, ctype: s.ctype, data: data}
}

// Compare orders two row positions of this Series. Missing values sort after everything else.
func (s *Series) Compare(i, j int) int {
	a, b := s.data[i], s.data[j]
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return s.ctype.Compare(a, b)
}

// Map produces a boolean mask by applying fn to every value, including missing ones
func (s *Series) Map(fn func(v interface{}) bool) []bool {
	mask := make([]bool, len(s.data))
	for i, v := range s.data {
		mask[i] = fn(v)
	}
	return mask
}

func (s *Series) compareTo(v interface{}, accept func(c int) bool) []bool {
	nv, err := s.ctype.Normalize(v)
	return s.Map(func(x interface{}) bool {
		if x == nil || err != nil || nv == nil {
			return false
		}
		return accept(s.ctype.Compare(x, nv))
	})
}

// Eq returns a mask of the values equal to v
func (s *Series) Eq(v interface{}) []bool {
	return s.compareTo(v, func(c int) bool { return c == 0 })
}

// Gt returns a mask of the values greater than v
func (s *Series) Gt(v interface{}) []bool {
	return s.compareTo(v, func(c int) bool { return c > 0 })
}

// Lt returns a mask of the values less than v
func (s *Series) Lt(v interface{}) []bool {
	return s.compareTo(v, func(c int) bool { return c < 0 })
}

// Count returns the number of non-missing values
func (s *Series) Count() int {
	n := 0
	for _, v := range s.data {
		if v != nil {
			n++
		}
	}
	return n
}

// Sum adds every non-missing numeric value
func (s *Series) Sum() float64 {
	var sum float64
	for i := range s.data {
		if f, ok := s.Float(i); ok {
			sum += f
		}
	}
	return sum
}

// Mean averages every non-missing numeric value. The mean of no values is NaN.
func (s *Series) Mean() float64 {
	var sum float64
	n := 0
	for i := range s.data {
		if f, ok := s.Float(i); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Min returns the smallest non-missing value, or nil
func (s *Series) Min() interface{} {
	return s.extreme(-1)
}

// Max returns the largest non-missing value, or nil
func (s *Series) Max() interface{} {
	return s.extreme(1)
}

func (s *Series) extreme(sign int) interface{} {
	var best interface{}
	for _, v := range s.data {
		if v == nil {
			continue
		}
		if best == nil || s.ctype.Compare(v, best)*sign > 0 {
			best = v
		}
	}
	return best
}

// NUnique returns the number of distinct non-missing values
func (s *Series) NUnique() int {
	seen := make(map[uint64][]int)
	n := 0
	for i, v := range s.data {
		if v == nil {
			continue
		}
		h := hashValues([]*Series{s}, i)
		dup := false
		for _, j := range seen[h] {
			if s.ctype.Compare(s.data[j], v) == 0 {
				dup = true
				break
			}
		}
		if !dup {
			seen[h] = append(seen[h], i)
			n++
		}
	}
	return n
}

// String produces a short description of this Series
func (s *Series) String() string {
	return fmt.Sprintf("%s <%s> (%d values)", s.name, s.ctype.Name(), len(s.data))
}

func (s *Series) format(i int) string {
	if s.data[i] == nil {
		return "NA"
	}
	return s.ctype.ToString(s.data[i])
}

// toInterfaces flattens a typed Go slice into []interface{}
func toInterfaces(values interface{}) ([]interface{}, error) {
	switch t := values.(type) {
	case []interface{}:
		out := make([]interface{}, len(t))
		copy(out, t)
		return out, nil
	case []int:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []int32:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []int64:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []float32:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []float64:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []string:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []bool:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	case []time.Time:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("Unsupported slice type %T", values)
}
