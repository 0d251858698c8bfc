package frame

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

// ColumnType defines how the values of a Series are normalized, ordered, hashed and rendered.
// Missing values (nil) never reach Compare, Hash or ToString.
type ColumnType interface {
	Name() string                                 // Name returns a short name for this type
	Normalize(v interface{}) (interface{}, error) // Normalize converts v to this type's canonical Go representation
	Compare(a, b interface{}) int                 // Compare orders two normalized values
	Hash(d *xxhash.Digest, v interface{})         // Hash writes a normalized value to a Digest
	ToString(v interface{}) string                // ToString produces a string representation of a normalized value
}

// IntColumnType stores int64 values
type IntColumnType struct{}

// Name returns "int"
func (c *IntColumnType) Name() string {
	return "int"
}

// Normalize converts any Go integer to an int64
func (c *IntColumnType) Normalize(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	}
	return nil, fmt.Errorf("Value %v of type %T is not an integer", v, v)
}

// Compare orders two int64 values
func (c *IntColumnType) Compare(a, b interface{}) int {
	x, y := a.(int64), b.(int64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Hash writes an int64 to a Digest
func (c *IntColumnType) Hash(d *xxhash.Digest, v interface{}) {
	var buf [9]byte
	buf[0] = 'i'
	binary.LittleEndian.PutUint64(buf[1:], uint64(v.(int64)))
	d.Write(buf[:])
}

// ToString produces a string representation of an int64
func (c *IntColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// FloatColumnType stores float64 values. NaN is normalized to a missing value.
type FloatColumnType struct{}

// Name returns "float"
func (c *FloatColumnType) Name() string {
	return "float"
}

// Normalize converts any Go number to a float64
func (c *FloatColumnType) Normalize(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return nil, nil
		}
		return t, nil
	case float32:
		if math.IsNaN(float64(t)) {
			return nil, nil
		}
		return float64(t), nil
	}
	i, err := (&IntColumnType{}).Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("Value %v of type %T is not a number", v, v)
	}
	return float64(i.(int64)), nil
}

// Compare orders two float64 values
func (c *FloatColumnType) Compare(a, b interface{}) int {
	x, y := a.(float64), b.(float64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Hash writes a float64 to a Digest
func (c *FloatColumnType) Hash(d *xxhash.Digest, v interface{}) {
	var buf [9]byte
	buf[0] = 'f'
	f := v.(float64)
	if f == 0 {
		f = 0 // -0 and +0 are the same key
	}
	binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(f))
	d.Write(buf[:])
}

// ToString produces a string representation of a float64
func (c *FloatColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// StringColumnType stores string values
type StringColumnType struct{}

// Name returns "string"
func (c *StringColumnType) Name() string {
	return "string"
}

// Normalize accepts strings and byte slices
func (c *StringColumnType) Normalize(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	}
	return nil, fmt.Errorf("Value %v of type %T is not a string", v, v)
}

// Compare orders two strings lexicographically
func (c *StringColumnType) Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}

// Hash writes a string to a Digest
func (c *StringColumnType) Hash(d *xxhash.Digest, v interface{}) {
	s := v.(string)
	var buf [9]byte
	buf[0] = 's'
	binary.LittleEndian.PutUint64(buf[1:], uint64(len(s)))
	d.Write(buf[:])
	d.WriteString(s)
}

// ToString returns the string itself
func (c *StringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// BoolColumnType stores bool values
type BoolColumnType struct{}

// Name returns "bool"
func (c *BoolColumnType) Name() string {
	return "bool"
}

// Normalize accepts bools
func (c *BoolColumnType) Normalize(v interface{}) (interface{}, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, fmt.Errorf("Value %v of type %T is not a bool", v, v)
}

// Compare orders false before true
func (c *BoolColumnType) Compare(a, b interface{}) int {
	x, y := a.(bool), b.(bool)
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	}
	return 1
}

// Hash writes a bool to a Digest
func (c *BoolColumnType) Hash(d *xxhash.Digest, v interface{}) {
	if v.(bool) {
		d.Write([]byte{'b', 1})
	} else {
		d.Write([]byte{'b', 0})
	}
}

// ToString produces "true" or "false"
func (c *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// TimeColumnType stores time.Time values
type TimeColumnType struct {
	Format string // Format is used by ToString. Defaults to time.RFC3339.
}

// Name returns "time"
func (c *TimeColumnType) Name() string {
	return "time"
}

// Normalize accepts time.Time values
func (c *TimeColumnType) Normalize(v interface{}) (interface{}, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	return nil, fmt.Errorf("Value %v of type %T is not a time.Time", v, v)
}

// Compare orders two instants
func (c *TimeColumnType) Compare(a, b interface{}) int {
	x, y := a.(time.Time), b.(time.Time)
	switch {
	case x.Before(y):
		return -1
	case x.After(y):
		return 1
	}
	return 0
}

// Hash writes an instant to a Digest
func (c *TimeColumnType) Hash(d *xxhash.Digest, v interface{}) {
	var buf [9]byte
	buf[0] = 't'
	binary.LittleEndian.PutUint64(buf[1:], uint64(v.(time.Time).UnixNano()))
	d.Write(buf[:])
}

// ToString formats an instant
func (c *TimeColumnType) ToString(v interface{}) string {
	format := c.Format
	if format == "" {
		format = time.RFC3339
	}
	return v.(time.Time).Format(format)
}

// AnyColumnType stores arbitrary values. Numbers are ordered and hashed by value, everything else by printed form.
type AnyColumnType struct{}

// Name returns "any"
func (c *AnyColumnType) Name() string {
	return "any"
}

// Normalize accepts anything
func (c *AnyColumnType) Normalize(v interface{}) (interface{}, error) {
	return v, nil
}

// Compare orders numbers numerically, before everything else, which is ordered by printed form
func (c *AnyColumnType) Compare(a, b interface{}) int {
	x, xerr := (&FloatColumnType{}).Normalize(a)
	y, yerr := (&FloatColumnType{}).Normalize(b)
	xnum, ynum := xerr == nil && x != nil, yerr == nil && y != nil
	switch {
	case xnum && ynum:
		return (&FloatColumnType{}).Compare(x, y)
	case xnum:
		return -1
	case ynum:
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Hash writes a value to a Digest so that values which Compare equal hash equally: numbers as float64,
// everything else by printed form
func (c *AnyColumnType) Hash(d *xxhash.Digest, v interface{}) {
	if f, err := (&FloatColumnType{}).Normalize(v); err == nil && f != nil {
		(&FloatColumnType{}).Hash(d, f)
		return
	}
	d.Write([]byte{'a'})
	d.WriteString(fmt.Sprint(v))
}

// ToString produces the printed form of a value
func (c *AnyColumnType) ToString(v interface{}) string {
	return fmt.Sprint(v)
}

// InferColumnType picks the narrowest ColumnType able to hold every non-nil value
func InferColumnType(values []interface{}) ColumnType {
	var ints, floats, strs, bools, times, others int
	for _, v := range values {
		switch v.(type) {
		case nil:
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			ints++
		case float32, float64:
			floats++
		case string:
			strs++
		case bool:
			bools++
		case time.Time:
			times++
		default:
			others++
		}
	}
	switch {
	case others > 0:
		return &AnyColumnType{}
	case ints > 0 && strs+bools+times == 0 && floats == 0:
		return &IntColumnType{}
	case ints+floats > 0 && strs+bools+times == 0:
		return &FloatColumnType{}
	case strs > 0 && ints+floats+bools+times == 0:
		return &StringColumnType{}
	case bools > 0 && ints+floats+strs+times == 0:
		return &BoolColumnType{}
	case times > 0 && ints+floats+strs+bools == 0:
		return &TimeColumnType{}
	}
	// mixed, or entirely missing
	return &AnyColumnType{}
}

// CommonColumnType returns a ColumnType able to hold the values of both a and b
func CommonColumnType(a, b ColumnType) ColumnType {
	if a.Name() == b.Name() {
		return a
	}
	numeric := func(c ColumnType) bool { return c.Name() == "int" || c.Name() == "float" }
	if numeric(a) && numeric(b) {
		return &FloatColumnType{}
	}
	return &AnyColumnType{}
}
