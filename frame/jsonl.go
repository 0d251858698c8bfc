package frame

import (
	"bufio"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// JSONLinesConf configures FromJSONLines
type JSONLinesConf struct {
	Columns       []string // gjson paths of the columns to read. Defaults to every top-level key, in order of first appearance.
	HeaderLines   int      // The number of lines to ignore from the beginning of the input. Defaults to 0.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// FromJSONLines reads a Table from JSON Lines data, one object per line. Numbers without a fraction
// or exponent become integers, nested objects and arrays are kept as raw JSON strings, and absent
// or null values are missing.
func FromJSONLines(r io.Reader, conf *JSONLinesConf) (*Table, error) {
	if conf == nil {
		conf = &JSONLinesConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), conf.MaxBufferSize)

	var lines []gjson.Result
	for n := 0; scanner.Scan(); n++ {
		if n < conf.HeaderLines {
			continue
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		lines = append(lines, gjson.ParseBytes(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	names := conf.Columns
	if len(names) == 0 {
		seen := make(map[string]bool)
		for _, line := range lines {
			line.ForEach(func(key, _ gjson.Result) bool {
				if !seen[key.String()] {
					seen[key.String()] = true
					names = append(names, key.String())
				}
				return true
			})
		}
	}
	rows := make([][]interface{}, len(lines))
	for i, line := range lines {
		row := make([]interface{}, len(names))
		for c, name := range names {
			path := name
			if len(conf.Columns) == 0 {
				path = escapePath(name)
			}
			row[c] = jsonValue(line.Get(path))
		}
		rows[i] = row
	}
	return FromRecords(names, rows)
}

func jsonValue(v gjson.Result) interface{} {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return v.Float()
		}
		return v.Int()
	case gjson.String:
		return v.String()
	}
	return v.Raw
}

// escapePath escapes gjson path syntax in a literal key
func escapePath(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
