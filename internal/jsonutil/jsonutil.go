// Package jsonutil formats command output as colored JSON.
package jsonutil

import (
	"bytes"
	"sort"

	"github.com/fatih/structs"
	"github.com/hokaccha/go-prettyjson"
)

var compact *prettyjson.Formatter

func init() {
	compact = prettyjson.NewFormatter()
	compact.Indent = 0
	compact.Newline = ""
}

// MarshalPretty formats v as indented JSON. Colors are disabled when color
// is false.
func MarshalPretty(v any, color bool) ([]byte, error) {
	f := prettyjson.NewFormatter()
	f.DisabledColor = !color
	return f.Marshal(v)
}

// MarshalCompactPretty formats each field of the struct v on its own line as
// "Name: value", sorted by field name, with each value in compact JSON form.
func MarshalCompactPretty(v any, color bool) ([]byte, error) {
	var buf bytes.Buffer
	m := structs.Map(v)
	names := structs.Names(v)
	sort.Strings(names)
	compact.DisabledColor = !color
	for _, name := range names {
		b, err := compact.Marshal(m[name])
		if err != nil {
			return nil, err
		}
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.Write(b)
		buf.WriteRune('\n')
	}
	return buf.Bytes(), nil
}
