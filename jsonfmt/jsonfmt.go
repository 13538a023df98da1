// Package jsonfmt is the runtime used by code generated with asjson.
//
// Formatting collapses every encoder failure into ErrFormat, because
// String and GoString methods have no error channel. Parsing returns the
// decoder's own error unchanged.
package jsonfmt

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Style selects the textual layout of an encoded value.
type Style int

const (
	// Compact is the JSON encoding without insignificant whitespace.
	Compact Style = iota
	// Pretty is the JSON encoding indented by Indent per nesting level.
	Pretty
)

// Indent is the per level indentation of the Pretty style.
const Indent = "  "

// FailureText is returned by String when the value cannot be encoded.
const FailureText = "%!v(ERROR=json formatting failed)"

// ErrFormat is the only error reported by Text.
var ErrFormat = errors.New("json formatting failed")

func (s Style) String() string {
	if s == Pretty {
		return "pretty"
	}
	return "compact"
}

// Text encodes v by the engine in the style.
func Text(e Engine, v any, style Style) (string, error) {
	data, err := e.Marshal(v)
	if err != nil {
		return "", ErrFormat
	}
	if style == Pretty {
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", Indent); err != nil {
			return "", ErrFormat
		}
		data = out.Bytes()
	}
	return string(data), nil
}

// String is Text that reports a failure as FailureText.
func String(e Engine, v any, style Style) string {
	s, err := Text(e, v, style)
	if err != nil {
		return FailureText
	}
	return s
}

// Parse decodes s into a value of type T.
//
// Text that is not JSON at all is retried as a JSON string literal,
// so a bare Foo is accepted by types that decode from "Foo".
// If the retry fails too, the error of the first attempt is returned.
func Parse[T any](e Engine, s string) (T, error) {
	var v T
	err := e.Unmarshal([]byte(s), &v)
	if err == nil {
		return v, nil
	}
	var zero T
	if e.Valid([]byte(s)) {
		return zero, err
	}
	quoted, qerr := e.Marshal(s)
	if qerr != nil {
		return zero, err
	}
	var literal T
	if lerr := e.Unmarshal(quoted, &literal); lerr != nil {
		return zero, err
	}
	return literal, nil
}
