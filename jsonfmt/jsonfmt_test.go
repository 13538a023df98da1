package jsonfmt

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Flag bool    `json:"flag"`
	Name string  `json:"name"`
	Note *string `json:"note"`
}

type nested struct {
	ID     int64             `json:"id"`
	Tags   []string          `json:"tags"`
	Attrs  map[string]int    `json:"attrs"`
	Inner  record            `json:"inner"`
	Empty  map[string]string `json:"empty"`
	Absent []int             `json:"absent,omitempty"`
}

type failing struct{}

func (failing) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

type kind string

func allEngines() []Engine {
	return []Engine{Std, Iterator, Sonic, Goccy}
}

const recordJSON = `{"flag":false,"name":"","note":null}`

const recordPretty = `{
  "flag": false,
  "name": "",
  "note": null
}`

func Test_Text_Record(t *testing.T) {
	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			compact, err := Text(e, record{}, Compact)
			require.NoError(t, err)
			assert.Equal(t, recordJSON, compact)

			pretty, err := Text(e, record{}, Pretty)
			require.NoError(t, err)
			assert.Equal(t, recordPretty, pretty)
		})
	}
}

func Test_Text_MatchesEncodingJSON(t *testing.T) {
	v := nested{
		ID:    7,
		Tags:  []string{"a", "b"},
		Attrs: map[string]int{"z": 1, "a": 2},
		Inner: record{Flag: true, Name: "n"},
		Empty: map[string]string{},
	}
	expectedCompact, err := json.Marshal(v)
	require.NoError(t, err)
	expectedPretty, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)

	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			assert.Equal(t, string(expectedCompact), String(e, v, Compact))
			assert.Equal(t, string(expectedPretty), String(e, v, Pretty))
		})
	}
}

func Test_Text_FailureIsLossy(t *testing.T) {
	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			_, err := Text(e, failing{}, Compact)
			assert.Same(t, ErrFormat, err)
			assert.NotContains(t, err.Error(), "boom")

			assert.Equal(t, FailureText, String(e, failing{}, Pretty))
		})
	}
}

func Test_Parse_RoundTrip(t *testing.T) {
	note := "memo"
	v := record{Flag: true, Name: "x", Note: &note}
	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			for _, style := range []Style{Compact, Pretty} {
				parsed, err := Parse[record](e, String(e, v, style))
				require.NoError(t, err)
				assert.Equal(t, v, parsed)
			}
		})
	}
}

func Test_Parse_BareLiteral(t *testing.T) {
	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			k, err := Parse[kind](e, "Foo")
			require.NoError(t, err)
			assert.Equal(t, kind("Foo"), k)

			k, err = Parse[kind](e, `"Bar"`)
			require.NoError(t, err)
			assert.Equal(t, kind("Bar"), k)
		})
	}
}

func Test_Parse_SyntaxErrorIsNative(t *testing.T) {
	_, err := Parse[record](Std, `{"flag":`)
	require.Error(t, err)
	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Positive(t, syntaxErr.Offset)
}

func Test_Parse_TypeMismatchIsNative(t *testing.T) {
	v, err := Parse[record](Std, `{"flag":"yes"}`)
	require.Error(t, err)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "flag", typeErr.Field)
	assert.Equal(t, record{}, v)
}

func Test_Parse_NoSilentDefault(t *testing.T) {
	for _, e := range allEngines() {
		t.Run(e.Name(), func(t *testing.T) {
			_, err := Parse[record](e, "not json")
			assert.Error(t, err)

			_, err = Parse[int](e, "12a")
			assert.Error(t, err)
		})
	}
}

func Test_Lookup(t *testing.T) {
	assert.Equal(t, []string{GoccyName, IteratorName, SonicName, StdName}, Names())
	for _, name := range Names() {
		e, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, e.Name())
	}
	_, ok := Lookup("yaml")
	assert.False(t, ok)
}

func Test_Style_String(t *testing.T) {
	assert.Equal(t, "compact", Compact.String())
	assert.Equal(t, "pretty", Pretty.String())
}
