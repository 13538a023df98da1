package record

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(s string) *string { return &s }

func Test_Display(t *testing.T) {
	e := Example{Flag: false, Name: "", Note: nil}
	assert.Equal(t, `{"flag":false,"name":"","note":null}`, e.String())
	assert.Equal(t, `{"flag":false,"name":"","note":null}`, fmt.Sprint(e))
}

func Test_Display_Pretty(t *testing.T) {
	e := ExamplePretty{Flag: false, Name: "", Note: nil}
	assert.Equal(t, "{\n  \"flag\": false,\n  \"name\": \"\",\n  \"note\": null\n}", e.String())
}

func Test_Display_MatchesEncoding(t *testing.T) {
	e := Example{Flag: true, Name: "example", Note: note("<a & b>")}
	compact, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, string(compact), e.String())

	p := ExamplePretty(e)
	pretty, err := json.MarshalIndent(p, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(pretty), p.String())
}

func Test_Debug_EqualsDisplay(t *testing.T) {
	e := Example{Flag: true, Name: "debug"}
	assert.Equal(t, e.String(), e.GoString())
	assert.Equal(t, e.String(), fmt.Sprintf("%#v", e))

	p := ExamplePretty{Name: "debug", Note: note("n")}
	assert.Equal(t, p.String(), p.GoString())
}

func Test_Parse_RoundTrip(t *testing.T) {
	for _, e := range []Example{
		{},
		{Flag: true, Name: "name", Note: note("note")},
		{Name: "\"quoted\"\n"},
	} {
		parsed, err := ParseExample(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)

		pretty := ExamplePretty(e)
		parsedPretty, err := ParseExamplePretty(pretty.String())
		require.NoError(t, err)
		assert.Equal(t, pretty, parsedPretty)
	}
}

func Test_Parse_Malformed(t *testing.T) {
	for _, s := range []string{`{"flag":`, `{"flag":"yes"}`, `[]`, ``} {
		_, err := ParseExample(s)
		assert.Error(t, err, s)
	}
}

func Test_FlagValue(t *testing.T) {
	var e Example
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Var(&e, "example", "example value")

	require.NoError(t, flagSet.Parse([]string{"-example", `{"flag":true,"name":"from flag","note":null}`}))
	assert.Equal(t, Example{Flag: true, Name: "from flag"}, e)

	assert.Error(t, flagSet.Parse([]string{"-example", `{"flag":1}`}))
}
