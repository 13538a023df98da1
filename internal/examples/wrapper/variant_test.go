package wrapper

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Wrapper_String(t *testing.T) {
	assert.Equal(t, `"Foo"`, Wrapper{Variant: Foo}.String())
	assert.Equal(t, `"Bar"`, Wrapper{Variant: Bar}.GoString())
}

func Test_Wrapper_ParseBare(t *testing.T) {
	w, err := ParseWrapper("Foo")
	require.NoError(t, err)
	assert.Equal(t, Wrapper{Variant: Foo}, w)

	w, err = ParseWrapper(`"Bar"`)
	require.NoError(t, err)
	assert.Equal(t, Wrapper{Variant: Bar}, w)
}

func Test_Wrapper_ParseUnknown(t *testing.T) {
	for _, s := range []string{"Baz", `"Baz"`, "", "1"} {
		w, err := ParseWrapper(s)
		assert.Error(t, err, s)
		assert.Equal(t, Wrapper{}, w)
	}
}

func Test_Wrapper_RoundTrip(t *testing.T) {
	for _, variant := range []Variant{Foo, Bar} {
		w := Wrapper{Variant: variant}
		parsed, err := ParseWrapper(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, parsed)
	}
}

func Test_Wrapper_Flag(t *testing.T) {
	w := Wrapper{Variant: Foo}
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Var(&w, "variant", "variant")

	require.NoError(t, flagSet.Parse([]string{"-variant", "Bar"}))
	assert.Equal(t, Bar, w.Variant)
	assert.Error(t, flagSet.Parse([]string{"-variant", "Baz"}))
}

func Test_Variant_Parse(t *testing.T) {
	v, err := ParseVariant("Bar")
	require.NoError(t, err)
	assert.Equal(t, Bar, v)

	_, err = ParseVariant("Baz")
	assert.Error(t, err)
}
