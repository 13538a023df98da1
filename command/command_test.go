package command

import (
	"flag"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/model/jsontype"
	"github.com/m4gshm/asjson/model/util"
	"github.com/m4gshm/asjson/params"
)

const (
	samplePkgPath = "example.com/sample"
	outFile       = "/src/sample/example_asjson.go"
)

const sampleSrc = `package sample

//asjson:display -pretty
//asjson:parse -set
type Example struct {
	Flag bool
	Name string
	Note *string
}

type Named struct {
	Name string
}

func (n Named) String() string { return n.Name }

type Regenerated struct {
	Name string
}

type Events struct {
	Stream chan int
}

type Taken struct{}

type hidden struct {
	Name string
}

func ParseTaken(s string) (Taken, error) { return Taken{}, nil }

//asjson:display -unknown
type BadFlag struct{}

//asjson:display extra
type BadArgs struct{}
`

const generatedSrc = `// Code generated by 'asjson -type Regenerated display'; DO NOT EDIT.

package sample

func (r Regenerated) String() string { return "" }
`

func newContext(t *testing.T, typeName string, args ...string) *Context {
	fileSet := token.NewFileSet()
	file, err := parser.ParseFile(fileSet, "/src/sample/sample.go", sampleSrc, parser.ParseComments)
	require.NoError(t, err)
	generated, err := parser.ParseFile(fileSet, outFile, generatedSrc, parser.ParseComments)
	require.NoError(t, err)
	pkg, err := (&types.Config{}).Check(samplePkgPath, fileSet, []*ast.File{file, generated}, nil)
	require.NoError(t, err)
	typ, err := util.FindType(typeName, pkg)
	require.NoError(t, err)
	require.NotNil(t, typ)
	model, err := jsontype.New(typ, file)
	require.NoError(t, err)

	flagSet := flag.NewFlagSet(params.Name, flag.ContinueOnError)
	config := params.NewConfig(flagSet)
	require.NoError(t, flagSet.Parse(append([]string{"-type", typeName}, args...)))
	return &Context{
		Config:    config,
		Generator: generator.New(params.Name, nil, pkg.Name(), pkg.Path()),
		FileSet:   fileSet,
		OutFile:   outFile,
		model:     model,
	}
}

func run(context *Context, args ...string) error {
	chain, err := Chain(args)
	if err != nil {
		return err
	}
	for _, cmd := range chain {
		if err := cmd.Run(context); err != nil {
			return err
		}
	}
	return nil
}

func src(t *testing.T, context *Context) string {
	out, err := context.Generator.FormatSrc()
	require.NoError(t, err, string(out))
	return string(out)
}

func Test_Supported(t *testing.T) {
	assert.Equal(t, []string{"display", "debug", "parse", "derive"}, Supported())
	assert.Nil(t, Get("stringify"))
	assert.NotSame(t, Get("display"), Get("display"))
}

func Test_Chain(t *testing.T) {
	chain, err := Chain([]string{"display", "-pretty", "debug", "parse", "-set", "-name", "FromJSON"})
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "display", chain[0].Name())
	assert.Equal(t, "debug", chain[1].Name())
	assert.Equal(t, "parse", chain[2].Name())

	_, err = Chain([]string{"display", "stringify"})
	assert.ErrorContains(t, err, "unknown command 'stringify'")
}

func Test_Display(t *testing.T) {
	context := newContext(t, "Example")
	require.NoError(t, run(context, "display", "debug", "-pretty"))

	out := src(t, context)
	assert.Contains(t, out, "func (e Example) String() string {\n\treturn jsonfmt.String(jsonfmt.Std, &e, jsonfmt.Compact)\n}")
	assert.Contains(t, out, "func (e Example) GoString() string {\n\treturn jsonfmt.String(jsonfmt.Std, &e, jsonfmt.Pretty)\n}")
}

func Test_Display_Engine(t *testing.T) {
	context := newContext(t, "Example", "-engine", "goccy")
	require.NoError(t, run(context, "display", "-name", "JSON", "-nolint"))
	assert.Contains(t, src(t, context), "func (e Example) JSON() string { //nolint\n\treturn jsonfmt.String(jsonfmt.Goccy, &e, jsonfmt.Compact)\n}")
}

func Test_Display_MethodExists(t *testing.T) {
	err := run(newContext(t, "Named"), "display")
	assert.ErrorIs(t, err, generator.ErrMethodExists)
}

func Test_Display_RegeneratedMethodIgnored(t *testing.T) {
	context := newContext(t, "Regenerated")
	require.NoError(t, run(context, "display"))
	assert.Contains(t, src(t, context), "func (r Regenerated) String() string")
}

func Test_Display_NotSerializable(t *testing.T) {
	context := newContext(t, "Events")
	err := run(context, "display")
	var unsupported *jsontype.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Stream", unsupported.Path)
	assert.True(t, context.Generator.IsEmpty())
}

func Test_Parse(t *testing.T) {
	context := newContext(t, "Example")
	require.NoError(t, run(context, "parse", "-set"))

	out := src(t, context)
	assert.Contains(t, out, "func ParseExample(s string) (Example, error) {\n\treturn jsonfmt.Parse[Example](jsonfmt.Std, s)\n}")
	assert.Contains(t, out, "func (e *Example) Set(s string) error {\n\tv, err := ParseExample(s)")
}

func Test_Parse_Unexported(t *testing.T) {
	context := newContext(t, "Example")
	require.NoError(t, run(context, "parse", "-export=false"))
	assert.Contains(t, src(t, context), "func parseExample(s string) (Example, error)")
}

func Test_Parse_UnexportedIntoOtherPackage(t *testing.T) {
	context := newContext(t, "hidden")
	context.Generator = generator.New(params.Name, nil, "other", "example.com/other")
	err := run(context, "parse")
	assert.ErrorContains(t, err, "unexported type example.com/sample.hidden")
	assert.True(t, context.Generator.IsEmpty())
}

func Test_Parse_FuncExists(t *testing.T) {
	err := run(newContext(t, "Taken"), "parse")
	assert.ErrorIs(t, err, generator.ErrMethodExists)
}

func Test_Duplicated(t *testing.T) {
	err := run(newContext(t, "Example"), "display", "derive", "-as", "display")
	assert.ErrorIs(t, err, generator.ErrDuplicated)
}

func Test_Derive_Default(t *testing.T) {
	context := newContext(t, "Example")
	require.NoError(t, run(context, "derive"))

	out := src(t, context)
	assert.Contains(t, out, "func (e Example) String() string")
	assert.Contains(t, out, "func (e Example) GoString() string")
	assert.Contains(t, out, "func ParseExample(s string) (Example, error)")
}

func Test_Derive_As(t *testing.T) {
	context := newContext(t, "Example")
	require.NoError(t, run(context, "derive", "-as", "debug-pretty"))

	out := src(t, context)
	assert.Contains(t, out, "func (e Example) GoString() string {\n\treturn jsonfmt.String(jsonfmt.Std, &e, jsonfmt.Pretty)\n}")
	assert.NotContains(t, out, "String() string {\n\treturn jsonfmt.String(jsonfmt.Std, &e, jsonfmt.Compact)")
	assert.NotContains(t, out, "ParseExample")
}

func Test_DirectiveChain(t *testing.T) {
	context := newContext(t, "Example")
	model, err := context.Model()
	require.NoError(t, err)

	chain, err := DirectiveChain(model, context.FileSet)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	for _, cmd := range chain {
		require.NoError(t, cmd.Run(context))
	}
	out := src(t, context)
	assert.Contains(t, out, "jsonfmt.Pretty")
	assert.Contains(t, out, "func (e *Example) Set(s string) error")
}

func Test_DirectiveChain_Errors(t *testing.T) {
	for typeName, message := range map[string]string{
		"BadFlag": "flag provided but not defined: -unknown at /src/sample/sample.go:",
		"BadArgs": "unexpected arguments 'extra' at /src/sample/sample.go:",
	} {
		context := newContext(t, typeName)
		model, err := context.Model()
		require.NoError(t, err)
		_, err = DirectiveChain(model, context.FileSet)
		assert.ErrorContains(t, err, message, typeName)
	}
}
