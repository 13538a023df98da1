package command

import (
	"flag"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/params"
)

func NewParse() *Command {
	const (
		name = "parse"
	)
	var (
		flagSet  = flag.NewFlagSet(name, flag.ContinueOnError)
		funcName = flagSet.String("name", generator.Autoname, "parse function name, use "+generator.Autoname+
			" for autoname ("+generator.DefaultParsePrefix+"<Type name> as default)")
		export  = params.Export(flagSet, true)
		set     = flagSet.Bool("set", false, "generate Set method; together with String makes the type a flag.Value")
		setName = flagSet.String("set-name", generator.DefaultSetMethod, "Set method name")
		nolint  = params.Nolint(flagSet)
	)
	return New(
		name, "generates a function that parses the type from JSON text",
		flagSet,
		func(context *Context) error {
			return addParseFunc(context, *funcName, *export, *set, *setName, *nolint)
		},
	)
}
