package command

import (
	"flag"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/params"
)

func NewDebug() *Command {
	const (
		name = "debug"
	)
	var (
		flagSet    = flag.NewFlagSet(name, flag.ContinueOnError)
		methodName = flagSet.String("name", generator.DefaultDebugMethod, "method name")
		pretty     = flagSet.Bool("pretty", false, "indented multi-line JSON instead of compact one")
		nolint     = params.Nolint(flagSet)
	)
	return New(
		name, "generates a GoString method (the %#v verb) that returns the JSON text of the type",
		flagSet,
		func(context *Context) error {
			return addTextMethod(context, *methodName, styleOf(*pretty), *nolint)
		},
	)
}
