package command

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/collection/immutable"
	"github.com/m4gshm/gollections/slice"
	"github.com/pkg/errors"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/params"
)

var defaultKinds = slice.Of(generator.Display, generator.Debug, generator.Parse)

func NewDerive() *Command {
	const (
		name = "derive"
	)
	var (
		flagSet = flag.NewFlagSet(name, flag.ContinueOnError)
		export  = params.Export(flagSet, true)
		nolint  = params.Nolint(flagSet)
	)
	kinds, err := flagenum.Multiple(flagSet, "as", []generator.Kind{}, generator.Kinds(), fromString[generator.Kind], toString[generator.Kind],
		"derived representations; display, debug and parse if omitted")
	if err != nil {
		panic(err)
	}
	return New(
		name, "generates several representations of the type with default names",
		flagSet,
		func(context *Context) error {
			selected := immutable.NewSet(defaultKinds...)
			if len(*kinds) > 0 {
				selected = immutable.NewSet(*kinds...)
			}
			if selected.Contains(generator.Display) && selected.Contains(generator.DisplayPretty) {
				return errors.New("display and display-pretty are mutually exclusive")
			} else if selected.Contains(generator.Debug) && selected.Contains(generator.DebugPretty) {
				return errors.New("debug and debug-pretty are mutually exclusive")
			}
			for _, kind := range generator.Kinds() {
				if !selected.Contains(kind) {
					continue
				}
				var err error
				switch kind {
				case generator.Display, generator.DisplayPretty:
					err = addTextMethod(context, generator.DefaultDisplayMethod, styleOf(kind == generator.DisplayPretty), *nolint)
				case generator.Debug, generator.DebugPretty:
					err = addTextMethod(context, generator.DefaultDebugMethod, styleOf(kind == generator.DebugPretty), *nolint)
				case generator.Parse:
					err = addParseFunc(context, generator.Autoname, *export, false, generator.DefaultSetMethod, *nolint)
				}
				if err != nil {
					return errors.Wrap(err, string(kind))
				}
			}
			return nil
		},
	)
}
