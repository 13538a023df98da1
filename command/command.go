package command

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func New(name, description string, flagSet *flag.FlagSet, op func(context *Context) error) *Command {
	c := &Command{
		name:        name,
		description: description,
		flag:        flagSet,
		op:          op,
	}
	flagSet.Usage = c.PrintUsage
	return c
}

type Command struct {
	name, description, manual string
	op                        func(context *Context) error
	flag                      *flag.FlagSet
}

func (c *Command) Name() string { return c.name }

func (c *Command) PrintUsage() {
	out := c.flag.Output()
	_, _ = fmt.Fprintln(out, c.description)
	_, _ = fmt.Fprintln(out, "Flags:")
	c.flag.PrintDefaults()
	if len(c.manual) > 0 {
		_, _ = fmt.Fprintln(out, c.manual)
	}
}

func (c *Command) Run(context *Context) error {
	if err := c.op(context); err != nil {
		return errors.Wrap(err, c.name)
	}
	return nil
}

// Parse consumes the command flags and returns the rest of the arguments.
func (c *Command) Parse(arguments []string) ([]string, error) {
	if err := c.flag.Parse(arguments); err != nil {
		return nil, errors.Wrapf(err, "parse args '%s'", c.name)
	}
	return c.flag.Args(), nil
}

// Get makes a new instance of the named command or returns nil if the command is unknown.
func Get(name string) *Command {
	if newCommand, ok := index[name]; ok {
		return newCommand()
	}
	return nil
}

func Supported() []string {
	list := []string{}
	for _, cmd := range commands {
		list = append(list, cmd().name)
	}
	return list
}

func PrintUsage() {
	out := os.Stderr
	_, _ = fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		c := cmd()
		_, _ = fmt.Fprintln(out, "  "+c.name+"\n    \t"+c.description)
	}
}

var commands = []func() *Command{
	NewDisplay,
	NewDebug,
	NewParse,
	NewDerive,
}

var index = toMap(commands)

func toMap(commands []func() *Command) map[string]func() *Command {
	index := map[string]func() *Command{}
	for _, c := range commands {
		index[c().name] = c
	}
	return index
}
