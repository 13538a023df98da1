package command

import (
	"go/token"
	"strings"

	"github.com/m4gshm/asjson/model/jsontype"
	"github.com/m4gshm/asjson/use"
)

// Chain splits arguments like "display -pretty parse -set" into parsed commands.
func Chain(args []string) ([]*Command, error) {
	var chain []*Command
	for len(args) > 0 {
		name := args[0]
		cmd := Get(name)
		if cmd == nil {
			return nil, use.Err("unknown command '" + name + "', expected one of " + strings.Join(Supported(), ", "))
		}
		rest, err := cmd.Parse(args[1:])
		if err != nil {
			return nil, err
		}
		chain = append(chain, cmd)
		args = rest
	}
	return chain, nil
}

// DirectiveChain builds commands from the //asjson: lines of the type doc comment, one command per line.
func DirectiveChain(model *jsontype.Model, fileSet *token.FileSet) ([]*Command, error) {
	var chain []*Command
	for _, directive := range model.Directives() {
		name := directive.Args[0]
		cmd := Get(name)
		if cmd == nil {
			return nil, use.DirectiveErr("unknown command '"+name+"'", fileSet, directive.Comment)
		}
		rest, err := cmd.Parse(directive.Args[1:])
		if err != nil {
			return nil, use.DirectiveErr(err.Error(), fileSet, directive.Comment)
		} else if len(rest) > 0 {
			return nil, use.DirectiveErr("unexpected arguments '"+strings.Join(rest, " ")+"'", fileSet, directive.Comment)
		}
		chain = append(chain, cmd)
	}
	return chain, nil
}
