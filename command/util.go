package command

import (
	"github.com/m4gshm/gollections/op"
	"github.com/pkg/errors"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/jsonfmt"
	"github.com/m4gshm/asjson/model/jsontype"
	"github.com/m4gshm/asjson/use"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

func styleOf(pretty bool) jsonfmt.Style {
	return op.IfElse(pretty, jsonfmt.Pretty, jsonfmt.Compact)
}

func checkMethod(context *Context, model *jsontype.Model, name string) error {
	if obj := model.DeclaredMember(name, context.FileSet, context.OutFile); obj != nil {
		return errors.Wrapf(generator.ErrMethodExists, "%s.%s at %s", model.TypeName(), name, context.FileSet.Position(obj.Pos()))
	}
	return nil
}

func checkFunc(context *Context, model *jsontype.Model, name string) error {
	if obj := context.declaredFunc(model, name); obj != nil {
		return errors.Wrapf(generator.ErrMethodExists, "%s at %s", name, context.FileSet.Position(obj.Pos()))
	}
	return nil
}

// addTextMethod generates String or GoString like methods.
func addTextMethod(context *Context, methodName string, style jsonfmt.Style, nolint bool) error {
	model, err := context.Model()
	if err != nil {
		return err
	}
	g := context.Generator
	if err := g.CanDeclareMethods(model); err != nil {
		return use.Err(err.Error())
	} else if err := model.Check(jsontype.Encode); err != nil {
		return err
	} else if err := checkMethod(context, model, methodName); err != nil {
		return err
	}
	name, body, err := g.GenerateTextMethod(model, methodName, style, context.Engine(), nolint)
	if err != nil {
		return err
	}
	return g.AddFuncOrMethod(name, body)
}

func addParseFunc(context *Context, funcName string, export, set bool, setName string, nolint bool) error {
	model, err := context.Model()
	if err != nil {
		return err
	}
	g := context.Generator
	if funcName == generator.Autoname {
		funcName = generator.ParseFuncName(model.TypeName(), export)
	}
	if err := g.CanReferenceType(model); err != nil {
		return use.Err(err.Error())
	} else if err := model.Check(jsontype.Decode); err != nil {
		return err
	} else if err := checkFunc(context, model, funcName); err != nil {
		return err
	}
	name, body, err := g.GenerateParseFunc(model, funcName, context.Engine(), nolint)
	if err != nil {
		return err
	} else if err = g.AddFuncOrMethod(name, body); err != nil {
		return err
	}
	if !set {
		return nil
	}
	if err := g.CanDeclareMethods(model); err != nil {
		return use.Err(err.Error())
	} else if err := checkMethod(context, model, setName); err != nil {
		return err
	}
	name, body, err = g.GenerateSetMethod(model, setName, funcName, nolint)
	if err != nil {
		return err
	}
	return g.AddFuncOrMethod(name, body)
}
