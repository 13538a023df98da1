package command

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/asjson/generator"
	"github.com/m4gshm/asjson/model/jsontype"
	"github.com/m4gshm/asjson/model/util"
	"github.com/m4gshm/asjson/params"
	"github.com/m4gshm/asjson/use"
)

type Context struct {
	Config    *params.Config
	Generator *generator.Generator
	FileSet   *token.FileSet
	Packages  []*packages.Package
	// OutFile is the absolute path of the generated file; declarations from it are ignored on regeneration.
	OutFile string
	model   *jsontype.Model
}

func (c *Context) Model() (*jsontype.Model, error) {
	if m := c.model; m != nil {
		return m, nil
	}
	typeName := *c.Config.Type
	if len(typeName) == 0 {
		return nil, use.Err("no type arg")
	}
	typ, _, file, err := util.FindTypePackageFile(typeName, c.FileSet, c.Packages)
	if err != nil {
		return nil, err
	} else if typ == nil {
		return nil, use.Err("type not found, " + typeName)
	}
	model, err := jsontype.New(typ, file)
	if err != nil {
		return nil, err
	}
	c.model = model
	return model, nil
}

func (c *Context) Engine() string {
	return *c.Config.Engine
}

// declaredFunc looks for a package level declaration in the output package outside the generated file.
func (c *Context) declaredFunc(model *jsontype.Model, name string) types.Object {
	if model.Package().Path() != c.Generator.OutPkgPath {
		return nil
	}
	obj := model.Package().Scope().Lookup(name)
	if obj == nil || c.FileSet.Position(obj.Pos()).Filename == c.OutFile {
		return nil
	}
	return obj
}
