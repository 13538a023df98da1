package generator

import (
	"go/types"

	"github.com/pkg/errors"

	"github.com/m4gshm/asjson/jsonfmt"
	"github.com/m4gshm/asjson/model/jsontype"
	"github.com/m4gshm/asjson/typeparams"
)

// RuntimePkgPath is the package generated code delegates to.
const RuntimePkgPath = "github.com/m4gshm/asjson/jsonfmt"

const runtimePkgName = "jsonfmt"

// Kind is a derivation selectable for a type.
type Kind string

const (
	Display       Kind = "display"
	DisplayPretty Kind = "display-pretty"
	Debug         Kind = "debug"
	DebugPretty   Kind = "debug-pretty"
	Parse         Kind = "parse"
)

func Kinds() []Kind {
	return []Kind{Display, DisplayPretty, Debug, DebugPretty, Parse}
}

const (
	DefaultDisplayMethod = "String"
	DefaultDebugMethod   = "GoString"
	DefaultSetMethod     = "Set"
	DefaultParsePrefix   = "Parse"
)

var engineIdents = map[string]string{
	jsonfmt.StdName:      "Std",
	jsonfmt.IteratorName: "Iterator",
	jsonfmt.SonicName:    "Sonic",
	jsonfmt.GoccyName:    "Goccy",
}

// EngineIdent returns the jsonfmt variable of the engine.
func EngineIdent(engine string) (string, error) {
	if _, ok := jsonfmt.Lookup(engine); !ok {
		return "", errors.Errorf("unsupported json engine '%s', expected one of %v", engine, jsonfmt.Names())
	}
	return engineIdents[engine], nil
}

func styleIdent(style jsonfmt.Style) string {
	if style == jsonfmt.Pretty {
		return "Pretty"
	}
	return "Compact"
}

// CanDeclareMethods checks the generated methods can be attached to the type from the output package.
func (g *Generator) CanDeclareMethods(model *jsontype.Model) error {
	if model.Package().Path() != g.OutPkgPath {
		return errors.Errorf("methods of %s must be generated into the package %s, not %s",
			model.TypeName(), model.Package().Path(), g.OutPkgPath)
	}
	if alias, ok := model.Typ.(*types.Alias); ok {
		named, isNamed := types.Unalias(alias).(*types.Named)
		if !isNamed || named.Obj().Pkg() != model.Package() || alias.TypeParams().Len() > 0 {
			return errors.Errorf("cannot define methods on alias %s", model.TypeName())
		}
	}
	return nil
}

// CanReferenceType checks the type is visible from the output package.
func (g *Generator) CanReferenceType(model *jsontype.Model) error {
	if model.Package().Path() != g.OutPkgPath && !IsExported(model.TypeName()) {
		return errors.Errorf("unexported type %s.%s cannot be referenced from the package %s",
			model.Package().Path(), model.TypeName(), g.OutPkgPath)
	}
	return nil
}

// GenerateTextMethod renders a method returning the JSON text of the receiver; the name decides
// whether it is the display (String) or the debug (GoString) representation.
func (g *Generator) GenerateTextMethod(model *jsontype.Model, name string, style jsonfmt.Style, engine string, nolint bool) (string, string, error) {
	if !IsIdent(name) {
		return "", "", errors.Errorf("invalid method name '%s'", name)
	}
	engineIdent, err := EngineIdent(engine)
	if err != nil {
		return "", "", err
	}
	pkgAlias, err := g.AddImport(RuntimePkgPath, runtimePkgName)
	if err != nil {
		return "", "", err
	}

	typeName := model.TypeName()
	tparams := typeparams.New(model.TypeParams(), g.Qualifier())
	uniqueVars := NewUniqueVarGenerator(pkgAlias)
	reserveTypeParams(uniqueVars, model.TypeParams())
	var (
		receiverVar  = uniqueVars.Get(TypeReceiverVar(typeName))
		receiverType = typeName + tparams.Ident()
		content      = "return " + pkgAlias + ".String(" + pkgAlias + "." + engineIdent + ", &" + receiverVar + ", " +
			pkgAlias + "." + styleIdent(style) + ")"
		body = MethodBody(name, receiverVar, receiverType, "", "string", nolint, content)
	)
	return MethodName(typeName, name), body, nil
}

// ParseFuncName composes the default parse function name.
func ParseFuncName(typeName string, export bool) string {
	return IdentName(DefaultParsePrefix+IdentName(typeName, true), export)
}

// GenerateParseFunc renders a function decoding JSON text into the type.
func (g *Generator) GenerateParseFunc(model *jsontype.Model, name string, engine string, nolint bool) (string, string, error) {
	if !IsIdent(name) {
		return "", "", errors.Errorf("invalid function name '%s'", name)
	}
	if err := g.CanReferenceType(model); err != nil {
		return "", "", err
	}
	engineIdent, err := EngineIdent(engine)
	if err != nil {
		return "", "", err
	}
	pkgAlias, err := g.AddImport(RuntimePkgPath, runtimePkgName)
	if err != nil {
		return "", "", err
	}
	typPkgAlias, err := g.AddImport(model.Package().Path(), model.Package().Name())
	if err != nil {
		return "", "", err
	}

	tparams := typeparams.New(model.TypeParams(), g.Qualifier())
	uniqueVars := NewUniqueVarGenerator(pkgAlias, typPkgAlias)
	reserveTypeParams(uniqueVars, model.TypeParams())
	var (
		argVar     = uniqueVars.Get("s")
		resultType = GetTypeName(model.TypeName(), typPkgAlias) + tparams.Ident()
		content    = "return " + pkgAlias + ".Parse[" + resultType + "](" + pkgAlias + "." + engineIdent + ", " + argVar + ")"
		body       = FuncBodyWithArgs(name, tparams.Declaration(), argVar+" string", "("+resultType+", error)", nolint, content)
	)
	return name, body, nil
}

// GenerateSetMethod renders a pointer method assigning the parsed text to the receiver.
// Together with a String method it makes the type a flag.Value.
func (g *Generator) GenerateSetMethod(model *jsontype.Model, name, parseFuncName string, nolint bool) (string, string, error) {
	if !IsIdent(name) {
		return "", "", errors.Errorf("invalid method name '%s'", name)
	}
	typeName := model.TypeName()
	tparams := typeparams.New(model.TypeParams(), g.Qualifier())

	uniqueVars := NewUniqueVarGenerator(parseFuncName)
	reserveTypeParams(uniqueVars, model.TypeParams())
	var (
		argVar      = uniqueVars.Get("s")
		valueVar    = uniqueVars.Get("v")
		errVar      = uniqueVars.Get("err")
		receiverVar = uniqueVars.Get(TypeReceiverVar(typeName))
		content     = valueVar + ", " + errVar + " := " + parseFuncName + tparams.Ident() + "(" + argVar + ")\n" +
			"if " + errVar + " != nil {\n" +
			"return " + errVar + "\n" +
			"}\n" +
			"*" + receiverVar + " = " + valueVar + "\n" +
			"return nil"
		body = MethodBody(name, receiverVar, "*"+typeName+tparams.Ident(), argVar+" string", "error", nolint, content)
	)
	return MethodName(typeName, name), body, nil
}

func reserveTypeParams(uniqueVars *UniqueVarGenerator, tparams *types.TypeParamList) {
	if tparams == nil {
		return
	}
	for i := 0; i < tparams.Len(); i++ {
		uniqueVars.Get(tparams.At(i).Obj().Name())
	}
}
