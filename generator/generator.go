package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/m4gshm/asjson/logger"
	"github.com/m4gshm/asjson/model/util"
)

// ErrDuplicated is returned when two commands produce the same function or method.
var ErrDuplicated = errors.New("duplicated function or method")

// ErrMethodExists is returned when the type already declares a member with the generated name.
var ErrMethodExists = errors.New("member already declared")

type Generator struct {
	Name       string
	OutPkgName string
	OutPkgPath string

	args        []string
	imports     map[string]importDecl
	importNames map[string]string
	importOrder []string
	funcs       map[string]struct{}
	bodies      []string
}

type importDecl struct {
	alias, declaredName string
}

func New(name string, args []string, outPkgName, outPkgPath string) *Generator {
	return &Generator{
		Name:        name,
		OutPkgName:  outPkgName,
		OutPkgPath:  outPkgPath,
		args:        args,
		imports:     map[string]importDecl{},
		importNames: map[string]string{},
		funcs:       map[string]struct{}{},
	}
}

// AddImport registers the package and returns the name the generated code must reference it by.
// The output package itself is referenced without a qualifier.
func (g *Generator) AddImport(pkgPath, pkgName string) (string, error) {
	if len(pkgPath) == 0 {
		return "", errors.New("empty import path")
	} else if pkgPath == g.OutPkgPath {
		return "", nil
	} else if existed, ok := g.imports[pkgPath]; ok {
		return existed.alias, nil
	}
	declaredName := pkgName
	if len(declaredName) == 0 {
		declaredName = packagePathToName(util.GetPackageName(pkgPath))
	}
	if len(declaredName) == 0 {
		return "", errors.Errorf("cannot detect package name of '%s'", pkgPath)
	}
	alias := declaredName
	for i := 1; ; i++ {
		if _, used := g.importNames[alias]; !used && alias != g.OutPkgName {
			break
		}
		alias = declaredName + strconv.Itoa(i)
	}
	g.imports[pkgPath] = importDecl{alias: alias, declaredName: declaredName}
	g.importNames[alias] = pkgPath
	g.importOrder = append(g.importOrder, pkgPath)
	logger.Debugf("add import %s as %s", pkgPath, alias)
	return alias, nil
}

// Qualifier renders package qualifiers of types used in generated code and imports the packages.
func (g *Generator) Qualifier() types.Qualifier {
	return func(p *types.Package) string {
		alias, err := g.AddImport(p.Path(), p.Name())
		if err != nil {
			logger.Debugf("qualifier of %s: %v", p.Path(), err)
			return p.Name()
		}
		return alias
	}
}

func (g *Generator) AddFuncOrMethod(name, body string) error {
	if _, ok := g.funcs[name]; ok {
		return errors.Wrap(ErrDuplicated, name)
	}
	g.funcs[name] = struct{}{}
	g.bodies = append(g.bodies, body)
	return nil
}

func (g *Generator) IsEmpty() bool {
	return len(g.bodies) == 0
}

func (g *Generator) Src() []byte {
	out := bytes.Buffer{}
	writer := newWriter(&out)
	writer("// Code generated by '%s'; DO NOT EDIT.\n\n", strings.Join(append([]string{g.Name}, g.args...), " "))
	writer("package %s\n\n", g.OutPkgName)
	if len(g.importOrder) > 0 {
		writer("import (\n")
		for _, pkgPath := range g.importOrder {
			decl := g.imports[pkgPath]
			if decl.alias != decl.declaredName || decl.declaredName != util.GetPackageName(pkgPath) {
				writer("%s %q\n", decl.alias, pkgPath)
			} else {
				writer("%q\n", pkgPath)
			}
		}
		writer(")\n\n")
	}
	for i, body := range g.bodies {
		if i > 0 {
			writer("\n")
		}
		writer("%s", body)
	}
	return out.Bytes()
}

func (g *Generator) FormatSrc() ([]byte, error) {
	src := g.Src()
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, err
	}
	return fmtSrc, nil
}

func newWriter(buffer *bytes.Buffer) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		fmt.Fprintf(buffer, format, args...)
	}
}
