package util

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/m4gshm/gollections/slice"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/asjson/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedName | packages.NeedTypesInfo | packages.NeedTypes | packages.NeedModule

func ExtractPackages(fileSet *token.FileSet, buildTags []string, dir string, patterns ...string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Dir:        dir,
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Logf:       func(format string, args ...any) { logger.Debugf("packagesLoad: "+format, args...) },
	}, patterns...)
	if err != nil {
		return nil, err
	}
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			logger.Debugf("package %s error; %v", pkg.PkgPath, pkgErr)
		}
	}
	return pkgs, nil
}

func buildTagsArg(buildTags []string) []string {
	if len(buildTags) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, ","))}
}

type TypeNamedOrAlias interface {
	types.Type
	Underlying() types.Type
	Obj() *types.TypeName
	TypeParams() *types.TypeParamList
}

var _ TypeNamedOrAlias = (*types.Named)(nil)
var _ TypeNamedOrAlias = (*types.Alias)(nil)

func GetTypeNamed(typ types.Type) TypeNamedOrAlias {
	switch ftt := typ.(type) {
	case *types.Named:
		return ftt
	case *types.Alias:
		return ftt
	default:
		return nil
	}
}

// FindType looks the package scope up for the type declaration.
func FindType(typeName string, pkg *types.Package) (TypeNamedOrAlias, error) {
	lookup := pkg.Scope().Lookup(typeName)
	if lookup == nil {
		logger.Debugf("no type '%s' in package '%s'", typeName, pkg.Name())
		return nil, nil
	} else if _, ok := lookup.(*types.TypeName); !ok {
		return nil, errors.Errorf("'%s' is not a type", typeName)
	} else if typeNamed := GetTypeNamed(lookup.Type()); typeNamed == nil {
		return nil, errors.Errorf("cannot detect type '%s'", typeName)
	} else {
		return typeNamed, nil
	}
}

func FindTypePackageFile(typeName string, fileSet *token.FileSet, pkgs []*packages.Package) (TypeNamedOrAlias, *packages.Package, *ast.File, error) {
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		typeNamed, err := FindType(typeName, pkg.Types)
		if err != nil {
			return nil, nil, nil, err
		} else if typeNamed == nil {
			continue
		}
		logger.Debugf("look package '%s', syntax file count %d", pkg.Name, len(pkg.Syntax))
		typFile, err := FindTypeFile(typeNamed, fileSet, pkg.Syntax)
		return typeNamed, pkg, typFile, err
	}
	return nil, nil, nil, nil
}

func FindTypeFile(typeNamed TypeNamedOrAlias, fileSet *token.FileSet, files []*ast.File) (*ast.File, error) {
	typeObj := typeNamed.Obj()
	typTokenFile := fileSet.File(typeObj.Pos())
	if typTokenFile == nil {
		return nil, errors.Errorf("type's file not found: type %s", typeObj.Id())
	}
	typFile, ok := slice.First(files, func(p *ast.File) bool {
		start := typTokenFile.Base()
		return p.FileStart == token.Pos(start) && p.FileEnd == token.Pos(start+typTokenFile.Size())
	})
	if !ok {
		return nil, errors.Errorf("type's file not found: type %s", typeObj.Id())
	}
	logger.Debugf("found type file (type [%s], file [%s])'", typeObj.Id(), typTokenFile.Name())
	return typFile, nil
}

// FindTypeSpec returns the declaration of the type and the doc comment attached to it.
func FindTypeSpec(file *ast.File, typeName string) (*ast.TypeSpec, *ast.CommentGroup) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			if typeSpec, ok := spec.(*ast.TypeSpec); ok && typeSpec.Name.Name == typeName {
				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}
				return typeSpec, doc
			}
		}
	}
	return nil, nil
}

func TypeString(typ types.Type, qualifier types.Qualifier) string {
	return types.TypeString(typ, qualifier)
}

// BasePackQ omits the qualifier of the output package and uses package names for the rest.
func BasePackQ(outPkgPath string) types.Qualifier {
	return func(p *types.Package) string {
		return op.IfElse(p.Path() == outPkgPath, "", p.Name())
	}
}

func GetPackageName(pkgPath string) string {
	j := len(pkgPath)
	i := j - 1
	for ; i >= 0; i-- {
		if pkgPath[i] == '/' {
			part := pkgPath[i+1 : j]
			if !isVersionElement(part) {
				return part
			}
			j = i
		}
	}
	return pkgPath[i+1 : j]
}

// isVersionElement reports whether s is a well-formed path version element:
// v2, v3, v10, etc, but not v0, v05, v1.
func isVersionElement(pkgName string) bool {
	if len(pkgName) < 2 || pkgName[0] != 'v' || pkgName[1] == '0' || pkgName[1] == '1' && len(pkgName) == 2 {
		return false
	}
	for i := 1; i < len(pkgName); i++ {
		if pkgName[i] < '0' || '9' < pkgName[i] {
			return false
		}
	}
	return true
}
