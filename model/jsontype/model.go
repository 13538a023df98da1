package jsontype

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/pkg/errors"

	"github.com/m4gshm/asjson/model/util"
)

// DirectivePrefix marks doc comment lines of a type that configure generation.
const DirectivePrefix = "//asjson:"

// Model describes the type the textual representation is derived for.
type Model struct {
	Typ     util.TypeNamedOrAlias
	TypFile *ast.File
	doc     *ast.CommentGroup
}

// New - Model's default constructor.
func New(typ util.TypeNamedOrAlias, typFile *ast.File) (*Model, error) {
	if typ == nil {
		return nil, errors.New("nil type")
	}
	m := &Model{Typ: typ, TypFile: typFile}
	if typFile != nil {
		if spec, doc := util.FindTypeSpec(typFile, typ.Obj().Name()); spec != nil {
			m.doc = doc
		}
	}
	return m, nil
}

func (m *Model) Package() *types.Package {
	return m.Typ.Obj().Pkg()
}

func (m *Model) TypeName() string {
	return m.Typ.Obj().Name()
}

func (m *Model) TypeParams() *types.TypeParamList {
	return m.Typ.TypeParams()
}

// Directive is a doc comment line like //asjson:display -pretty.
type Directive struct {
	Comment *ast.Comment
	Args    []string
}

// Directives returns the asjson lines of the type's doc comment in declaration order.
func (m *Model) Directives() []Directive {
	if m.doc == nil {
		return nil
	}
	var directives []Directive
	for _, comment := range m.doc.List {
		if text, ok := strings.CutPrefix(comment.Text, DirectivePrefix); ok {
			if args := strings.Fields(text); len(args) > 0 {
				directives = append(directives, Directive{Comment: comment, Args: args})
			}
		}
	}
	return directives
}

// DeclaredMember returns a method or field of the type named name, skipping the ones declared in the excluded file.
func (m *Model) DeclaredMember(name string, fileSet *token.FileSet, excludedFile string) types.Object {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(m.Typ), true, m.Package(), name)
	if obj == nil {
		return nil
	}
	if fileSet != nil && len(excludedFile) > 0 && fileSet.Position(obj.Pos()).Filename == excludedFile {
		return nil
	}
	return obj
}
