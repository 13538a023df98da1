package typeparams

import (
	"go/types"

	"github.com/m4gshm/gollections/op/delay/string_/join"
	"github.com/m4gshm/gollections/op/string_"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/asjson/model/util"
)

const nilTypeParam = "/*error: nil type parameter*/"

// TypeParams renders a type parameter list for generated declarations.
type TypeParams struct {
	params    []*types.TypeParam
	qualifier types.Qualifier
}

type nameType struct {
	name, constraint string
}

func New(tparams *types.TypeParamList, qualifier types.Qualifier) TypeParams {
	if tparams == nil {
		return TypeParams{qualifier: qualifier}
	}
	return TypeParams{params: slice.OfIndexed(tparams.Len(), tparams.At), qualifier: qualifier}
}

func (params TypeParams) Len() int {
	return len(params.params)
}

func paramName(elem *types.TypeParam) string {
	if elem == nil {
		return nilTypeParam
	}
	return elem.Obj().Name()
}

// nameTypePairs renders constraints through the qualifier, which may import their packages.
func (params TypeParams) nameTypePairs() []nameType {
	return slice.Convert(params.params, func(elem *types.TypeParam) nameType {
		if elem == nil {
			return nameType{name: nilTypeParam}
		}
		return nameType{
			name:       paramName(elem),
			constraint: util.TypeString(elem.Constraint(), params.qualifier),
		}
	})
}

// Ident is the instantiation form, [K, V].
func (params TypeParams) Ident() string {
	return identString(slice.Convert(params.params, paramName))
}

// Declaration is the declaration form; neighbours with the same constraint share it, [K comparable, V any].
func (params TypeParams) Declaration() string {
	return declarationString(params.nameTypePairs())
}

func identString(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return string_.WrapNonEmpty("[", slice.Reduce(names, join.NonEmpty(", ")), "]")
}

func declarationString(pairs []nameType) string {
	if len(pairs) == 0 {
		return ""
	}
	decl := ""
	for i, pair := range pairs {
		decl += pair.name
		if last := i == len(pairs)-1; last || pairs[i+1].constraint != pair.constraint {
			decl += " " + pair.constraint
			if !last {
				decl += ", "
			}
		} else {
			decl += ", "
		}
	}
	return "[" + decl + "]"
}
