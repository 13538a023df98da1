package generator

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/m4gshm/gollections/slice"
)

func TypeReceiverVar(typeName string) string {
	if parts := strings.Split(typeName, "."); len(parts) > 1 {
		if converted := slice.Convert(parts, TypeReceiverVar); len(converted) > 1 {
			if len(converted[1]) > 0 {
				return converted[1]
			} else if len(converted[0]) > 0 {
				return converted[0]
			}
		}
	} else if f, ok := slice.First([]rune(typeName), unicode.IsLetter); ok {
		return string(unicode.ToLower(f))
	}
	return "r"
}

// UniqueVarGenerator hands out variable names that do not repeat within one function.
type UniqueVarGenerator struct {
	uniqueVars *mutable.Set[string]
}

func NewUniqueVarGenerator(reserved ...string) *UniqueVarGenerator {
	u := &UniqueVarGenerator{uniqueVars: mutable.NewSet[string]()}
	for _, r := range reserved {
		u.uniqueVars.AddNew(r)
	}
	return u
}

func (u *UniqueVarGenerator) Get(name string) string {
	unique := name
	for i := 1; !u.uniqueVars.AddNew(unique); i++ {
		unique = name + strconv.Itoa(i)
	}
	return unique
}
