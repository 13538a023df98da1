package generator

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/op"
)

// Autoname asks a command to compose the function name from the type name.
const Autoname = "."

func MethodName(typ, fun string) string { return typ + "." + fun }

func NoLint(nolint bool) string {
	return op.IfElse(nolint, " //nolint", "")
}

func MethodBody(name string, methodReceiverVar, methodReceiverType, args, returnType string, nolint bool, content string) string {
	return "func (" + methodReceiverVar + " " + methodReceiverType + ") " + name + "(" + args + ") " + returnType +
		" {" + NoLint(nolint) + "\n" + content + "\n}\n"
}

func FuncBodyWithArgs(name, typeParamsDecl, args, returnType string, nolint bool, content string) string {
	return "func " + name + typeParamsDecl + "(" + args + ") " + returnType + " {" + NoLint(nolint) + "\n" + content + "\n}\n"
}

func GetTypeName(typeName string, pkgName string) string {
	return op.IfElse(len(pkgName) > 0, pkgName+"."+typeName, typeName)
}

// IdentName converts the first letter case of the name.
func IdentName(name string, export bool) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(op.IfElse(export, unicode.ToUpper(first), unicode.ToLower(first))) + name[size:]
}

func IsExported(name string) bool {
	return token.IsExported(name)
}

func IsIdent(name string) bool {
	return token.IsIdentifier(name)
}
