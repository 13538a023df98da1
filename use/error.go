package use

import (
	"fmt"
	"go/ast"
	"go/token"
)

func Err(message string) *Error {
	return &Error{message: message}
}

// DirectiveErr is an error bound to an asjson directive comment.
func DirectiveErr(message string, fileSet *token.FileSet, comment *ast.Comment) *Error {
	return &Error{message: message, fileSet: fileSet, comment: comment}
}

type Error struct {
	message string

	fileSet *token.FileSet
	comment *ast.Comment
}

func (e *Error) Error() string {
	m := e.message
	if e.comment != nil {
		if e.fileSet != nil {
			m += fmt.Sprintf(" at %s", e.fileSet.Position(e.comment.Pos()))
		} else {
			m += fmt.Sprintf(" pos: %d", e.comment.Pos())
		}
	}
	return m
}
