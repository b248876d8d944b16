package ntree

import (
	"github.com/KimNorgaard/go-ntree/ast"
	"github.com/KimNorgaard/go-ntree/errors"
)

// ParsingError is returned by Load and Parse for any malformed input.
type ParsingError = errors.ParsingError

// TypeMismatchError is returned by the ast.Node accessors when called on a
// node of another kind.
type TypeMismatchError = ast.TypeMismatchError
