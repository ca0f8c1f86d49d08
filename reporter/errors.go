package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/protocst/ast"
)

// ErrInvalidSource is a sentinel error that is returned by the lexer when
// errors are encountered but the configured ErrorReporter always returns nil.
var ErrInvalidSource = errors.New("invalid proto source")

// ErrorWithPos is an error about a proto source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using the
// given message format and arguments (via fmt.Errorf).
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// RangeError reports that an integer literal does not fit where it is used.
// Integer nodes only flag such values; this gives the flag a position. The
// kind describes the use, such as "field number" or "int32".
func RangeError(n ast.IntValueNode, kind string) ErrorWithPos {
	return Errorf(n.Start(), "value out of range for %s: %s", kind, intText(n))
}

func intText(n ast.IntValueNode) string {
	switch n := n.(type) {
	case *ast.UintLiteralNode:
		return n.RawText()
	case *ast.PositiveUintLiteralNode:
		return "+" + n.Uint().RawText()
	case *ast.NegativeIntLiteralNode:
		return "-" + n.Uint().RawText()
	default:
		return fmt.Sprint(n.Value())
	}
}

// errorWithSourcePos is an error about a proto source file that includes
// information about the location in the file that caused the error.
//
// Calling code that is trying to examine errors with location info should
// instead look for instances of the ErrorWithPos interface, which will find
// other kinds of errors.
type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	sourcePos := e.GetPosition()
	return fmt.Sprintf("%s: %v", sourcePos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// proto source that caused the error.
func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
