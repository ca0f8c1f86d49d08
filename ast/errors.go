package ast

import (
	"errors"
	"fmt"
)

var (
	// ErrNoComponents indicates that a node that requires at least one
	// component (a compound string or identifier, an option name) was given
	// none.
	ErrNoComponents = errors.New("must have at least one component")
	// ErrMismatchedSeparators indicates that the number of separators given
	// to a constructor does not fit the number of elements they separate.
	ErrMismatchedSeparators = errors.New("wrong number of separators for elements")
	// ErrNoOptions indicates a compact options list with no options in it.
	// Declarations without compact options use a nil *CompactOptionsNode.
	ErrNoOptions = errors.New("compact options must have at least one option")
	// ErrExtendeeMismatch indicates that a field or group in an extend block
	// was not constructed with that extend block as its owner.
	ErrExtendeeMismatch = errors.New("extension field was built for a different extend block")
)

// ConstructionError is returned by constructors that validate their inputs.
// When a constructor returns one, it returns no node.
type ConstructionError struct {
	// Node names the kind of node that could not be built, e.g.
	// "compound string literal".
	Node string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot create %s: %v", e.Node, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionErrorf(node string, err error, format string, args ...any) error {
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
	}
	return &ConstructionError{Node: node, Err: err}
}
