package ast

import (
	"strings"

	"github.com/bufbuild/protocst/internal/seq"
)

// Identifier is a possibly-qualified name. This is used to distinguish
// ValueNode values that are references/identifiers vs. those that are
// string literals.
type Identifier string

// IdentValueNode is an AST node that represents an identifier.
type IdentValueNode interface {
	ValueNode
	AsIdentifier() Identifier
}

var _ IdentValueNode = (*IdentNode)(nil)
var _ IdentValueNode = (*CompoundIdentNode)(nil)

// IdentNode represents a simple, unqualified identifier. These are used to
// name elements declared in a protobuf file or to refer to elements. Example:
//
//	foobar
type IdentNode struct {
	terminalNode
	val string
}

// NewIdentNode creates a new *IdentNode. The given val is the identifier
// text, which the lexer interns.
func NewIdentNode(val string, info TokenInfo) *IdentNode {
	return &IdentNode{
		terminalNode: newTerminalNode(info),
		val:          val,
	}
}

func (n *IdentNode) Value() any {
	return n.AsIdentifier()
}

func (n *IdentNode) AsIdentifier() Identifier {
	return Identifier(n.val)
}

// Text returns the identifier as a plain string.
func (n *IdentNode) Text() string {
	return n.val
}

// KeywordNode is an AST node that represents a keyword. Keywords are
// like identifiers, but they have special meaning in particular contexts.
// Example:
//
//	message
type KeywordNode = IdentNode

// NewKeywordNode creates a new *KeywordNode. The given val is the keyword.
func NewKeywordNode(val string, info TokenInfo) *KeywordNode {
	return NewIdentNode(val, info)
}

// CompoundIdentNode represents a qualified identifier. A qualified identifier
// has at least one dot and possibly multiple identifier names (all separated by
// dots). If the identifier has a leading dot, then it is a *fully* qualified
// identifier. Example:
//
//	.com.foobar.Baz
type CompoundIdentNode struct {
	compositeNode
	val        string
	hasLeading bool
}

// NewCompoundIdentNode creates a *CompoundIdentNode. The leadingDot may be nil.
// The dots arg must have a length that is one less than that of components.
// The components arg must not be empty.
func NewCompoundIdentNode(leadingDot *RuneNode, components []*IdentNode, dots []*RuneNode) (*CompoundIdentNode, error) {
	if len(components) == 0 {
		return nil, constructionErrorf("compound identifier", ErrNoComponents, "")
	}
	if err := checkSeparators("compound identifier", len(components), len(dots)); err != nil {
		return nil, err
	}
	numChildren := len(components)*2 - 1
	if leadingDot != nil {
		numChildren++
	}
	children := make([]Node, 0, numChildren)
	var b strings.Builder
	if leadingDot != nil {
		children = append(children, leadingDot)
		b.WriteRune(leadingDot.r)
	}
	for i, comp := range components {
		if comp == nil {
			panic("component is nil")
		}
		if i > 0 {
			dot := dots[i-1]
			if dot == nil {
				panic("dot is nil")
			}
			children = append(children, dot)
			b.WriteRune(dot.r)
		}
		children = append(children, comp)
		b.WriteString(comp.val)
	}
	return &CompoundIdentNode{
		compositeNode: compositeNode{
			children: children,
		},
		val:        b.String(),
		hasLeading: leadingDot != nil,
	}, nil
}

// LeadingDot returns the leading dot of a fully qualified name, or nil.
func (n *CompoundIdentNode) LeadingDot() *RuneNode {
	if !n.hasLeading {
		return nil
	}
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *CompoundIdentNode) offset() int {
	if n.hasLeading {
		return 1
	}
	return 0
}

func (n *CompoundIdentNode) Components() seq.Indexer[*IdentNode] {
	return seq.NewFunc((len(n.children)-n.offset()+1)/2, func(i int) *IdentNode {
		return child[*IdentNode](&n.compositeNode, n.offset()+2*i)
	})
}

// Dots returns the separators between components. It does not include
// the leading dot.
func (n *CompoundIdentNode) Dots() seq.Indexer[*RuneNode] {
	return seq.NewFunc((len(n.children)-n.offset()-1)/2, func(i int) *RuneNode {
		return child[*RuneNode](&n.compositeNode, n.offset()+2*i+1)
	})
}

func (n *CompoundIdentNode) Value() any {
	return n.AsIdentifier()
}

func (n *CompoundIdentNode) AsIdentifier() Identifier {
	return Identifier(n.val)
}
