package ast

import "github.com/bufbuild/protocst/internal/seq"

// EnumNode represents an enum declaration. Example:
//
//	enum Foo { BAR = 0; BAZ = 1 }
type EnumNode struct {
	compositeNode
}

// NewEnumNode creates a new *EnumNode. All arguments must be non-nil. While
// it is technically allowed for decls to be nil or empty, the resulting node
// will not be a valid enum, which must have at least one value.
//   - keyword: The token corresponding to the "enum" keyword.
//   - name: The token corresponding to the enum's name.
//   - openBrace: The token corresponding to the "{" rune that starts the body.
//   - decls: All declarations inside the enum body.
//   - closeBrace: The token corresponding to the "}" rune that ends the body.
func NewEnumNode(keyword *KeywordNode, name *IdentNode, openBrace *RuneNode, decls []EnumElement, closeBrace *RuneNode) *EnumNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	children := make([]Node, 0, 4+len(decls))
	children = append(children, keyword, name)
	children = appendBody(children, openBrace, decls, closeBrace)
	return &EnumNode{
		compositeNode: compositeNode{
			children: children,
		},
	}
}

func (n *EnumNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *EnumNode) Name() *IdentNode {
	return child[*IdentNode](&n.compositeNode, 1)
}

func (n *EnumNode) OpenBrace() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 2)
}

func (n *EnumNode) Decls() seq.Indexer[EnumElement] {
	return bodyView(&n.compositeNode, 2, toEnumElement)
}

func (n *EnumNode) CloseBrace() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// EnumValueNode represents an enum declaration. Example:
//
//	UNSET = 0 [deprecated = true];
type EnumValueNode struct {
	compositeNode
	opts int
}

// NewEnumValueNode creates a new *EnumValueNode. All arguments must be non-nil
// except opts which is only non-nil if the declaration included options.
//   - name: The token corresponding to the enum value's name.
//   - equals: The token corresponding to the '=' rune after the name.
//   - number: The token corresponding to the enum value's number. It is not
//     range checked here; it may be negative.
//   - opts: Optional set of enum value options.
//   - semicolon: The token corresponding to the ";" rune that ends the declaration.
func NewEnumValueNode(name *IdentNode, equals *RuneNode, number IntValueNode, opts *CompactOptionsNode, semicolon *RuneNode) *EnumValueNode {
	if name == nil {
		panic("name is nil")
	}
	if equals == nil {
		panic("equals is nil")
	}
	if isNil(number) {
		panic("number is nil")
	}
	if semicolon == nil {
		panic("semicolon is nil")
	}
	n := &EnumValueNode{opts: -1}
	children := make([]Node, 0, 5)
	children = append(children, name, equals, number)
	if opts != nil {
		n.opts = len(children)
		children = append(children, opts)
	}
	n.children = append(children, semicolon)
	return n
}

func (n *EnumValueNode) Name() *IdentNode {
	return child[*IdentNode](&n.compositeNode, 0)
}

func (n *EnumValueNode) Equals() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 1)
}

func (n *EnumValueNode) Number() IntValueNode {
	return child[IntValueNode](&n.compositeNode, 2)
}

// Options returns the compact options, or nil if the value has none.
func (n *EnumValueNode) Options() *CompactOptionsNode {
	return child[*CompactOptionsNode](&n.compositeNode, n.opts)
}

func (n *EnumValueNode) Semicolon() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}
