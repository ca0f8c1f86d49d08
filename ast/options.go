package ast

import (
	"strings"

	"github.com/bufbuild/protocst/internal/seq"
)

// FieldReferenceNode is a reference to a field name. It can indicate a
// regular field (simple unqualified name), an extension field (possibly
// qualified name that is enclosed either in brackets or parentheses), or
// an "any" type reference (a type URL in the form "server.host/fully.qualified.Name"
// that is enclosed in brackets).
//
// Extension names are used in options to refer to custom options (which are
// actually extensions), in which case the name is enclosed in parentheses "("
// and ")". They can also be used to refer to extension fields of options.
//
// Extension names are also used in message literals to set extension fields,
// in which case the name is enclosed in square brackets "[" and "]".
//
// "Any" type references can only be used in message literals, and are not
// allowed in option names. They are always enclosed in square brackets. An
// "any" type reference is distinguished from an extension name by the presence
// of a slash, which must be present in an "any" type reference and must be
// absent in an extension name.
//
// Examples:
//
//	foobar
//	(foo.bar)
//	[foo.bar]
//	[type.googleapis.com/foo.bar]
type FieldReferenceNode struct {
	compositeNode
	name   int
	prefix int
	slash  int
}

// NewFieldReferenceNode creates a new *FieldReferenceNode for a regular field.
// The name arg must not be nil.
func NewFieldReferenceNode(name *IdentNode) *FieldReferenceNode {
	if name == nil {
		panic("name is nil")
	}
	return &FieldReferenceNode{
		compositeNode: compositeNode{
			children: []Node{name},
		},
		prefix: -1,
		slash:  -1,
	}
}

// NewExtensionFieldReferenceNode creates a new *FieldReferenceNode for an
// extension field. All args must be non-nil. The openSym and closeSym runes
// should be "(" and ")" or "[" and "]".
func NewExtensionFieldReferenceNode(openSym *RuneNode, name IdentValueNode, closeSym *RuneNode) *FieldReferenceNode {
	if isNil(name) {
		panic("name is nil")
	}
	if openSym == nil {
		panic("openSym is nil")
	}
	if closeSym == nil {
		panic("closeSym is nil")
	}
	return &FieldReferenceNode{
		compositeNode: compositeNode{
			children: []Node{openSym, name, closeSym},
		},
		name:   1,
		prefix: -1,
		slash:  -1,
	}
}

// NewAnyTypeReferenceNode creates a new *FieldReferenceNode for an "any"
// type reference. All args must be non-nil. The openSym and closeSym runes
// should be "[" and "]". The slashSym run should be "/".
func NewAnyTypeReferenceNode(openSym *RuneNode, urlPrefix IdentValueNode, slashSym *RuneNode, name IdentValueNode, closeSym *RuneNode) *FieldReferenceNode {
	if isNil(name) {
		panic("name is nil")
	}
	if openSym == nil {
		panic("openSym is nil")
	}
	if closeSym == nil {
		panic("closeSym is nil")
	}
	if isNil(urlPrefix) {
		panic("urlPrefix is nil")
	}
	if slashSym == nil {
		panic("slashSym is nil")
	}
	return &FieldReferenceNode{
		compositeNode: compositeNode{
			children: []Node{openSym, urlPrefix, slashSym, name, closeSym},
		},
		prefix: 1,
		slash:  2,
		name:   3,
	}
}

// Open returns the opening bracket or parenthesis, or nil for a regular field.
func (a *FieldReferenceNode) Open() *RuneNode {
	if !a.IsExtension() && !a.IsAnyTypeReference() {
		return nil
	}
	return child[*RuneNode](&a.compositeNode, 0)
}

// Close returns the closing bracket or parenthesis, or nil for a regular field.
func (a *FieldReferenceNode) Close() *RuneNode {
	if !a.IsExtension() && !a.IsAnyTypeReference() {
		return nil
	}
	return child[*RuneNode](&a.compositeNode, len(a.children)-1)
}

func (a *FieldReferenceNode) Name() IdentValueNode {
	return child[IdentValueNode](&a.compositeNode, a.name)
}

// URLPrefix returns the type URL prefix of an "any" type reference, or nil.
func (a *FieldReferenceNode) URLPrefix() IdentValueNode {
	return child[IdentValueNode](&a.compositeNode, a.prefix)
}

// Slash returns the "/" of an "any" type reference, or nil.
func (a *FieldReferenceNode) Slash() *RuneNode {
	return child[*RuneNode](&a.compositeNode, a.slash)
}

// IsExtension reports if this is an extension name or not (e.g. enclosed in
// punctuation, such as parentheses or brackets).
func (a *FieldReferenceNode) IsExtension() bool {
	return len(a.children) == 3
}

// IsAnyTypeReference reports if this is an Any type reference.
func (a *FieldReferenceNode) IsAnyTypeReference() bool {
	return a.slash >= 0
}

// Value returns the reference as it would be written, with any enclosing
// punctuation.
func (a *FieldReferenceNode) Value() string {
	name := string(a.Name().AsIdentifier())
	switch {
	case a.IsAnyTypeReference():
		return string(a.Open().r) + string(a.URLPrefix().AsIdentifier()) +
			string(a.Slash().r) + name + string(a.Close().r)
	case a.IsExtension():
		return string(a.Open().r) + name + string(a.Close().r)
	default:
		return name
	}
}

// OptionNameNode represents an option name or even a traversal through message
// types to name a nested option field. Example:
//
//	(foo.bar).baz.(bob)
type OptionNameNode struct {
	compositeNode
}

// NewOptionNameNode creates a new *OptionNameNode. The dots arg must have a
// length that is one less than the length of parts. The parts arg must not be
// empty.
func NewOptionNameNode(parts []*FieldReferenceNode, dots []*RuneNode) (*OptionNameNode, error) {
	if len(parts) == 0 {
		return nil, constructionErrorf("option name", ErrNoComponents, "")
	}
	if err := checkSeparators("option name", len(parts), len(dots)); err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(parts)*2-1)
	for i, part := range parts {
		if part == nil {
			panic("part is nil")
		}
		if i > 0 {
			if dots[i-1] == nil {
				panic("dot is nil")
			}
			children = append(children, dots[i-1])
		}
		children = append(children, part)
	}
	return &OptionNameNode{
		compositeNode: compositeNode{
			children: children,
		},
	}, nil
}

func (n *OptionNameNode) Parts() seq.Indexer[*FieldReferenceNode] {
	return seq.NewFunc((len(n.children)+1)/2, func(i int) *FieldReferenceNode {
		return child[*FieldReferenceNode](&n.compositeNode, 2*i)
	})
}

func (n *OptionNameNode) Dots() seq.Indexer[*RuneNode] {
	return seq.NewFunc(len(n.children)/2, func(i int) *RuneNode {
		return child[*RuneNode](&n.compositeNode, 2*i+1)
	})
}

// Value returns the name as written, parts joined by the dots.
func (n *OptionNameNode) Value() string {
	var b strings.Builder
	for _, c := range n.children {
		switch c := c.(type) {
		case *FieldReferenceNode:
			b.WriteString(c.Value())
		case *RuneNode:
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// OptionNode represents the declaration of a single option for an element.
// It is used both for normal option declarations (start with "option" keyword
// and end with semicolon) and for compact options found in fields, enum values,
// and extension ranges. Example:
//
//	option (custom.option) = "foo";
//
// Each option carries its own value node, so the options in one compact
// list may have values of different kinds.
type OptionNode struct {
	compositeNode
	compact bool
}

// NewOptionNode creates a new *OptionNode for a full option declaration (as
// used in files, messages, oneofs, enums, services, and methods). All arguments
// must be non-nil.
func NewOptionNode(keyword *KeywordNode, name *OptionNameNode, equals *RuneNode, val ValueNode, semicolon *RuneNode) *OptionNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	if equals == nil {
		panic("equals is nil")
	}
	if isNil(val) {
		panic("val is nil")
	}
	if semicolon == nil {
		panic("semicolon is nil")
	}
	return &OptionNode{
		compositeNode: compositeNode{
			children: []Node{keyword, name, equals, val, semicolon},
		},
	}
}

// NewCompactOptionNode creates a new *OptionNode for a full compact declaration
// (as used in fields, enum values, and extension ranges). All args must be
// non-nil.
func NewCompactOptionNode(name *OptionNameNode, equals *RuneNode, val ValueNode) *OptionNode {
	if name == nil {
		panic("name is nil")
	}
	if equals == nil {
		panic("equals is nil")
	}
	if isNil(val) {
		panic("val is nil")
	}
	return &OptionNode{
		compositeNode: compositeNode{
			children: []Node{name, equals, val},
		},
		compact: true,
	}
}

func (n *OptionNode) offset() int {
	if n.compact {
		return 0
	}
	return 1
}

// IsCompact reports whether this option appears inside a compact options
// list, without a keyword or semicolon.
func (n *OptionNode) IsCompact() bool {
	return n.compact
}

// Keyword returns the "option" keyword, or nil for a compact option.
func (n *OptionNode) Keyword() *KeywordNode {
	if n.compact {
		return nil
	}
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *OptionNode) Name() *OptionNameNode {
	return child[*OptionNameNode](&n.compositeNode, n.offset())
}

func (n *OptionNode) Equals() *RuneNode {
	return child[*RuneNode](&n.compositeNode, n.offset()+1)
}

func (n *OptionNode) Val() ValueNode {
	return child[ValueNode](&n.compositeNode, n.offset()+2)
}

// Semicolon returns the terminating semicolon, or nil for a compact option.
func (n *OptionNode) Semicolon() *RuneNode {
	if n.compact {
		return nil
	}
	return child[*RuneNode](&n.compositeNode, 4)
}

// CompactOptionsNode represents a compact options declaration, as used with
// fields, enum values, and extension ranges. Example:
//
//	[deprecated = true, json_name = "foo_bar"]
//
// A declaration without compact options holds no CompactOptionsNode at
// all, so a list always has at least one option.
type CompactOptionsNode struct {
	compositeNode
}

// NewCompactOptionsNode creates a *CompactOptionsNode. All args must be
// non-nil. The commas arg must have a length that is one less than the
// length of opts. The opts arg must not be empty.
func NewCompactOptionsNode(openBracket *RuneNode, opts []*OptionNode, commas []*RuneNode, closeBracket *RuneNode) (*CompactOptionsNode, error) {
	if openBracket == nil {
		panic("openBracket is nil")
	}
	if closeBracket == nil {
		panic("closeBracket is nil")
	}
	if len(opts) == 0 {
		return nil, constructionErrorf("compact options", ErrNoOptions, "")
	}
	if err := checkSeparators("compact options", len(opts), len(commas)); err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(opts)*2+1)
	children = append(children, openBracket)
	for i, opt := range opts {
		if opt == nil {
			panic("option is nil")
		}
		if !opt.compact {
			panic("option is not compact")
		}
		if i > 0 {
			if commas[i-1] == nil {
				panic("comma is nil")
			}
			children = append(children, commas[i-1])
		}
		children = append(children, opt)
	}
	children = append(children, closeBracket)
	return &CompactOptionsNode{
		compositeNode: compositeNode{
			children: children,
		},
	}, nil
}

func (n *CompactOptionsNode) OpenBracket() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *CompactOptionsNode) CloseBracket() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

func (n *CompactOptionsNode) Options() seq.Indexer[*OptionNode] {
	return seq.NewFunc(len(n.children)/2, func(i int) *OptionNode {
		return child[*OptionNode](&n.compositeNode, 1+2*i)
	})
}

func (n *CompactOptionsNode) Commas() seq.Indexer[*RuneNode] {
	return seq.NewFunc(len(n.children)/2-1, func(i int) *RuneNode {
		return child[*RuneNode](&n.compositeNode, 2+2*i)
	})
}
