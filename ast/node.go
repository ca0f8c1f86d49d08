package ast

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/bufbuild/protocst/internal/seq"
)

// Node is the interface implemented by all nodes in the AST. It
// provides information about the span of this AST node in terms
// of location in the source file. It also provides information
// about all prior comments (attached as leading comments) and
// optional subsequent comments (attached as trailing comments).
type Node interface {
	Start() SourcePos
	End() SourcePos
	LeadingComments() []Comment
	TrailingComments() []Comment
}

// TerminalNode represents a leaf in the AST. These represent
// the tokens/lexemes in the protobuf language. Comments and
// whitespace are accumulated by the lexer and associated with
// the following lexed token.
//
// Only the types in this package implement TerminalNode. Their comment
// lists can only be changed through a [CommentAttacher].
type TerminalNode interface {
	Node
	// RawText returns the token exactly as it appears in source.
	RawText() string
	// LeadingWhitespace returns the whitespace between the previous
	// comment or token and this one.
	LeadingWhitespace() string

	token() *terminalNode
}

var _ TerminalNode = (*StringLiteralNode)(nil)
var _ TerminalNode = (*UintLiteralNode)(nil)
var _ TerminalNode = (*FloatLiteralNode)(nil)
var _ TerminalNode = (*IdentNode)(nil)
var _ TerminalNode = (*BoolLiteralNode)(nil)
var _ TerminalNode = (*SpecialFloatLiteralNode)(nil)
var _ TerminalNode = (*KeywordNode)(nil)
var _ TerminalNode = (*RuneNode)(nil)

// TokenInfo is everything the lexer knows about a single token. It is the
// input to every terminal node constructor.
type TokenInfo struct {
	PosRange
	RawText           string
	LeadingWhitespace string
	LeadingComments   []Comment
	TrailingComments  []Comment
}

// CompositeNode represents any non-terminal node in the tree. These
// are interior or root nodes and have child nodes.
type CompositeNode interface {
	Node
	// Children contains all AST nodes that are immediate children of this one,
	// in the order they appear in source.
	Children() []Node
}

type terminalNode struct {
	posRange   PosRange
	raw        string
	whitespace string
	leading    []Comment
	trailing   []Comment
	// attacher is the attachment pass that may change the comments.
	attacher *CommentAttacher
}

func newTerminalNode(info TokenInfo) terminalNode {
	return terminalNode{
		posRange:   info.PosRange,
		raw:        info.RawText,
		whitespace: info.LeadingWhitespace,
		leading:    slices.Clone(info.LeadingComments),
		trailing:   slices.Clone(info.TrailingComments),
	}
}

func (n *terminalNode) Start() SourcePos {
	return n.posRange.Start
}

func (n *terminalNode) End() SourcePos {
	return n.posRange.End
}

func (n *terminalNode) LeadingComments() []Comment {
	return slices.Clip(n.leading)
}

func (n *terminalNode) TrailingComments() []Comment {
	return slices.Clip(n.trailing)
}

func (n *terminalNode) RawText() string {
	return n.raw
}

func (n *terminalNode) LeadingWhitespace() string {
	return n.whitespace
}

func (n *terminalNode) token() *terminalNode {
	return n
}

// compositeNode holds the only copy of a non-terminal's children. Typed
// accessors on the concrete node types index into this slice.
type compositeNode struct {
	children []Node
}

func (n *compositeNode) Children() []Node {
	return slices.Clip(n.children)
}

func (n *compositeNode) first() Node {
	if len(n.children) == 0 {
		panic("ast: span requested from composite node with no children")
	}
	return n.children[0]
}

func (n *compositeNode) last() Node {
	if len(n.children) == 0 {
		panic("ast: span requested from composite node with no children")
	}
	return n.children[len(n.children)-1]
}

func (n *compositeNode) Start() SourcePos {
	return n.first().Start()
}

func (n *compositeNode) End() SourcePos {
	return n.last().End()
}

func (n *compositeNode) LeadingComments() []Comment {
	return n.first().LeadingComments()
}

func (n *compositeNode) TrailingComments() []Comment {
	return n.last().TrailingComments()
}

// child returns the child at index i as a T. A negative index denotes an
// absent optional child and yields the zero T.
func child[T Node](n *compositeNode, i int) T {
	if i < 0 {
		var zero T
		return zero
	}
	return n.children[i].(T)
}

// RuneNode represents a single rune in protobuf source. Runes
// are typically collected into tokens, but some runes stand on
// their own, such as punctuation/symbols like commas, semicolons,
// equals signs, open and close symbols (braces, brackets, angles,
// and parentheses), and periods/dots.
//
// A RuneNode is also a value node: a sign in front of a number is both
// punctuation and the operand that decides the number's sign.
type RuneNode struct {
	terminalNode
	r rune
}

// NewRuneNode creates a new *RuneNode with the given properties.
func NewRuneNode(r rune, info TokenInfo) *RuneNode {
	return &RuneNode{
		terminalNode: newTerminalNode(info),
		r:            r,
	}
}

// Rune returns the rune this node represents. The rune is zero for the
// synthetic end-of-file token.
func (n *RuneNode) Rune() rune {
	return n.r
}

func (n *RuneNode) Value() any {
	return n.r
}

func (n *RuneNode) String() string {
	return fmt.Sprintf("%q@%v", n.r, n.Start())
}

// IsEOF reports whether n is the synthetic end-of-file token.
func IsEOF(n Node) bool {
	r, ok := n.(*RuneNode)
	return ok && r.r == 0 && r.raw == ""
}

// EmptyDeclNode represents an empty declaration in protobuf source.
// These amount to extra semicolons, with no actual content preceding
// the semicolon. An empty declaration is legal in every body.
type EmptyDeclNode struct {
	compositeNode
}

// NewEmptyDeclNode creates a new *EmptyDeclNode. The one argument must
// be non-nil.
func NewEmptyDeclNode(semicolon *RuneNode) *EmptyDeclNode {
	if semicolon == nil {
		panic("semicolon is nil")
	}
	return &EmptyDeclNode{
		compositeNode: compositeNode{
			children: []Node{semicolon},
		},
	}
}

func (n *EmptyDeclNode) Semicolon() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

// appendList appends elems to children, separated by seps, and returns the
// index of each element in the result. The caller checks that there is one
// separator fewer than elements.
func appendList[T Node](children []Node, elems []T, seps []*RuneNode) ([]Node, []int) {
	idx := make([]int, len(elems))
	for i, e := range elems {
		if isNil(e) {
			panic("element is nil")
		}
		if i > 0 {
			if seps[i-1] == nil {
				panic("separator is nil")
			}
			children = append(children, seps[i-1])
		}
		idx[i] = len(children)
		children = append(children, e)
	}
	return children, idx
}

// isNil reports whether n is nil or holds a nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// listView is the view of a list built by appendList.
func listView[T Node](n *compositeNode, idx []int) seq.Indexer[T] {
	return seq.NewSlice(idx, func(_ int, i int) T {
		return child[T](n, i)
	})
}

// sepView is the view of the separators of a list built by appendList.
func sepView(n *compositeNode, idx []int) seq.Indexer[*RuneNode] {
	return seq.NewFunc(max(len(idx)-1, 0), func(i int) *RuneNode {
		return child[*RuneNode](n, idx[i]+1)
	})
}

// bodyView is the view of the declarations between the braces of a body.
// The open brace is at index open and the close brace is the last child.
func bodyView[E any](n *compositeNode, open int, wrap func(Node) E) seq.Indexer[E] {
	return seq.NewSlice(n.children[open+1:len(n.children)-1], func(_ int, c Node) E {
		return wrap(c)
	})
}
