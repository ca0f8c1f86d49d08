package walk

import (
	"slices"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal/interval"
)

// Index answers which nodes, tokens and comments lie at a byte offset of
// the file a tree was built from. Nodes without a known position are not
// indexed.
type Index struct {
	root      ast.Node
	terminals interval.Map[int, ast.TerminalNode]
	comments  interval.Map[int, CommentRef]
	nodes     interval.Intersect[int, ast.Node]
}

// CommentRef is a comment together with the terminal it is attached to.
type CommentRef struct {
	Comment  ast.Comment
	Owner    ast.TerminalNode
	Trailing bool
}

// NewIndex indexes the tree rooted at root.
func NewIndex(root ast.Node) *Index {
	idx := &Index{root: unwrap(root)}
	_ = Nodes(idx.root, func(n ast.Node) error {
		idx.add(n)
		return nil
	})
	return idx
}

// NewTokenIndex indexes a flat run of tokens that has not been assembled
// into a tree. Its Root is nil and PathTo returns at most one terminal.
func NewTokenIndex(tokens []ast.TerminalNode) *Index {
	idx := &Index{}
	for _, t := range tokens {
		idx.add(t)
	}
	return idx
}

func (idx *Index) add(n ast.Node) {
	start, end := n.Start(), n.End()
	if !start.IsKnown() {
		return
	}
	// Ranges are inclusive. A zero-width node, such as the end of file,
	// covers the offset it sits at.
	last := max(end.Offset-1, start.Offset)
	idx.nodes.Insert(start.Offset, last, n)

	t, ok := n.(ast.TerminalNode)
	if !ok {
		return
	}
	idx.terminals.Insert(start.Offset, last, t)
	for _, c := range t.LeadingComments() {
		idx.addComment(c, t, false)
	}
	for _, c := range t.TrailingComments() {
		idx.addComment(c, t, true)
	}
}

func (idx *Index) addComment(c ast.Comment, owner ast.TerminalNode, trailing bool) {
	if !c.Start.IsKnown() || c.End.Offset <= c.Start.Offset {
		return
	}
	idx.comments.Insert(c.Start.Offset, c.End.Offset-1, CommentRef{
		Comment:  c,
		Owner:    owner,
		Trailing: trailing,
	})
}

// Root returns the node the index was built from.
func (idx *Index) Root() ast.Node {
	return idx.root
}

// TerminalAt returns the terminal whose text contains offset. It returns
// nil if offset falls in whitespace or a comment.
func (idx *Index) TerminalAt(offset int) ast.TerminalNode {
	e, ok := idx.terminals.Get(offset)
	if !ok {
		return nil
	}
	return e.Value
}

// CommentAt returns the comment that contains offset.
func (idx *Index) CommentAt(offset int) (CommentRef, bool) {
	e, ok := idx.comments.Get(offset)
	return e.Value, ok
}

// PathTo returns the nodes that contain offset, starting with the root and
// ending with the innermost node. It returns nil if offset is outside every
// node. The last element is a terminal unless offset falls between tokens.
func (idx *Index) PathTo(offset int) []ast.Node {
	return slices.Clone(idx.nodes.Get(offset).Value)
}

// Terminals returns the number of indexed terminals.
func (idx *Index) Terminals() int {
	return idx.terminals.Len()
}
