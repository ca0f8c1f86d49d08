// Package walk provides helper functions for traversing the nodes of a
// concrete syntax tree and for finding the nodes at a source offset.
package walk

import (
	"errors"
	"iter"

	"github.com/bufbuild/protocst/ast"
)

// SkipChildren may be returned by an enter function to skip the children
// of the node just entered. The node's exit function is still called.
var SkipChildren = errors.New("skip children") //nolint:errname,revive,staticcheck // a control value, like fs.SkipDir

// Nodes walks the tree rooted at root in pre-order, calling fn for each
// node. If fn returns an error other than SkipChildren, the walk stops and
// that error is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks the tree rooted at root, calling enter before a
// node's children are visited and exit after. Either function may be nil.
// The first error returned by either function, other than SkipChildren
// from enter, stops the walk.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	w := nodeWalker{enter: enter, exit: exit}
	return w.walk(unwrap(root))
}

type nodeWalker struct {
	enter, exit func(ast.Node) error
}

func (w *nodeWalker) walk(n ast.Node) error {
	skip := false
	if w.enter != nil {
		if err := w.enter(n); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			skip = true
		}
	}
	if comp, ok := n.(ast.CompositeNode); ok && !skip {
		for _, ch := range comp.Children() {
			if err := w.walk(ch); err != nil {
				return err
			}
		}
	}
	if w.exit != nil {
		return w.exit(n)
	}
	return nil
}

// Terminals returns an iterator over the terminal nodes of the tree rooted
// at root, in source order.
func Terminals(root ast.Node) iter.Seq[ast.TerminalNode] {
	return func(yield func(ast.TerminalNode) bool) {
		var visit func(ast.Node) bool
		visit = func(n ast.Node) bool {
			switch n := n.(type) {
			case ast.TerminalNode:
				return yield(n)
			case ast.CompositeNode:
				for _, ch := range n.Children() {
					if !visit(ch) {
						return false
					}
				}
			}
			return true
		}
		visit(unwrap(root))
	}
}

// Ancestors walks the tree rooted at root and calls fn for every node with
// the path leading to it, from root down to the node's parent. The path
// slice is reused between calls. fn may return SkipChildren.
func Ancestors(root ast.Node, fn func(n ast.Node, path []ast.Node) error) error {
	var path []ast.Node
	return NodesEnterAndExit(root,
		func(n ast.Node) error {
			err := fn(n, path)
			path = append(path, n)
			return err
		},
		func(ast.Node) error {
			path = path[:len(path)-1]
			return nil
		},
	)
}

// unwrap returns the declaration inside an element value, so that walks
// may start from one.
func unwrap(n ast.Node) ast.Node {
	if e, ok := n.(interface{ Node() ast.Node }); ok {
		return e.Node()
	}
	return n
}
