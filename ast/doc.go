// Package ast defines types for modeling the concrete syntax tree of the
// protocol buffers source language.
//
// All nodes of the tree implement the Node interface. Leaf nodes in the
// tree implement TerminalNode and all others implement CompositeNode.
// The root of the tree for a proto source file is a *FileNode.
//
// The tree is lossless. Every terminal records its raw text and the
// whitespace before it, so printing the terminals in order with Print
// reproduces the source exactly.
//
// Comments are not represented as nodes in the tree. Instead, they are
// attributed to terminal nodes in the tree. So, when lexing, comments
// are accumulated until the next non-comment token is found. The AST
// model in this package thus provides access to all comments in the
// file, regardless of location (unlike the SourceCodeInfo present in
// descriptor protos, which is lossy). The comments associated with a
// a non-leaf/non-token node (i.e. a CompositeNode) come from the first
// and last nodes in its sub-tree, for leading and trailing comments
// respectively. The same holds for positions: a composite starts where
// its first child starts and ends where its last child ends. A composite
// node always has at least one child.
//
// A composite node keeps its children in a single slice. The named
// accessors of each node type, like MessageNode.Name or
// EnumNode.Decls, are views into that slice.
//
// Which declarations may appear in which body is encoded by the element
// families (FileElement, MessageElement, EnumElement, and so on). A
// declaration type that is legal in a body has a method that converts it
// to that body's element type, such as (*FieldNode).AsMessageElement.
//
// Creation of AST nodes should use the factory functions in this
// package instead of struct literals. Some factory functions accept
// optional arguments, which means the arguments can be nil. Passing nil
// for any other argument panics. Factories that validate the number of
// their inputs return a *ConstructionError instead.
//
// This package defines numerous interfaces. However, user code should
// not attempt to implement any of them. Most consumers of an AST will
// not work correctly if they encounter concrete implementations other
// than the ones defined in this package.
package ast
