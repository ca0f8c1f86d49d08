package ast

import "github.com/bufbuild/protocst/internal/seq"

// FileNode is the root of the AST hierarchy. It represents an entire
// protobuf source file.
type FileNode struct {
	compositeNode
	hasSyntax bool
}

// NewFileNode creates a new *FileNode. The syntax parameter is optional. If it
// is absent, it means the file had no syntax or edition declaration. The eof
// node must not be nil: it holds the whitespace and comments that follow the
// last declaration.
func NewFileNode(syntax *SyntaxNode, decls []FileElement, eof *RuneNode) *FileNode {
	if eof == nil {
		panic("eof is nil")
	}
	children := make([]Node, 0, len(decls)+2)
	if syntax != nil {
		children = append(children, syntax)
	}
	children = appendElements(children, decls)
	children = append(children, eof)
	return &FileNode{
		compositeNode: compositeNode{
			children: children,
		},
		hasSyntax: syntax != nil,
	}
}

// Name returns the name of the file, as recorded in its positions.
func (n *FileNode) Name() string {
	return n.EOF().Start().Filename
}

// Syntax returns the syntax or edition declaration, or nil if the file has
// none.
func (n *FileNode) Syntax() *SyntaxNode {
	if !n.hasSyntax {
		return nil
	}
	return child[*SyntaxNode](&n.compositeNode, 0)
}

func (n *FileNode) Decls() seq.Indexer[FileElement] {
	start := 0
	if n.hasSyntax {
		start = 1
	}
	return seq.NewSlice(n.children[start:len(n.children)-1], func(_ int, c Node) FileElement {
		return toFileElement(c)
	})
}

// EOF returns the synthetic end-of-file token.
func (n *FileNode) EOF() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// SyntaxNode represents a syntax declaration, which if present must be
// the first non-comment content. Example:
//
//	syntax = "proto2";
//
// Files that don't have a syntax node are assumed to use proto2 syntax.
// The same node also models an edition declaration, which starts with the
// "edition" keyword instead:
//
//	edition = "2023";
type SyntaxNode struct {
	compositeNode
}

// NewSyntaxNode creates a new *SyntaxNode. All four arguments must be non-nil:
//   - keyword: The token corresponding to the "syntax" or "edition" keyword.
//   - equals: The token corresponding to the "=" rune.
//   - syntax: The actual syntax value, e.g. "proto2" or "proto3".
//   - semicolon: The token corresponding to the ";" rune that ends the declaration.
func NewSyntaxNode(keyword *KeywordNode, equals *RuneNode, syntax StringValueNode, semicolon *RuneNode) *SyntaxNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if equals == nil {
		panic("equals is nil")
	}
	if isNil(syntax) {
		panic("syntax is nil")
	}
	if semicolon == nil {
		panic("semicolon is nil")
	}
	return &SyntaxNode{
		compositeNode: compositeNode{
			children: []Node{keyword, equals, syntax, semicolon},
		},
	}
}

func (n *SyntaxNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *SyntaxNode) Equals() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 1)
}

func (n *SyntaxNode) Syntax() StringValueNode {
	return child[StringValueNode](&n.compositeNode, 2)
}

func (n *SyntaxNode) Semicolon() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 3)
}

// IsEdition reports whether this is an edition declaration.
func (n *SyntaxNode) IsEdition() bool {
	return n.Keyword().val == "edition"
}

// PackageNode represents a package declaration. Example:
//
//	package foobar.com;
type PackageNode struct {
	compositeNode
}

// NewPackageNode creates a new *PackageNode. All three arguments must be non-nil:
//   - keyword: The token corresponding to the "package" keyword.
//   - name: The package name declared for the file.
//   - semicolon: The token corresponding to the ";" rune that ends the declaration.
func NewPackageNode(keyword *KeywordNode, name IdentValueNode, semicolon *RuneNode) *PackageNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if isNil(name) {
		panic("name is nil")
	}
	if semicolon == nil {
		panic("semicolon is nil")
	}
	return &PackageNode{
		compositeNode: compositeNode{
			children: []Node{keyword, name, semicolon},
		},
	}
}

func (n *PackageNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *PackageNode) Name() IdentValueNode {
	return child[IdentValueNode](&n.compositeNode, 1)
}

func (n *PackageNode) Semicolon() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 2)
}

// ImportNode represents an import statement. Example:
//
//	import "google/protobuf/empty.proto";
type ImportNode struct {
	compositeNode
	hasModifier bool
}

// NewImportNode creates a new *ImportNode. The modifier argument is optional
// and, when present, is the "public" or "weak" keyword. The other arguments
// must be non-nil:
//   - keyword: The token corresponding to the "import" keyword.
//   - name: The actual imported file name.
//   - semicolon: The token corresponding to the ";" rune that ends the declaration.
func NewImportNode(keyword *KeywordNode, modifier *KeywordNode, name StringValueNode, semicolon *RuneNode) *ImportNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if isNil(name) {
		panic("name is nil")
	}
	if semicolon == nil {
		panic("semicolon is nil")
	}
	children := make([]Node, 0, 4)
	children = append(children, keyword)
	if modifier != nil {
		children = append(children, modifier)
	}
	children = append(children, name, semicolon)
	return &ImportNode{
		compositeNode: compositeNode{
			children: children,
		},
		hasModifier: modifier != nil,
	}
}

func (n *ImportNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

// Modifier returns the "public" or "weak" keyword, or nil.
func (n *ImportNode) Modifier() *KeywordNode {
	if !n.hasModifier {
		return nil
	}
	return child[*KeywordNode](&n.compositeNode, 1)
}

func (n *ImportNode) Name() StringValueNode {
	return child[StringValueNode](&n.compositeNode, len(n.children)-2)
}

func (n *ImportNode) Semicolon() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// IsPublic reports whether this is a public import.
func (n *ImportNode) IsPublic() bool {
	m := n.Modifier()
	return m != nil && m.val == "public"
}

// IsWeak reports whether this is a weak import.
func (n *ImportNode) IsWeak() bool {
	m := n.Modifier()
	return m != nil && m.val == "weak"
}
