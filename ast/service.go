package ast

import "github.com/bufbuild/protocst/internal/seq"

// ServiceNode represents a service declaration. Example:
//
//	service Foo {
//	  rpc Bar (Baz) returns (Bob);
//	  rpc Frobnitz (stream Parts) returns (Gyzmeaux);
//	}
type ServiceNode struct {
	compositeNode
}

// NewServiceNode creates a new *ServiceNode. All arguments must be non-nil.
//   - keyword: The token corresponding to the "service" keyword.
//   - name: The token corresponding to the service's name.
//   - openBrace: The token corresponding to the "{" rune that starts the body.
//   - decls: All declarations inside the service body.
//   - closeBrace: The token corresponding to the "}" rune that ends the body.
func NewServiceNode(keyword *KeywordNode, name *IdentNode, openBrace *RuneNode, decls []ServiceElement, closeBrace *RuneNode) *ServiceNode {
	if keyword == nil {
		panic("keyword is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	children := make([]Node, 0, 4+len(decls))
	children = append(children, keyword, name)
	children = appendBody(children, openBrace, decls, closeBrace)
	return &ServiceNode{
		compositeNode: compositeNode{
			children: children,
		},
	}
}

func (n *ServiceNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *ServiceNode) Name() *IdentNode {
	return child[*IdentNode](&n.compositeNode, 1)
}

func (n *ServiceNode) OpenBrace() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 2)
}

func (n *ServiceNode) Decls() seq.Indexer[ServiceElement] {
	return bodyView(&n.compositeNode, 2, toServiceElement)
}

func (n *ServiceNode) CloseBrace() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// RPCNode represents an RPC declaration. Example:
//
//	rpc Foo (Bar) returns (Baz);
type RPCNode struct {
	compositeNode
}

// NewRPCNode creates a new *RPCNode with no body. All arguments must be non-nil.
//   - keyword: The token corresponding to the "rpc" keyword.
//   - name: The token corresponding to the RPC's name.
//   - input: The token corresponding to the RPC input message type.
//   - returns: The token corresponding to the "returns" keyword that precedes the output type.
//   - output: The token corresponding to the RPC output message type.
//   - semicolon: The token corresponding to the ";" rune that ends the declaration.
func NewRPCNode(keyword *KeywordNode, name *IdentNode, input *RPCTypeNode, returns *KeywordNode, output *RPCTypeNode, semicolon *RuneNode) *RPCNode {
	if semicolon == nil {
		panic("semicolon is nil")
	}
	children := rpcHeader(keyword, name, input, returns, output)
	return &RPCNode{
		compositeNode: compositeNode{
			children: append(children, semicolon),
		},
	}
}

// NewRPCNodeWithBody creates a new *RPCNode that includes a body (and possibly
// options). All arguments must be non-nil.
//   - keyword: The token corresponding to the "rpc" keyword.
//   - name: The token corresponding to the RPC's name.
//   - input: The token corresponding to the RPC input message type.
//   - returns: The token corresponding to the "returns" keyword that precedes the output type.
//   - output: The token corresponding to the RPC output message type.
//   - openBrace: The token corresponding to the "{" rune that starts the body.
//   - decls: All declarations inside the RPC body.
//   - closeBrace: The token corresponding to the "}" rune that ends the body.
func NewRPCNodeWithBody(keyword *KeywordNode, name *IdentNode, input *RPCTypeNode, returns *KeywordNode, output *RPCTypeNode, openBrace *RuneNode, decls []MethodElement, closeBrace *RuneNode) *RPCNode {
	children := rpcHeader(keyword, name, input, returns, output)
	return &RPCNode{
		compositeNode: compositeNode{
			children: appendBody(children, openBrace, decls, closeBrace),
		},
	}
}

func rpcHeader(keyword *KeywordNode, name *IdentNode, input *RPCTypeNode, returns *KeywordNode, output *RPCTypeNode) []Node {
	if keyword == nil {
		panic("keyword is nil")
	}
	if name == nil {
		panic("name is nil")
	}
	if input == nil {
		panic("input is nil")
	}
	if returns == nil {
		panic("returns is nil")
	}
	if output == nil {
		panic("output is nil")
	}
	return []Node{keyword, name, input, returns, output}
}

func (n *RPCNode) Keyword() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 0)
}

func (n *RPCNode) Name() *IdentNode {
	return child[*IdentNode](&n.compositeNode, 1)
}

func (n *RPCNode) Input() *RPCTypeNode {
	return child[*RPCTypeNode](&n.compositeNode, 2)
}

func (n *RPCNode) Returns() *KeywordNode {
	return child[*KeywordNode](&n.compositeNode, 3)
}

func (n *RPCNode) Output() *RPCTypeNode {
	return child[*RPCTypeNode](&n.compositeNode, 4)
}

// HasBody reports whether the method has a body in braces rather than a
// terminating semicolon.
func (n *RPCNode) HasBody() bool {
	return len(n.children) > 6
}

// Semicolon returns the terminating semicolon, or nil if the method has a
// body.
func (n *RPCNode) Semicolon() *RuneNode {
	if n.HasBody() {
		return nil
	}
	return child[*RuneNode](&n.compositeNode, 5)
}

// OpenBrace returns the "{" that starts the body, or nil if there is none.
func (n *RPCNode) OpenBrace() *RuneNode {
	if !n.HasBody() {
		return nil
	}
	return child[*RuneNode](&n.compositeNode, 5)
}

// Decls returns the declarations in the body. It is empty if there is no
// body.
func (n *RPCNode) Decls() seq.Indexer[MethodElement] {
	if !n.HasBody() {
		return seq.NewSlice([]Node(nil), func(_ int, c Node) MethodElement {
			return toMethodElement(c)
		})
	}
	return bodyView(&n.compositeNode, 5, toMethodElement)
}

// CloseBrace returns the "}" that ends the body, or nil if there is none.
func (n *RPCNode) CloseBrace() *RuneNode {
	if !n.HasBody() {
		return nil
	}
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// RPCTypeNode represents the declaration of a request or response type for an
// RPC. Example:
//
//	(stream foo.Bar)
type RPCTypeNode struct {
	compositeNode
	hasStream bool
}

// NewRPCTypeNode creates a new *RPCTypeNode. All arguments must be non-nil
// except stream, which may be nil.
//   - openParen: The token corresponding to the "(" rune that starts the declaration.
//   - stream: The token corresponding to the "stream" keyword or nil if not present.
//   - msgType: The token corresponding to the message type's name.
//   - closeParen: The token corresponding to the ")" rune that ends the declaration.
func NewRPCTypeNode(openParen *RuneNode, stream *KeywordNode, msgType IdentValueNode, closeParen *RuneNode) *RPCTypeNode {
	if openParen == nil {
		panic("openParen is nil")
	}
	if isNil(msgType) {
		panic("msgType is nil")
	}
	if closeParen == nil {
		panic("closeParen is nil")
	}
	children := make([]Node, 0, 4)
	children = append(children, openParen)
	if stream != nil {
		children = append(children, stream)
	}
	children = append(children, msgType, closeParen)
	return &RPCTypeNode{
		compositeNode: compositeNode{
			children: children,
		},
		hasStream: stream != nil,
	}
}

func (n *RPCTypeNode) OpenParen() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

// Stream returns the "stream" keyword, or nil if the type is not streamed.
func (n *RPCTypeNode) Stream() *KeywordNode {
	if !n.hasStream {
		return nil
	}
	return child[*KeywordNode](&n.compositeNode, 1)
}

func (n *RPCTypeNode) MessageType() IdentValueNode {
	return child[IdentValueNode](&n.compositeNode, len(n.children)-2)
}

func (n *RPCTypeNode) CloseParen() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}
