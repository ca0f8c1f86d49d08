package ast

import "fmt"

// element is the shared representation of the capability families below.
// Each family wraps one legal declaration together with its kind.
type element[K ~int8] struct {
	node Node
	kind K
}

// Kind returns the kind of declaration this is. This is suitable for use
// in a switch statement.
func (e element[K]) Kind() K {
	return e.kind
}

// Node returns the wrapped declaration, or nil for the zero value.
func (e element[K]) Node() Node {
	return e.node
}

func (e element[K]) Start() SourcePos {
	return e.node.Start()
}

func (e element[K]) End() SourcePos {
	return e.node.End()
}

func (e element[K]) LeadingComments() []Comment {
	return e.node.LeadingComments()
}

func (e element[K]) TrailingComments() []Comment {
	return e.node.TrailingComments()
}

func as[T Node](n Node) T {
	t, _ := n.(T)
	return t
}

func illegalElement(family string, n Node) string {
	return fmt.Sprintf("ast: %T is not a legal %s element", n, family)
}

// FileElementKind is a kind of declaration that may appear at the top
// level of a file.
type FileElementKind int8

const (
	FileElementImport FileElementKind = iota + 1
	FileElementPackage
	FileElementOption
	FileElementMessage
	FileElementEnum
	FileElementExtend
	FileElementService
	FileElementEmpty
)

// FileElement is any declaration that may appear at the top level of a
// file. Values are obtained from the AsFileElement methods of the legal
// declaration types.
type FileElement struct {
	element[FileElementKind]
}

var _ Node = FileElement{}

func (e FileElement) AsImport() *ImportNode { return as[*ImportNode](e.node) }
func (e FileElement) AsPackage() *PackageNode { return as[*PackageNode](e.node) }
func (e FileElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e FileElement) AsMessage() *MessageNode { return as[*MessageNode](e.node) }
func (e FileElement) AsEnum() *EnumNode { return as[*EnumNode](e.node) }
func (e FileElement) AsExtend() *ExtendNode { return as[*ExtendNode](e.node) }
func (e FileElement) AsService() *ServiceNode { return as[*ServiceNode](e.node) }
func (e FileElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *ImportNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementImport}}
}

func (n *PackageNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementPackage}}
}

func (n *OptionNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementOption}}
}

func (n *MessageNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementMessage}}
}

func (n *EnumNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementEnum}}
}

func (n *ExtendNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementExtend}}
}

func (n *ServiceNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementService}}
}

func (n *EmptyDeclNode) AsFileElement() FileElement {
	return FileElement{element[FileElementKind]{n, FileElementEmpty}}
}

func toFileElement(n Node) FileElement {
	switch n := n.(type) {
	case *ImportNode:
		return n.AsFileElement()
	case *PackageNode:
		return n.AsFileElement()
	case *OptionNode:
		return n.AsFileElement()
	case *MessageNode:
		return n.AsFileElement()
	case *EnumNode:
		return n.AsFileElement()
	case *ExtendNode:
		return n.AsFileElement()
	case *ServiceNode:
		return n.AsFileElement()
	case *EmptyDeclNode:
		return n.AsFileElement()
	}
	panic(illegalElement("file", n))
}

// MessageElementKind is a kind of declaration that may appear in the body
// of a message or group.
type MessageElementKind int8

const (
	MessageElementOption MessageElementKind = iota + 1
	MessageElementField
	MessageElementGroup
	MessageElementOneof
	MessageElementMessage
	MessageElementEnum
	MessageElementExtend
	MessageElementExtensionRange
	MessageElementReserved
	MessageElementEmpty
)

// MessageElement is any declaration that may appear in the body of a
// message or group.
type MessageElement struct {
	element[MessageElementKind]
}

var _ Node = MessageElement{}

func (e MessageElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e MessageElement) AsField() *FieldNode { return as[*FieldNode](e.node) }
func (e MessageElement) AsGroup() *GroupNode { return as[*GroupNode](e.node) }
func (e MessageElement) AsOneof() *OneofNode { return as[*OneofNode](e.node) }
func (e MessageElement) AsMessage() *MessageNode { return as[*MessageNode](e.node) }
func (e MessageElement) AsEnum() *EnumNode { return as[*EnumNode](e.node) }
func (e MessageElement) AsExtend() *ExtendNode { return as[*ExtendNode](e.node) }
func (e MessageElement) AsExtensionRange() *ExtensionRangeNode {
	return as[*ExtensionRangeNode](e.node)
}
func (e MessageElement) AsReserved() *ReservedNode { return as[*ReservedNode](e.node) }
func (e MessageElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *OptionNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementOption}}
}

func (n *FieldNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementField}}
}

func (n *GroupNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementGroup}}
}

func (n *OneofNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementOneof}}
}

func (n *MessageNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementMessage}}
}

func (n *EnumNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementEnum}}
}

func (n *ExtendNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementExtend}}
}

func (n *ExtensionRangeNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementExtensionRange}}
}

func (n *ReservedNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementReserved}}
}

func (n *EmptyDeclNode) AsMessageElement() MessageElement {
	return MessageElement{element[MessageElementKind]{n, MessageElementEmpty}}
}

func toMessageElement(n Node) MessageElement {
	switch n := n.(type) {
	case *OptionNode:
		return n.AsMessageElement()
	case *FieldNode:
		return n.AsMessageElement()
	case *GroupNode:
		return n.AsMessageElement()
	case *OneofNode:
		return n.AsMessageElement()
	case *MessageNode:
		return n.AsMessageElement()
	case *EnumNode:
		return n.AsMessageElement()
	case *ExtendNode:
		return n.AsMessageElement()
	case *ExtensionRangeNode:
		return n.AsMessageElement()
	case *ReservedNode:
		return n.AsMessageElement()
	case *EmptyDeclNode:
		return n.AsMessageElement()
	}
	panic(illegalElement("message", n))
}

// ExtendElementKind is a kind of declaration that may appear in the body
// of an extend block.
type ExtendElementKind int8

const (
	ExtendElementField ExtendElementKind = iota + 1
	ExtendElementGroup
	ExtendElementEmpty
)

// ExtendElement is any declaration that may appear in the body of an
// extend block.
type ExtendElement struct {
	element[ExtendElementKind]
}

var _ Node = ExtendElement{}

func (e ExtendElement) AsField() *FieldNode { return as[*FieldNode](e.node) }
func (e ExtendElement) AsGroup() *GroupNode { return as[*GroupNode](e.node) }
func (e ExtendElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *FieldNode) AsExtendElement() ExtendElement {
	return ExtendElement{element[ExtendElementKind]{n, ExtendElementField}}
}

func (n *GroupNode) AsExtendElement() ExtendElement {
	return ExtendElement{element[ExtendElementKind]{n, ExtendElementGroup}}
}

func (n *EmptyDeclNode) AsExtendElement() ExtendElement {
	return ExtendElement{element[ExtendElementKind]{n, ExtendElementEmpty}}
}

func toExtendElement(n Node) ExtendElement {
	switch n := n.(type) {
	case *FieldNode:
		return n.AsExtendElement()
	case *GroupNode:
		return n.AsExtendElement()
	case *EmptyDeclNode:
		return n.AsExtendElement()
	}
	panic(illegalElement("extend", n))
}

// OneofElementKind is a kind of declaration that may appear in the body
// of a oneof.
type OneofElementKind int8

const (
	OneofElementOption OneofElementKind = iota + 1
	OneofElementField
	OneofElementGroup
	OneofElementEmpty
)

// OneofElement is any declaration that may appear in the body of a oneof.
type OneofElement struct {
	element[OneofElementKind]
}

var _ Node = OneofElement{}

func (e OneofElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e OneofElement) AsField() *FieldNode { return as[*FieldNode](e.node) }
func (e OneofElement) AsGroup() *GroupNode { return as[*GroupNode](e.node) }
func (e OneofElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *OptionNode) AsOneofElement() OneofElement {
	return OneofElement{element[OneofElementKind]{n, OneofElementOption}}
}

func (n *FieldNode) AsOneofElement() OneofElement {
	return OneofElement{element[OneofElementKind]{n, OneofElementField}}
}

func (n *GroupNode) AsOneofElement() OneofElement {
	return OneofElement{element[OneofElementKind]{n, OneofElementGroup}}
}

func (n *EmptyDeclNode) AsOneofElement() OneofElement {
	return OneofElement{element[OneofElementKind]{n, OneofElementEmpty}}
}

func toOneofElement(n Node) OneofElement {
	switch n := n.(type) {
	case *OptionNode:
		return n.AsOneofElement()
	case *FieldNode:
		return n.AsOneofElement()
	case *GroupNode:
		return n.AsOneofElement()
	case *EmptyDeclNode:
		return n.AsOneofElement()
	}
	panic(illegalElement("oneof", n))
}

// EnumElementKind is a kind of declaration that may appear in the body
// of an enum.
type EnumElementKind int8

const (
	EnumElementOption EnumElementKind = iota + 1
	EnumElementValue
	EnumElementReserved
	EnumElementEmpty
)

// EnumElement is any declaration that may appear in the body of an enum.
type EnumElement struct {
	element[EnumElementKind]
}

var _ Node = EnumElement{}

func (e EnumElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e EnumElement) AsValue() *EnumValueNode { return as[*EnumValueNode](e.node) }
func (e EnumElement) AsReserved() *ReservedNode { return as[*ReservedNode](e.node) }
func (e EnumElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *OptionNode) AsEnumElement() EnumElement {
	return EnumElement{element[EnumElementKind]{n, EnumElementOption}}
}

func (n *EnumValueNode) AsEnumElement() EnumElement {
	return EnumElement{element[EnumElementKind]{n, EnumElementValue}}
}

func (n *ReservedNode) AsEnumElement() EnumElement {
	return EnumElement{element[EnumElementKind]{n, EnumElementReserved}}
}

func (n *EmptyDeclNode) AsEnumElement() EnumElement {
	return EnumElement{element[EnumElementKind]{n, EnumElementEmpty}}
}

func toEnumElement(n Node) EnumElement {
	switch n := n.(type) {
	case *OptionNode:
		return n.AsEnumElement()
	case *EnumValueNode:
		return n.AsEnumElement()
	case *ReservedNode:
		return n.AsEnumElement()
	case *EmptyDeclNode:
		return n.AsEnumElement()
	}
	panic(illegalElement("enum", n))
}

// ServiceElementKind is a kind of declaration that may appear in the body
// of a service.
type ServiceElementKind int8

const (
	ServiceElementOption ServiceElementKind = iota + 1
	ServiceElementRPC
	ServiceElementEmpty
)

// ServiceElement is any declaration that may appear in the body of a
// service.
type ServiceElement struct {
	element[ServiceElementKind]
}

var _ Node = ServiceElement{}

func (e ServiceElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e ServiceElement) AsRPC() *RPCNode { return as[*RPCNode](e.node) }
func (e ServiceElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *OptionNode) AsServiceElement() ServiceElement {
	return ServiceElement{element[ServiceElementKind]{n, ServiceElementOption}}
}

func (n *RPCNode) AsServiceElement() ServiceElement {
	return ServiceElement{element[ServiceElementKind]{n, ServiceElementRPC}}
}

func (n *EmptyDeclNode) AsServiceElement() ServiceElement {
	return ServiceElement{element[ServiceElementKind]{n, ServiceElementEmpty}}
}

func toServiceElement(n Node) ServiceElement {
	switch n := n.(type) {
	case *OptionNode:
		return n.AsServiceElement()
	case *RPCNode:
		return n.AsServiceElement()
	case *EmptyDeclNode:
		return n.AsServiceElement()
	}
	panic(illegalElement("service", n))
}

// MethodElementKind is a kind of declaration that may appear in the body
// of an RPC method.
type MethodElementKind int8

const (
	MethodElementOption MethodElementKind = iota + 1
	MethodElementEmpty
)

// MethodElement is any declaration that may appear in the body of an RPC
// method.
type MethodElement struct {
	element[MethodElementKind]
}

var _ Node = MethodElement{}

func (e MethodElement) AsOption() *OptionNode { return as[*OptionNode](e.node) }
func (e MethodElement) AsEmpty() *EmptyDeclNode { return as[*EmptyDeclNode](e.node) }

func (n *OptionNode) AsMethodElement() MethodElement {
	return MethodElement{element[MethodElementKind]{n, MethodElementOption}}
}

func (n *EmptyDeclNode) AsMethodElement() MethodElement {
	return MethodElement{element[MethodElementKind]{n, MethodElementEmpty}}
}

func toMethodElement(n Node) MethodElement {
	switch n := n.(type) {
	case *OptionNode:
		return n.AsMethodElement()
	case *EmptyDeclNode:
		return n.AsMethodElement()
	}
	panic(illegalElement("method", n))
}

// appendElements appends the wrapped node of each element, rejecting the
// zero value of a family.
func appendElements[E interface{ Node() Node }](children []Node, elems []E) []Node {
	for _, e := range elems {
		n := e.Node()
		if isNil(n) {
			panic("element is nil")
		}
		children = append(children, n)
	}
	return children
}
