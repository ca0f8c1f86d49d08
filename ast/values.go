package ast

import (
	"math"
	"strings"

	"github.com/bufbuild/protocst/internal/seq"
)

// ValueNode is an AST node that represents a literal value.
//
// It also includes references (e.g. IdentifierValueNode), which can be
// used as values in some contexts, such as describing the default value
// for a field, which can refer to an enum value.
//
// The concrete kind of value is a property of each node, not of the
// container that holds it: the options in a single bracketed list may each
// have a different kind of value.
type ValueNode interface {
	Node
	// Value returns a Go representation of the value. For scalars, this
	// will be a string, int64, uint64, float64, or bool. This could also
	// be an Identifier (e.g. IdentValueNodes). It can also be a composite
	// literal:
	//   * For array literals, the type returned will be []V, where V is the
	//     array's element type.
	//   * For message literals, the type returned will be []*MessageFieldNode.
	//
	// For a *RuneNode, this is the rune.
	Value() any
}

var _ ValueNode = (*IdentNode)(nil)
var _ ValueNode = (*CompoundIdentNode)(nil)
var _ ValueNode = (*StringLiteralNode)(nil)
var _ ValueNode = (*CompoundStringLiteralNode)(nil)
var _ ValueNode = (*UintLiteralNode)(nil)
var _ ValueNode = (*PositiveUintLiteralNode)(nil)
var _ ValueNode = (*NegativeIntLiteralNode)(nil)
var _ ValueNode = (*FloatLiteralNode)(nil)
var _ ValueNode = (*SpecialFloatLiteralNode)(nil)
var _ ValueNode = (*SignedFloatLiteralNode)(nil)
var _ ValueNode = (*BoolLiteralNode)(nil)
var _ ValueNode = (*ArrayLiteralNode[ValueNode])(nil)
var _ ValueNode = (*MessageLiteralNode)(nil)
var _ ValueNode = (*RuneNode)(nil)

// StringValueNode is an AST node that represents a string literal.
// Such a node can be a single literal (*StringLiteralNode) or a
// concatenation of multiple literals (*CompoundStringLiteralNode).
type StringValueNode interface {
	ValueNode
	AsString() string
}

var _ StringValueNode = (*StringLiteralNode)(nil)
var _ StringValueNode = (*CompoundStringLiteralNode)(nil)

// StringLiteralNode represents a simple string literal. Example:
//
//	"proto2"
type StringLiteralNode struct {
	terminalNode
	val string
}

// NewStringLiteralNode creates a new *StringLiteralNode with the given val.
// The val is the decoded string; the token's raw text, quotes and escapes
// included, comes from info.
func NewStringLiteralNode(val string, info TokenInfo) *StringLiteralNode {
	return &StringLiteralNode{
		terminalNode: newTerminalNode(info),
		val:          val,
	}
}

func (n *StringLiteralNode) Value() any {
	return n.AsString()
}

func (n *StringLiteralNode) AsString() string {
	return n.val
}

// CompoundStringLiteralNode represents a compound string literal, which is
// the concatenaton of adjacent string literals. Example:
//
//	"this "  "is"   " all one "   "string"
type CompoundStringLiteralNode struct {
	compositeNode
	val string
}

// NewCompoundLiteralStringNode creates a new *CompoundStringLiteralNode that
// consists of the given string components. The components argument must not
// be empty.
func NewCompoundLiteralStringNode(components ...*StringLiteralNode) (*CompoundStringLiteralNode, error) {
	if len(components) == 0 {
		return nil, constructionErrorf("compound string literal", ErrNoComponents, "")
	}
	children := make([]Node, len(components))
	var b strings.Builder
	for i, comp := range components {
		if comp == nil {
			panic("component is nil")
		}
		children[i] = comp
		b.WriteString(comp.val)
	}
	return &CompoundStringLiteralNode{
		compositeNode: compositeNode{
			children: children,
		},
		val: b.String(),
	}, nil
}

// Components returns the adjacent literals that make up this string.
func (n *CompoundStringLiteralNode) Components() seq.Indexer[*StringLiteralNode] {
	return seq.NewSlice(n.children, func(_ int, c Node) *StringLiteralNode {
		return c.(*StringLiteralNode)
	})
}

func (n *CompoundStringLiteralNode) Value() any {
	return n.AsString()
}

func (n *CompoundStringLiteralNode) AsString() string {
	return n.val
}

// IntValueNode is an AST node that represents an integer literal. If
// an integer literal is too large for an int64 (or uint64 for
// positive literals), it is represented instead by a FloatValueNode.
//
// Whether a literal is consumed as a signed or an unsigned number is only
// known where it is used (an enum value number vs. a field tag), so both
// views are offered. The boolean result is false when the literal does not
// fit the requested view.
type IntValueNode interface {
	ValueNode
	AsInt64() (int64, bool)
	AsUint64() (uint64, bool)
}

// AsInt32 range checks the given int value and returns its value is
// in the range or 0, false if it is outside the range.
func AsInt32(n IntValueNode, minVal, maxVal int32) (int32, bool) {
	i, ok := n.AsInt64()
	if !ok {
		return 0, false
	}
	if i < int64(minVal) || i > int64(maxVal) {
		return 0, false
	}
	return int32(i), true
}

var _ IntValueNode = (*UintLiteralNode)(nil)
var _ IntValueNode = (*PositiveUintLiteralNode)(nil)
var _ IntValueNode = (*NegativeIntLiteralNode)(nil)

// UintLiteralNode represents a simple integer literal with no sign character.
type UintLiteralNode struct {
	terminalNode
	val uint64
}

// NewUintLiteralNode creates a new *UintLiteralNode with the given val.
func NewUintLiteralNode(val uint64, info TokenInfo) *UintLiteralNode {
	return &UintLiteralNode{
		terminalNode: newTerminalNode(info),
		val:          val,
	}
}

func (n *UintLiteralNode) Value() any {
	return n.val
}

func (n *UintLiteralNode) AsInt64() (int64, bool) {
	return uintAsInt64(n.val)
}

func (n *UintLiteralNode) AsUint64() (uint64, bool) {
	return n.val, true
}

func (n *UintLiteralNode) AsFloat() float64 {
	return float64(n.val)
}

func uintAsInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// PositiveUintLiteralNode represents an integer literal with a positive (+) sign.
type PositiveUintLiteralNode struct {
	compositeNode
}

// NewPositiveUintLiteralNode creates a new *PositiveUintLiteralNode. Both
// arguments must be non-nil and sign must be '+'.
func NewPositiveUintLiteralNode(sign *RuneNode, i *UintLiteralNode) *PositiveUintLiteralNode {
	if sign == nil {
		panic("sign is nil")
	}
	if i == nil {
		panic("i is nil")
	}
	if sign.r != '+' {
		panic("sign must be '+'")
	}
	return &PositiveUintLiteralNode{
		compositeNode: compositeNode{
			children: []Node{sign, i},
		},
	}
}

func (n *PositiveUintLiteralNode) Plus() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *PositiveUintLiteralNode) Uint() *UintLiteralNode {
	return child[*UintLiteralNode](&n.compositeNode, 1)
}

func (n *PositiveUintLiteralNode) Value() any {
	return n.Uint().val
}

func (n *PositiveUintLiteralNode) AsInt64() (int64, bool) {
	return uintAsInt64(n.Uint().val)
}

func (n *PositiveUintLiteralNode) AsUint64() (uint64, bool) {
	return n.Uint().val, true
}

// NegativeIntLiteralNode represents an integer literal with a negative (-) sign.
type NegativeIntLiteralNode struct {
	compositeNode
	val int64
	ok  bool
}

// NewNegativeIntLiteralNode creates a new *NegativeIntLiteralNode. Both
// arguments must be non-nil and sign must be '-'.
func NewNegativeIntLiteralNode(sign *RuneNode, i *UintLiteralNode) *NegativeIntLiteralNode {
	if sign == nil {
		panic("sign is nil")
	}
	if i == nil {
		panic("i is nil")
	}
	if sign.r != '-' {
		panic("sign must be '-'")
	}
	n := &NegativeIntLiteralNode{
		compositeNode: compositeNode{
			children: []Node{sign, i},
		},
	}
	switch mag := i.val; {
	case mag <= math.MaxInt64:
		n.val, n.ok = -int64(mag), true
	case mag == math.MaxInt64+1:
		n.val, n.ok = math.MinInt64, true
	}
	return n
}

func (n *NegativeIntLiteralNode) Minus() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *NegativeIntLiteralNode) Uint() *UintLiteralNode {
	return child[*UintLiteralNode](&n.compositeNode, 1)
}

// Value returns the literal as an int64. A literal whose magnitude is
// larger than 2^63 cannot be represented and yields 0.
func (n *NegativeIntLiteralNode) Value() any {
	return n.val
}

func (n *NegativeIntLiteralNode) AsInt64() (int64, bool) {
	return n.val, n.ok
}

func (n *NegativeIntLiteralNode) AsUint64() (uint64, bool) {
	if n.Uint().val > 0 {
		return 0, false
	}
	return 0, true
}

// FloatValueNode is an AST node that represents a numeric literal with
// a floating point, in scientific notation, or too large to fit in an
// int64 or uint64.
type FloatValueNode interface {
	ValueNode
	AsFloat() float64
}

var _ FloatValueNode = (*FloatLiteralNode)(nil)
var _ FloatValueNode = (*SpecialFloatLiteralNode)(nil)
var _ FloatValueNode = (*SignedFloatLiteralNode)(nil)
var _ FloatValueNode = (*UintLiteralNode)(nil)

// FloatLiteralNode represents a floating point numeric literal.
type FloatLiteralNode struct {
	terminalNode
	val float64
}

// NewFloatLiteralNode creates a new *FloatLiteralNode with the given val.
func NewFloatLiteralNode(val float64, info TokenInfo) *FloatLiteralNode {
	return &FloatLiteralNode{
		terminalNode: newTerminalNode(info),
		val:          val,
	}
}

func (n *FloatLiteralNode) Value() any {
	return n.AsFloat()
}

func (n *FloatLiteralNode) AsFloat() float64 {
	return n.val
}

// SpecialFloatLiteralNode represents a special floating point numeric literal
// for "inf" and "nan" values.
//
// Which keywords are accepted is up to the parser. The keyword "inf" means
// positive infinity and every other keyword means NaN.
type SpecialFloatLiteralNode struct {
	*KeywordNode
	val float64
}

// NewSpecialFloatLiteralNode returns a new floating point literal node
// which represents the given keyword. The given keyword should be "inf",
// "infinity", or "nan" in any case.
func NewSpecialFloatLiteralNode(name *KeywordNode) *SpecialFloatLiteralNode {
	if name == nil {
		panic("name is nil")
	}
	var f float64
	if name.val == "inf" {
		f = math.Inf(1)
	} else {
		f = math.NaN()
	}
	return &SpecialFloatLiteralNode{
		KeywordNode: name,
		val:         f,
	}
}

func (n *SpecialFloatLiteralNode) Value() any {
	return n.AsFloat()
}

func (n *SpecialFloatLiteralNode) AsFloat() float64 {
	return n.val
}

// SignedFloatLiteralNode represents a signed floating point number.
type SignedFloatLiteralNode struct {
	compositeNode
	val float64
}

// NewSignedFloatLiteralNode creates a new *SignedFloatLiteralNode. Both
// arguments must be non-nil.
func NewSignedFloatLiteralNode(sign *RuneNode, f FloatValueNode) *SignedFloatLiteralNode {
	if sign == nil {
		panic("sign is nil")
	}
	if isNil(f) {
		panic("f is nil")
	}
	val := f.AsFloat()
	if sign.r == '-' {
		val = -val
	}
	return &SignedFloatLiteralNode{
		compositeNode: compositeNode{
			children: []Node{sign, f},
		},
		val: val,
	}
}

func (n *SignedFloatLiteralNode) Sign() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *SignedFloatLiteralNode) Float() FloatValueNode {
	return child[FloatValueNode](&n.compositeNode, 1)
}

func (n *SignedFloatLiteralNode) Value() any {
	return n.AsFloat()
}

func (n *SignedFloatLiteralNode) AsFloat() float64 {
	return n.val
}

// BoolLiteralNode represents a boolean literal.
type BoolLiteralNode struct {
	*KeywordNode
	val bool
}

// NewBoolLiteralNode returns a new BoolLiteralNode for the given keyword,
// which must be "true" or "false".
func NewBoolLiteralNode(name *KeywordNode) *BoolLiteralNode {
	if name == nil {
		panic("name is nil")
	}
	return &BoolLiteralNode{
		KeywordNode: name,
		val:         name.val == "true",
	}
}

func (n *BoolLiteralNode) Value() any {
	return n.val
}

// ArrayLiteralNode represents an array literal, which is only allowed inside of
// a MessageLiteralNode, to indicate values for a repeated field. Example:
//
//	["foo", "bar", "baz"]
//
// The type parameter is the kind of the elements. Use ValueNode for an
// array whose elements may be of different kinds.
type ArrayLiteralNode[V ValueNode] struct {
	compositeNode
	elems []int
}

// NewArrayLiteralNode creates a new *ArrayLiteralNode. The openBracket and
// closeBracket args must be non-nil and represent the "[" and "]" runes
// that surround the array values. The given commas arg must have a length
// that is one less than the length of the vals arg. However, vals may be
// empty, in which case commas must also be empty.
func NewArrayLiteralNode[V ValueNode](openBracket *RuneNode, vals []V, commas []*RuneNode, closeBracket *RuneNode) (*ArrayLiteralNode[V], error) {
	if openBracket == nil {
		panic("openBracket is nil")
	}
	if closeBracket == nil {
		panic("closeBracket is nil")
	}
	if err := checkSeparators("array literal", len(vals), len(commas)); err != nil {
		return nil, err
	}
	n := &ArrayLiteralNode[V]{}
	children := make([]Node, 0, len(vals)*2+1)
	children = append(children, openBracket)
	children, n.elems = appendList(children, vals, commas)
	n.children = append(children, closeBracket)
	return n, nil
}

func (n *ArrayLiteralNode[V]) OpenBracket() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *ArrayLiteralNode[V]) CloseBracket() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

// Elements returns the values in the array, in order.
func (n *ArrayLiteralNode[V]) Elements() seq.Indexer[V] {
	return listView[V](&n.compositeNode, n.elems)
}

func (n *ArrayLiteralNode[V]) Commas() seq.Indexer[*RuneNode] {
	return sepView(&n.compositeNode, n.elems)
}

// Value returns the elements as a []V.
func (n *ArrayLiteralNode[V]) Value() any {
	return seq.ToSlice(n.Elements())
}

// MessageLiteralNode represents a message literal, which is compatible with the
// protobuf text format and can be used for custom options with message types.
// Example:
//
//	{ foo:1 foo:2 foo:3 bar:<name:"abc" id:123> }
type MessageLiteralNode struct {
	compositeNode
	fields []int
	seps   []int
}

// NewMessageLiteralNode creates a new *MessageLiteralNode. The openSym and
// closeSym runes must not be nil and should be "{" and "}" or "<" and ">".
//
// Unlike separators (dots and commas) used for other AST nodes that represent
// a list of elements, the seps arg must be the SAME length as vals, and it may
// contain nil values to indicate absence of a separator (in fact, it could be
// all nils). A nil seps slice means no field has a separator.
func NewMessageLiteralNode(openSym *RuneNode, vals []*MessageFieldNode, seps []*RuneNode, closeSym *RuneNode) (*MessageLiteralNode, error) {
	if openSym == nil {
		panic("openSym is nil")
	}
	if closeSym == nil {
		panic("closeSym is nil")
	}
	if seps == nil {
		seps = make([]*RuneNode, len(vals))
	}
	if len(seps) != len(vals) {
		return nil, constructionErrorf("message literal", ErrMismatchedSeparators,
			"%d fields need %d optional separators, got %d", len(vals), len(vals), len(seps))
	}
	n := &MessageLiteralNode{
		fields: make([]int, len(vals)),
		seps:   make([]int, len(vals)),
	}
	children := make([]Node, 0, len(vals)*2+2)
	children = append(children, openSym)
	for i, val := range vals {
		if val == nil {
			panic("field is nil")
		}
		n.fields[i] = len(children)
		children = append(children, val)
		n.seps[i] = -1
		if seps[i] != nil {
			n.seps[i] = len(children)
			children = append(children, seps[i])
		}
	}
	children = append(children, closeSym)
	n.children = children
	return n, nil
}

func (n *MessageLiteralNode) Open() *RuneNode {
	return child[*RuneNode](&n.compositeNode, 0)
}

func (n *MessageLiteralNode) Close() *RuneNode {
	return child[*RuneNode](&n.compositeNode, len(n.children)-1)
}

func (n *MessageLiteralNode) Elements() seq.Indexer[*MessageFieldNode] {
	return seq.NewSlice(n.fields, func(_ int, i int) *MessageFieldNode {
		return child[*MessageFieldNode](&n.compositeNode, i)
	})
}

// Seps returns the separator following each field, which is nil for a
// field with no separator.
func (n *MessageLiteralNode) Seps() seq.Indexer[*RuneNode] {
	return seq.NewSlice(n.seps, func(_ int, i int) *RuneNode {
		return child[*RuneNode](&n.compositeNode, i)
	})
}

// Value returns the fields as a []*MessageFieldNode.
func (n *MessageLiteralNode) Value() any {
	return seq.ToSlice(n.Elements())
}

// MessageFieldNode represents a single field (name and value) inside of a
// message literal. Example:
//
//	foo:"bar"
type MessageFieldNode struct {
	compositeNode
	sep int
}

// NewMessageFieldNode creates a new *MessageFieldNode. All args except sep
// must be non-nil. The sep, a ':' rune, may be omitted when the value is
// itself a message literal.
func NewMessageFieldNode(name *FieldReferenceNode, sep *RuneNode, val ValueNode) *MessageFieldNode {
	if name == nil {
		panic("name is nil")
	}
	if isNil(val) {
		panic("val is nil")
	}
	n := &MessageFieldNode{sep: -1}
	children := make([]Node, 0, 3)
	children = append(children, name)
	if sep != nil {
		n.sep = len(children)
		children = append(children, sep)
	}
	children = append(children, val)
	n.children = children
	return n
}

func (n *MessageFieldNode) Name() *FieldReferenceNode {
	return child[*FieldReferenceNode](&n.compositeNode, 0)
}

// Sep returns the ':' separator, or nil if the field has none.
func (n *MessageFieldNode) Sep() *RuneNode {
	return child[*RuneNode](&n.compositeNode, n.sep)
}

func (n *MessageFieldNode) Val() ValueNode {
	return child[ValueNode](&n.compositeNode, len(n.children)-1)
}

func checkSeparators(node string, elems, seps int) error {
	want := max(elems-1, 0)
	if seps != want {
		return constructionErrorf(node, ErrMismatchedSeparators,
			"%d elements need %d separators, got %d", elems, want, seps)
	}
	return nil
}
