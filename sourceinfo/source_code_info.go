// Copyright 2020-2022 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sourceinfo computes the source code info of a file descriptor
// from the concrete syntax tree of the file.
//
// Locations, their paths and their spans follow protoc, the reference
// compiler for Protocol Buffers. No options are interpreted, so every
// option is reported as an uninterpreted option.
package sourceinfo

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal"
	"github.com/bufbuild/protocst/internal/seq"
	"github.com/bufbuild/protocst/walk"
)

// GenerateSourceInfo generates source code info for the given tree.
//
// Unless extraComments is set, comments are included only for locations
// that represent complete declarations, as protoc does. With extraComments,
// every location gets the comments attached to its first and last tokens.
// This is still lossy, but preserves far more of the comments in the file.
func GenerateSourceInfo(file *ast.FileNode, extraComments bool) *descriptorpb.SourceCodeInfo {
	if file == nil {
		return nil
	}

	sci := sourceCodeInfo{
		file:          file,
		extraComments: extraComments,
		commentsUsed:  map[int]struct{}{},
		newlineAfter:  newlinesAfterComments(file),
	}
	path := make([]int32, 0, 10)

	sci.newFileLoc()

	if syntax := file.Syntax(); syntax != nil {
		tag := int32(internal.FileSyntaxTag)
		if syntax.IsEdition() {
			tag = internal.FileEditionTag
		}
		sci.newLocWithComments(syntax, append(path, tag))
	}

	var depIndex, pubDepIndex, weakDepIndex, optIndex, msgIndex, enumIndex, extendIndex, svcIndex int32

	for child := range seq.Values(file.Decls()) {
		switch child.Kind() {
		case ast.FileElementImport:
			imp := child.AsImport()
			sci.newLocWithComments(imp, append(path, internal.FileDependencyTag, depIndex))
			depIndex++
			switch {
			case imp.IsPublic():
				sci.newLoc(imp.Modifier(), append(path, internal.FilePublicDependencyTag, pubDepIndex))
				pubDepIndex++
			case imp.IsWeak():
				sci.newLoc(imp.Modifier(), append(path, internal.FileWeakDependencyTag, weakDepIndex))
				weakDepIndex++
			}
		case ast.FileElementPackage:
			sci.newLocWithComments(child.AsPackage(), append(path, internal.FilePackageTag))
		case ast.FileElementOption:
			sci.option(child.AsOption(), &optIndex, append(path, internal.FileOptionsTag))
		case ast.FileElementMessage:
			sci.message(child.AsMessage(), nil, append(path, internal.FileMessagesTag, msgIndex))
			msgIndex++
		case ast.FileElementEnum:
			sci.enum(child.AsEnum(), append(path, internal.FileEnumsTag, enumIndex))
			enumIndex++
		case ast.FileElementExtend:
			sci.extend(child.AsExtend(), &extendIndex, &msgIndex, append(path, internal.FileExtensionsTag), append(dup(path), internal.FileMessagesTag))
		case ast.FileElementService:
			sci.service(child.AsService(), append(path, internal.FileServicesTag, svcIndex))
			svcIndex++
		}
	}

	return &descriptorpb.SourceCodeInfo{Location: sci.locs}
}

// option adds the locations of an option, which is always uninterpreted.
// For a compact option, path is the path of the enclosing options message,
// which has its own location already.
func (sci *sourceCodeInfo) option(n *ast.OptionNode, uninterpIndex *int32, path []int32) {
	if !n.IsCompact() {
		sci.newLocWithoutComments(n, path)
	}

	optPath := append(path, internal.UninterpretedOptionsTag, *uninterpIndex)
	*uninterpIndex++
	sci.newLoc(n, optPath)
	var valTag int32
	switch n.Val().(type) {
	case ast.IdentValueNode, *ast.BoolLiteralNode, *ast.SpecialFloatLiteralNode:
		valTag = internal.UninterpretedIdentTag
	case *ast.NegativeIntLiteralNode:
		valTag = internal.UninterpretedNegIntTag
	case ast.IntValueNode:
		valTag = internal.UninterpretedPosIntTag
	case ast.FloatValueNode:
		valTag = internal.UninterpretedDoubleTag
	case ast.StringValueNode:
		valTag = internal.UninterpretedStringTag
	case *ast.MessageLiteralNode:
		valTag = internal.UninterpretedAggregateTag
	}
	if valTag != 0 {
		sci.newLoc(n.Val(), append(optPath, valTag))
	}
	for j, part := range seq.All(n.Name().Parts()) {
		partPath := append(optPath, internal.UninterpretedNameTag, int32(j))
		sci.newLoc(part, partPath)
		sci.newLoc(part.Name(), append(partPath, internal.UninterpretedNameNameTag))
	}
}

func (sci *sourceCodeInfo) compactOptions(n *ast.CompactOptionsNode, path []int32) {
	if n == nil {
		return
	}
	sci.newLoc(n, path)
	var optIndex int32
	for opt := range seq.Values(n.Options()) {
		sci.option(opt, &optIndex, path)
	}
}

// message adds the locations of a message or of the message a group
// defines. For a group, fieldPath is the path of the group's field.
func (sci *sourceCodeInfo) message(n ast.Node, fieldPath []int32, path []int32) {
	var name *ast.IdentNode
	var body ast.MessageBody
	switch n := n.(type) {
	case *ast.MessageNode:
		name, body = n.Name(), n.Body()
	case *ast.GroupNode:
		name, body = n.Name(), n.Body()
	default:
		panic(fmt.Sprintf("sourceinfo: %T does not define a message", n))
	}
	sci.newBlockLocWithComments(n, body.OpenBrace(), path)

	sci.newLoc(name, append(path, internal.MessageNameTag))
	// protoc emits the type name of a group field right after the name of
	// the group's message
	if fieldPath != nil {
		sci.newLoc(name, append(fieldPath, internal.FieldTypeNameTag))
	}

	var optIndex, fieldIndex, oneofIndex, extendIndex, nestedMsgIndex int32
	var nestedEnumIndex, extRangeIndex, reservedRangeIndex, reservedNameIndex int32
	for child := range seq.Values(body.Decls()) {
		switch child.Kind() {
		case ast.MessageElementOption:
			sci.option(child.AsOption(), &optIndex, append(path, internal.MessageOptionsTag))
		case ast.MessageElementField:
			sci.field(child.AsField(), append(path, internal.MessageFieldsTag, fieldIndex))
			fieldIndex++
		case ast.MessageElementGroup:
			fldPath := append(path, internal.MessageFieldsTag, fieldIndex)
			sci.field(child.AsGroup(), fldPath)
			fieldIndex++
			sci.message(child.AsGroup(), fldPath, append(dup(path), internal.MessageNestedMessagesTag, nestedMsgIndex))
			nestedMsgIndex++
		case ast.MessageElementOneof:
			sci.oneof(child.AsOneof(), &fieldIndex, &nestedMsgIndex,
				append(path, internal.MessageFieldsTag),
				append(dup(path), internal.MessageNestedMessagesTag),
				append(dup(path), internal.MessageOneofsTag, oneofIndex))
			oneofIndex++
		case ast.MessageElementMessage:
			sci.message(child.AsMessage(), nil, append(path, internal.MessageNestedMessagesTag, nestedMsgIndex))
			nestedMsgIndex++
		case ast.MessageElementEnum:
			sci.enum(child.AsEnum(), append(path, internal.MessageEnumsTag, nestedEnumIndex))
			nestedEnumIndex++
		case ast.MessageElementExtend:
			sci.extend(child.AsExtend(), &extendIndex, &nestedMsgIndex, append(path, internal.MessageExtensionsTag), append(dup(path), internal.MessageNestedMessagesTag))
		case ast.MessageElementExtensionRange:
			sci.extensionRanges(child.AsExtensionRange(), &extRangeIndex, append(path, internal.MessageExtensionRangesTag))
		case ast.MessageElementReserved:
			sci.reserved(child.AsReserved(), &reservedNameIndex, &reservedRangeIndex,
				append(path, internal.MessageReservedNamesTag),
				append(dup(path), internal.MessageReservedRangesTag))
		}
	}
}

func (sci *sourceCodeInfo) reserved(n *ast.ReservedNode, nameIndex, rangeIndex *int32, namesPath, rangesPath []int32) {
	if names := n.Names(); names.Len() > 0 {
		sci.newLocWithComments(n, namesPath)
		for rn := range seq.Values(names) {
			sci.newLoc(rn, append(namesPath, *nameIndex))
			*nameIndex++
		}
	}
	if idents := n.Identifiers(); idents.Len() > 0 {
		sci.newLocWithComments(n, namesPath)
		for rn := range seq.Values(idents) {
			sci.newLoc(rn, append(namesPath, *nameIndex))
			*nameIndex++
		}
	}
	if ranges := n.Ranges(); ranges.Len() > 0 {
		sci.newLocWithComments(n, rangesPath)
		for rr := range seq.Values(ranges) {
			sci.rangeBounds(rr, append(rangesPath, *rangeIndex), internal.ReservedRangeStartTag, internal.ReservedRangeEndTag)
			*rangeIndex++
		}
	}
}

// rangeBounds adds the locations of a range and its bounds. A range with
// a single value uses that value for both bounds.
func (sci *sourceCodeInfo) rangeBounds(n *ast.RangeNode, path []int32, startTag, endTag int32) {
	sci.newLoc(n, path)
	sci.newLoc(n.StartVal(), append(path, startTag))
	switch {
	case n.EndVal() != nil:
		sci.newLoc(n.EndVal(), append(path, endTag))
	case n.Max() != nil:
		sci.newLoc(n.Max(), append(path, endTag))
	default:
		sci.newLoc(n.StartVal(), append(path, endTag))
	}
}

func (sci *sourceCodeInfo) enum(n *ast.EnumNode, path []int32) {
	sci.newBlockLocWithComments(n, n.OpenBrace(), path)
	sci.newLoc(n.Name(), append(path, internal.EnumNameTag))

	var optIndex, valIndex, reservedNameIndex, reservedRangeIndex int32
	for child := range seq.Values(n.Decls()) {
		switch child.Kind() {
		case ast.EnumElementOption:
			sci.option(child.AsOption(), &optIndex, append(path, internal.EnumOptionsTag))
		case ast.EnumElementValue:
			sci.enumValue(child.AsValue(), append(path, internal.EnumValuesTag, valIndex))
			valIndex++
		case ast.EnumElementReserved:
			sci.reserved(child.AsReserved(), &reservedNameIndex, &reservedRangeIndex,
				append(path, internal.EnumReservedNamesTag),
				append(dup(path), internal.EnumReservedRangesTag))
		}
	}
}

func (sci *sourceCodeInfo) enumValue(n *ast.EnumValueNode, path []int32) {
	sci.newLocWithComments(n, path)
	sci.newLoc(n.Name(), append(path, internal.EnumValNameTag))
	sci.newLoc(n.Number(), append(path, internal.EnumValNumberTag))
	sci.compactOptions(n.Options(), append(path, internal.EnumValOptionsTag))
}

func (sci *sourceCodeInfo) extend(n *ast.ExtendNode, extendIndex, msgIndex *int32, extendPath, msgPath []int32) {
	sci.newBlockLocWithComments(n, n.OpenBrace(), extendPath)
	for decl := range seq.Values(n.Decls()) {
		switch decl.Kind() {
		case ast.ExtendElementField:
			sci.field(decl.AsField(), append(extendPath, *extendIndex))
			*extendIndex++
		case ast.ExtendElementGroup:
			fldPath := append(extendPath, *extendIndex)
			sci.field(decl.AsGroup(), fldPath)
			*extendIndex++
			sci.message(decl.AsGroup(), fldPath, append(msgPath, *msgIndex))
			*msgIndex++
		}
	}
}

func (sci *sourceCodeInfo) oneof(n *ast.OneofNode, fieldIndex, nestedMsgIndex *int32, fieldPath, nestedMsgPath, oneofPath []int32) {
	sci.newBlockLocWithComments(n, n.OpenBrace(), oneofPath)
	sci.newLoc(n.Name(), append(oneofPath, internal.OneofNameTag))

	var optIndex int32
	for child := range seq.Values(n.Decls()) {
		switch child.Kind() {
		case ast.OneofElementOption:
			sci.option(child.AsOption(), &optIndex, append(oneofPath, internal.OneofOptionsTag))
		case ast.OneofElementField:
			sci.field(child.AsField(), append(fieldPath, *fieldIndex))
			*fieldIndex++
		case ast.OneofElementGroup:
			fldPath := append(fieldPath, *fieldIndex)
			sci.field(child.AsGroup(), fldPath)
			*fieldIndex++
			sci.message(child.AsGroup(), fldPath, append(nestedMsgPath, *nestedMsgIndex))
			*nestedMsgIndex++
		}
	}
}

func (sci *sourceCodeInfo) field(n ast.Node, path []int32) {
	switch n := n.(type) {
	case *ast.GroupNode:
		// comments will appear on the group's message
		sci.newLocWithoutComments(n, path)
		if ext := n.Extendee(); ext != nil {
			sci.newLoc(ext.Extendee(), append(path, internal.FieldExtendeeTag))
		}
		if n.Label() != nil {
			// the label is the first token of the group, so its comments
			// belong to the message too
			sci.newLocWithoutComments(n.Label(), append(path, internal.FieldLabelTag))
		}
		sci.newLoc(n.Keyword(), append(path, internal.FieldTypeTag))
		// let the name comments be attributed to the group name
		sci.newLocWithoutComments(n.Name(), append(path, internal.FieldNameTag))
		sci.newLoc(n.Tag(), append(path, internal.FieldNumberTag))
		sci.compactOptions(n.Options(), append(path, internal.FieldOptionsTag))

	case *ast.FieldNode:
		sci.newLocWithComments(n, path)
		if ext := n.Extendee(); ext != nil {
			sci.newLoc(ext.Extendee(), append(path, internal.FieldExtendeeTag))
		}
		if n.Label() != nil {
			sci.newLoc(n.Label(), append(path, internal.FieldLabelTag))
		}
		sci.newLoc(n.FieldType(), append(path, fieldTypeTag(n.FieldType())))
		sci.newLoc(n.Name(), append(path, internal.FieldNameTag))
		sci.newLoc(n.Tag(), append(path, internal.FieldNumberTag))
		sci.compactOptions(n.Options(), append(path, internal.FieldOptionsTag))

	default:
		panic(fmt.Sprintf("sourceinfo: %T is not a field", n))
	}
}

// fieldTypeTag returns the field of a field descriptor that records the
// given type: type for scalars, type_name for messages and enums.
func fieldTypeTag(typ ast.IdentValueNode) int32 {
	switch typ.AsIdentifier() {
	case "double", "float", "int32", "int64", "uint32", "uint64",
		"sint32", "sint64", "fixed32", "fixed64", "sfixed32", "sfixed64",
		"bool", "string", "bytes":
		return internal.FieldTypeTag
	}
	return internal.FieldTypeNameTag
}

func (sci *sourceCodeInfo) extensionRanges(n *ast.ExtensionRangeNode, extRangeIndex *int32, path []int32) {
	sci.newLocWithComments(n, path)
	startIndex := *extRangeIndex
	for child := range seq.Values(n.Ranges()) {
		sci.rangeBounds(child, append(path, *extRangeIndex), internal.ExtensionRangeStartTag, internal.ExtensionRangeEndTag)
		*extRangeIndex++
	}
	// options for all ranges go after the start and end values
	if n.Options() == nil {
		return
	}
	for i := startIndex; i < *extRangeIndex; i++ {
		sci.compactOptions(n.Options(), append(path, i, internal.ExtensionRangeOptionsTag))
	}
}

func (sci *sourceCodeInfo) service(n *ast.ServiceNode, path []int32) {
	sci.newBlockLocWithComments(n, n.OpenBrace(), path)
	sci.newLoc(n.Name(), append(path, internal.ServiceNameTag))
	var optIndex, rpcIndex int32
	for child := range seq.Values(n.Decls()) {
		switch child.Kind() {
		case ast.ServiceElementOption:
			sci.option(child.AsOption(), &optIndex, append(path, internal.ServiceOptionsTag))
		case ast.ServiceElementRPC:
			sci.method(child.AsRPC(), append(path, internal.ServiceMethodsTag, rpcIndex))
			rpcIndex++
		}
	}
}

func (sci *sourceCodeInfo) method(n *ast.RPCNode, path []int32) {
	if n.HasBody() {
		sci.newBlockLocWithComments(n, n.OpenBrace(), path)
	} else {
		sci.newLocWithComments(n, path)
	}
	sci.newLoc(n.Name(), append(path, internal.MethodNameTag))
	if stream := n.Input().Stream(); stream != nil {
		sci.newLoc(stream, append(path, internal.MethodInputStreamTag))
	}
	sci.newLoc(n.Input().MessageType(), append(path, internal.MethodInputTag))
	if stream := n.Output().Stream(); stream != nil {
		sci.newLoc(stream, append(path, internal.MethodOutputStreamTag))
	}
	sci.newLoc(n.Output().MessageType(), append(path, internal.MethodOutputTag))

	if !n.HasBody() {
		return
	}
	optsPath := append(path, internal.MethodOptionsTag)
	var optIndex int32
	for decl := range seq.Values(n.Decls()) {
		if opt := decl.AsOption(); opt != nil {
			sci.option(opt, &optIndex, optsPath)
		}
	}
}

type sourceCodeInfo struct {
	file          *ast.FileNode
	extraComments bool
	locs          []*descriptorpb.SourceCodeInfo_Location
	// keyed by the offset of the first comment of a group
	commentsUsed map[int]struct{}
	// keyed by comment offset; whether a newline follows the comment
	newlineAfter map[int]bool
}

// newFileLoc adds the location of the whole file. Its span covers the
// tokens of the file, not the whitespace and comments around them.
func (sci *sourceCodeInfo) newFileLoc() {
	var start, end ast.SourcePos
	var first, last ast.TerminalNode
	for tok := range walk.Terminals(sci.file) {
		if tok == sci.file.EOF() {
			break
		}
		if first == nil {
			first = tok
		}
		last = tok
	}
	if first == nil {
		start = ast.SourcePos{Filename: sci.file.Name(), Line: 1, Col: 1}
		end = start
	} else {
		start, end = first.Start(), last.End()
	}
	sci.locs = append(sci.locs, &descriptorpb.SourceCodeInfo_Location{
		Path: []int32{},
		Span: makeSpan(start, end),
	})
}

func (sci *sourceCodeInfo) newLocWithoutComments(n ast.Node, path []int32) {
	sci.locs = append(sci.locs, &descriptorpb.SourceCodeInfo_Location{
		Path: dup(path),
		Span: makeSpan(n.Start(), n.End()),
	})
}

func (sci *sourceCodeInfo) newLoc(n ast.Node, path []int32) {
	if !sci.extraComments {
		sci.newLocWithoutComments(n, path)
		return
	}
	sci.newLocWithGivenComments(n, groupComments(n.LeadingComments()), n.TrailingComments(), path)
}

// newBlockLocWithComments adds the location of a declaration with a body.
// Such declarations use the comments after the open brace as their
// trailing comments. For example:
//
//	message Foo { // this is a trailing comment for a message
//
//	}             // not this
func (sci *sourceCodeInfo) newBlockLocWithComments(n, openBrace ast.Node, path []int32) {
	sci.newLocWithGivenComments(n, groupComments(n.LeadingComments()), openBrace.TrailingComments(), path)
}

func (sci *sourceCodeInfo) newLocWithComments(n ast.Node, path []int32) {
	sci.newLocWithGivenComments(n, groupComments(n.LeadingComments()), n.TrailingComments(), path)
}

func (sci *sourceCodeInfo) newLocWithGivenComments(n ast.Node, leadingComments [][]ast.Comment, trailingComments []ast.Comment, path []int32) {
	if len(leadingComments) > 0 && sci.commentUsed(leadingComments[0]) {
		leadingComments = nil
	}
	if sci.commentUsed(trailingComments) {
		trailingComments = nil
	}

	var trail *string
	if len(trailingComments) > 0 {
		trail = proto.String(sci.combineComments(trailingComments))
	}

	var lead *string
	if len(leadingComments) > 0 {
		lastGroup := leadingComments[len(leadingComments)-1]
		lastComment := lastGroup[len(lastGroup)-1]
		if lastComment.End.Line >= n.Start().Line-1 {
			lead = proto.String(sci.combineComments(lastGroup))
			leadingComments = leadingComments[:len(leadingComments)-1]
		}
	}
	detached := make([]string, len(leadingComments))
	for i := range leadingComments {
		detached[i] = sci.combineComments(leadingComments[i])
	}

	sci.locs = append(sci.locs, &descriptorpb.SourceCodeInfo_Location{
		LeadingDetachedComments: detached,
		LeadingComments:         lead,
		TrailingComments:        trail,
		Path:                    dup(path),
		Span:                    makeSpan(n.Start(), n.End()),
	})
}

func makeSpan(start, end ast.SourcePos) []int32 {
	if start.Line == end.Line {
		return []int32{toInt32(start.Line - 1), toInt32(start.Col - 1), toInt32(end.Col - 1)}
	}
	return []int32{toInt32(start.Line - 1), toInt32(start.Col - 1), toInt32(end.Line - 1), toInt32(end.Col - 1)}
}

func toInt32(v int) int32 {
	i, err := safecast.Conv[int32](v)
	if err != nil {
		panic(fmt.Errorf("source position overflow: %w", err))
	}
	return i
}

// commentUsed records that the group starting with c[0] has been given to a
// location, and reports whether it had been already. Each group is given
// to at most one location.
func (sci *sourceCodeInfo) commentUsed(c []ast.Comment) bool {
	if len(c) == 0 {
		return false
	}
	offset := c[0].Start.Offset
	if _, ok := sci.commentsUsed[offset]; ok {
		return true
	}
	sci.commentsUsed[offset] = struct{}{}
	return false
}

// groupComments splits comments into groups. A group is either a single
// block comment or a run of line comments on consecutive lines.
func groupComments(cmts []ast.Comment) [][]ast.Comment {
	if len(cmts) == 0 {
		return nil
	}
	var groups [][]ast.Comment
	singleLineStyle := cmts[0].IsLineComment()
	line := cmts[0].End.Line
	start := 0
	for i := 1; i < len(cmts); i++ {
		c := cmts[i]
		prevSingleLine := singleLineStyle
		singleLineStyle = c.IsLineComment()
		if !singleLineStyle || prevSingleLine != singleLineStyle || c.Start.Line > line+1 {
			// new group!
			groups = append(groups, cmts[start:i])
			start = i
		}
		line = c.End.Line
	}
	// don't forget last group
	return append(groups, cmts[start:])
}

// newlinesAfterComments records, for every comment in file, whether the
// text that follows it starts with a newline.
func newlinesAfterComments(file *ast.FileNode) map[int]bool {
	result := map[int]bool{}
	var pending []ast.Comment
	settle := func(ws string) {
		for _, c := range pending {
			result[c.Start.Offset] = false
		}
		if len(pending) > 0 {
			result[pending[len(pending)-1].Start.Offset] = strings.HasPrefix(ws, "\n")
		}
		pending = pending[:0]
	}
	addComments := func(cmts []ast.Comment) {
		for _, c := range cmts {
			settle(c.LeadingWhitespace)
			pending = append(pending, c)
		}
	}
	for tok := range walk.Terminals(file) {
		addComments(tok.LeadingComments())
		settle(tok.LeadingWhitespace())
		addComments(tok.TrailingComments())
	}
	settle("")
	return result
}

// combineComments joins a group of comments the way protoc reports them:
// without comment markers, with line comments keeping their newline, and
// with the leading '*' of each line of a block comment removed.
func (sci *sourceCodeInfo) combineComments(comments []ast.Comment) string {
	if len(comments) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, c := range comments {
		txt := c.Text
		if c.IsLineComment() {
			buf.WriteString(txt[2:])
			if sci.newlineAfter[c.Start.Offset] {
				buf.WriteByte('\n')
			}
			continue
		}
		lines := strings.Split(txt[2:len(txt)-2], "\n")
		for i, l := range lines {
			if i > 0 {
				buf.WriteByte('\n')
			}
			// strip a prefix of whitespace followed by '*'
			j := 0
			for j < len(l) && (l[j] == ' ' || l[j] == '\t') {
				j++
			}
			switch {
			case j == len(l):
				l = ""
			case l[j] == '*':
				l = l[j+1:]
			case j > 0:
				l = " " + l[j:]
			}
			buf.WriteString(l)
		}
	}
	return buf.String()
}

func dup(p []int32) []int32 {
	return append(([]int32)(nil), p...)
}
