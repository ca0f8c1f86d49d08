package lexer

import (
	"fmt"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal/intern"
)

// Kind classifies a token produced by Tokenize.
type Kind int8

const (
	KindUnknown Kind = iota
	KindIdent
	KindKeyword
	KindInt
	KindFloat
	KindString
	KindPunct
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindKeyword:
		return "keyword"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindPunct:
		return "punct"
	case KindEOF:
		return "eof"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

var keywordTable = &intern.Table{}

// keywords are the identifiers that have a fixed meaning somewhere in the
// protobuf grammar. They may still be used as names, so the lexer does
// not treat them specially.
var keywords = intern.NewSet(keywordTable,
	"syntax", "edition", "import", "weak", "public", "package", "option",
	"true", "false", "inf", "nan", "repeated", "optional", "required",
	"double", "float", "int32", "int64", "uint32", "uint64", "sint32",
	"sint64", "fixed32", "fixed64", "sfixed32", "sfixed64", "bool",
	"string", "bytes", "group", "oneof", "map", "extensions", "to", "max",
	"reserved", "enum", "message", "extend", "service", "rpc", "stream",
	"returns",
)

// IsKeyword reports whether s is an identifier with a meaning of its own
// in the protobuf grammar.
func IsKeyword(s string) bool {
	return keywords.Contains(keywordTable, s)
}

// KindOf classifies a token from a Result.
func KindOf(tok ast.TerminalNode) Kind {
	switch tok := tok.(type) {
	case *ast.IdentNode:
		if IsKeyword(tok.Text()) {
			return KindKeyword
		}
		return KindIdent
	case *ast.UintLiteralNode:
		return KindInt
	case *ast.FloatLiteralNode:
		return KindFloat
	case *ast.StringLiteralNode:
		return KindString
	case *ast.RuneNode:
		if tok.Rune() == 0 && tok.RawText() == "" {
			return KindEOF
		}
		return KindPunct
	default:
		return KindUnknown
	}
}
