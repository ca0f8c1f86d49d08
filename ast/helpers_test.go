package ast_test

import (
	"strings"

	"github.com/bufbuild/protocst/ast"
)

// source hands out TokenInfo values for a file that is written token by
// token, keeping positions consistent with the text written so far.
type source struct {
	filename string
	text     strings.Builder
	pos      ast.SourcePos
}

func newSource(filename string) *source {
	return &source{
		filename: filename,
		pos:      ast.SourcePos{Filename: filename, Line: 1, Col: 1},
	}
}

func (s *source) advance(text string) {
	s.text.WriteString(text)
	for _, r := range text {
		s.pos.Offset += len(string(r))
		if r == '\n' {
			s.pos.Line++
			s.pos.Col = 1
		} else {
			s.pos.Col++
		}
	}
}

func (s *source) info(ws, raw string, leading ...string) ast.TokenInfo {
	var comments []ast.Comment
	for _, c := range leading {
		cws, text, _ := strings.Cut(c, "|")
		s.advance(cws)
		start := s.pos
		s.advance(text)
		comments = append(comments, ast.Comment{
			PosRange:          ast.PosRange{Start: start, End: s.pos},
			LeadingWhitespace: cws,
			Text:              text,
		})
	}
	s.advance(ws)
	start := s.pos
	s.advance(raw)
	return ast.TokenInfo{
		PosRange:          ast.PosRange{Start: start, End: s.pos},
		RawText:           raw,
		LeadingWhitespace: ws,
		LeadingComments:   comments,
	}
}

func (s *source) rune(ws string, r rune, leading ...string) *ast.RuneNode {
	return ast.NewRuneNode(r, s.info(ws, string(r), leading...))
}

func (s *source) ident(ws, name string, leading ...string) *ast.IdentNode {
	return ast.NewIdentNode(name, s.info(ws, name, leading...))
}

func (s *source) keyword(ws, name string, leading ...string) *ast.KeywordNode {
	return ast.NewKeywordNode(name, s.info(ws, name, leading...))
}

func (s *source) uint(ws, raw string, val uint64) *ast.UintLiteralNode {
	return ast.NewUintLiteralNode(val, s.info(ws, raw))
}

func (s *source) str(ws, val string) *ast.StringLiteralNode {
	return ast.NewStringLiteralNode(val, s.info(ws, `"`+val+`"`))
}

func (s *source) eof(ws string, leading ...string) *ast.RuneNode {
	return ast.NewRuneNode(0, s.info(ws, "", leading...))
}

func (s *source) String() string {
	return s.text.String()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// buildEnum builds
//
//	enum Color { RED = 0; GREEN = -1; }
func buildEnum(s *source) (*ast.EnumNode, *ast.EnumValueNode, *ast.EnumValueNode) {
	kw := s.keyword("", "enum")
	name := s.ident(" ", "Color")
	open := s.rune(" ", '{')
	red := ast.NewEnumValueNode(s.ident(" ", "RED"), s.rune(" ", '='), s.uint(" ", "0", 0), nil, s.rune("", ';'))
	greenName := s.ident(" ", "GREEN")
	eq := s.rune(" ", '=')
	minus := s.rune(" ", '-')
	one := s.uint("", "1", 1)
	green := ast.NewEnumValueNode(greenName, eq, ast.NewNegativeIntLiteralNode(minus, one), nil, s.rune("", ';'))
	closeBrace := s.rune(" ", '}')
	enum := ast.NewEnumNode(kw, name, open, []ast.EnumElement{red.AsEnumElement(), green.AsEnumElement()}, closeBrace)
	return enum, red, green
}
