// Package lexer turns protobuf source into the terminal nodes of a
// concrete syntax tree.
//
// The lexer never decides what a token means in the grammar. Keywords are
// produced as identifiers, and signs are produced as runes, so a parser can
// combine them into the nodes of the ast package. Every byte of the input
// belongs to exactly one token, comment or run of whitespace, and comments
// are attributed to the tokens they belong to before a Result is returned.
package lexer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal/intern"
	"github.com/bufbuild/protocst/reporter"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Result is the output of tokenizing one file.
type Result struct {
	// FileInfo converts offsets in the file into positions.
	FileInfo *FileInfo

	tokens []ast.TerminalNode
	eof    *ast.RuneNode
}

// Tokens returns the tokens of the file in order, excluding EOF.
func (r *Result) Tokens() []ast.TerminalNode {
	return r.tokens
}

// EOF returns the end-of-file token. It holds the whitespace and comments
// after the last token.
func (r *Result) EOF() *ast.RuneNode {
	return r.eof
}

// All returns the tokens followed by the EOF token.
func (r *Result) All() []ast.TerminalNode {
	all := make([]ast.TerminalNode, 0, len(r.tokens)+1)
	all = append(all, r.tokens...)
	return append(all, r.eof)
}

// Option configures Tokenize.
type Option func(*options)

type options struct {
	tabWidth int
	table    *intern.Table
}

// WithTabWidth sets the tab stop used to compute column numbers.
func WithTabWidth(width int) Option {
	return func(o *options) {
		o.tabWidth = width
	}
}

// WithInternTable makes the lexer store identifier text in the given
// table. Lexers for different files may share a table.
func WithInternTable(table *intern.Table) Option {
	return func(o *options) {
		o.table = table
	}
}

// Tokenize reads all of r and splits it into tokens. A leading UTF-8 byte
// order mark is dropped; positions are relative to the data after it.
//
// Lexical errors are sent to handler. If the handler aborts, Tokenize
// returns its error and no result. Otherwise malformed literals still
// become tokens, holding zero values, so the result always covers the
// whole input, and the error is handler.Error().
func Tokenize(filename string, r io.Reader, handler *reporter.Handler, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = &intern.Table{}
	}

	br := bufio.NewReader(r)
	// if file has UTF8 byte order marker preface, consume it
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}
	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}

	l := &lexer{
		info:     NewFileInfo(filename, contents, o.tabWidth),
		data:     contents,
		handler:  handler,
		table:    o.table,
		attacher: ast.NewCommentAttacher(),
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return &Result{
		FileInfo: l.info,
		tokens:   l.tokens,
		eof:      l.eof,
	}, handler.Error()
}

type lexer struct {
	info     *FileInfo
	data     []byte
	handler  *reporter.Handler
	table    *intern.Table
	attacher *ast.CommentAttacher

	// pos is the offset of the next byte to read. wsStart is where the
	// pending whitespace begins: the end of the last token or comment.
	pos      int
	wsStart  int
	comments []ast.Comment

	tokens []ast.TerminalNode
	eof    *ast.RuneNode
}

func (l *lexer) run() error {
	for {
		if err := l.handler.ReporterError(); err != nil {
			// if error reporter already returned non-nil error,
			// we can skip the rest of the input
			return err
		}
		if l.pos == len(l.data) {
			l.eof = ast.NewRuneNode(0, l.tokenInfo(l.pos))
			l.attribute(l.eof)
			l.attacher.Finish()
			return nil
		}

		start := l.pos
		c, sz := utf8.DecodeRune(l.data[l.pos:])
		if c == utf8.RuneError && sz <= 1 {
			l.pos++
			l.addError(start, fmt.Errorf("invalid UTF-8 at offset %d: %x", start, l.data[start]))
			l.emit(ast.NewRuneNode(utf8.RuneError, l.tokenInfo(start)))
			continue
		}
		l.pos += sz

		switch {
		case strings.ContainsRune("\n\r\t\f\v ", c):
			// whitespace accumulates until the next comment or token
			continue

		case c == '.' && l.pos < len(l.data) && isDigit(l.data[l.pos]):
			// decimal literals could start with a dot
			l.readNumber()
			l.emitFloat(start)

		case c == '_' || isLetter(c):
			l.readIdentifier()
			text := l.table.Canonical(string(l.data[start:l.pos]))
			l.emit(ast.NewIdentNode(text, l.tokenInfo(start)))

		case c >= '0' && c <= '9':
			l.readNumber()
			l.emitNumber(start)

		case c == '\'' || c == '"':
			l.pos = start
			n, ok := scanString(l.data[start:])
			l.pos += n
			var val string
			switch {
			case !ok && l.pos == len(l.data):
				l.addError(start, errors.New("unexpected EOF in string literal"))
			case !ok:
				l.addError(start, errors.New("encountered end-of-line before end of string literal"))
			default:
				var err error
				val, err = unquote(string(l.data[start+1 : l.pos-1]))
				if err != nil {
					l.addError(start, err)
				}
			}
			l.emit(ast.NewStringLiteralNode(val, l.tokenInfo(start)))

		case c == '/' && l.pos < len(l.data) && l.data[l.pos] == '/':
			l.skipToEndOfLineComment()
			l.addComment(start)

		case c == '/' && l.pos < len(l.data) && l.data[l.pos] == '*':
			l.pos++
			if ok := l.skipToEndOfBlockComment(); !ok {
				l.addError(start, errors.New("block comment never terminates, unexpected EOF"))
			}
			l.addComment(start)

		default:
			if c > 127 || c == 0 {
				l.addError(start, fmt.Errorf("invalid character %q", c))
			}
			l.emit(ast.NewRuneNode(c, l.tokenInfo(start)))
		}
	}
}

// tokenInfo describes the token that starts at start and ends at the
// current position, taking the pending whitespace and comments with it.
func (l *lexer) tokenInfo(start int) ast.TokenInfo {
	info := ast.TokenInfo{
		PosRange:          l.info.PosRange(start, l.pos),
		RawText:           string(l.data[start:l.pos]),
		LeadingWhitespace: string(l.data[l.wsStart:start]),
		LeadingComments:   l.comments,
	}
	l.comments = nil
	l.wsStart = l.pos
	return info
}

func (l *lexer) addComment(start int) {
	l.comments = append(l.comments, ast.Comment{
		PosRange:          l.info.PosRange(start, l.pos),
		LeadingWhitespace: string(l.data[l.wsStart:start]),
		Text:              string(l.data[start:l.pos]),
	})
	l.wsStart = l.pos
}

func (l *lexer) emit(tok ast.TerminalNode) {
	l.attribute(tok)
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) attribute(tok ast.TerminalNode) {
	l.attacher.Add(tok)
	if len(l.tokens) > 0 {
		l.attacher.Attribute(l.tokens[len(l.tokens)-1], tok)
	}
}

func (l *lexer) emitFloat(start int) {
	token := string(l.data[start:l.pos])
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		l.addError(start, numError(err, "float", token))
	}
	l.emit(ast.NewFloatLiteralNode(f, l.tokenInfo(start)))
}

func (l *lexer) emitNumber(start int) {
	token := string(l.data[start:l.pos])
	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		// hexadecimal
		ui, err := strconv.ParseUint(token[2:], 16, 64)
		if err != nil {
			l.addError(start, numError(err, "hexadecimal integer", token[2:]))
		}
		l.emit(ast.NewUintLiteralNode(ui, l.tokenInfo(start)))
		return
	}
	if strings.ContainsAny(token, ".eE") {
		l.emitFloat(start)
		return
	}
	// integer! (decimal or octal)
	ui, err := strconv.ParseUint(token, 0, 64)
	if err != nil {
		kind := "integer"
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			// if it's too big to be an int, parse it as a float
			kind = "float"
			var f float64
			if f, err = strconv.ParseFloat(token, 64); err == nil {
				l.emit(ast.NewFloatLiteralNode(f, l.tokenInfo(start)))
				return
			}
		}
		l.addError(start, numError(err, kind, token))
	}
	l.emit(ast.NewUintLiteralNode(ui, l.tokenInfo(start)))
}

func (l *lexer) readNumber() {
	allowExpSign := false
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if (c == '-' || c == '+') && !allowExpSign {
			break
		}
		allowExpSign = false
		if c != '.' && c != '_' && !isDigit(c) && !isLetter(rune(c)) && c != '-' && c != '+' {
			// no more chars in the number token
			break
		}
		if c == 'e' || c == 'E' {
			// scientific notation char can be followed by
			// an exponent sign
			allowExpSign = true
		}
		l.pos++
	}
}

func numError(err error, kind, s string) error {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return err
	}
	if ne.Err == strconv.ErrRange {
		return fmt.Errorf("value out of range for %s: %s", kind, s)
	}
	// syntax error
	return fmt.Errorf("invalid syntax in %s value: %s", kind, s)
}

func (l *lexer) readIdentifier() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c != '_' && !isLetter(rune(c)) && !isDigit(c) {
			break
		}
		l.pos++
	}
}

// skipToEndOfLineComment stops before the newline, which belongs to the
// whitespace after the comment.
func (l *lexer) skipToEndOfLineComment() {
	if i := bytes.IndexByte(l.data[l.pos:], '\n'); i >= 0 {
		l.pos += i
	} else {
		l.pos = len(l.data)
	}
}

func (l *lexer) skipToEndOfBlockComment() bool {
	if i := bytes.Index(l.data[l.pos:], []byte("*/")); i >= 0 {
		l.pos += i + 2
		return true
	}
	l.pos = len(l.data)
	return false
}

func (l *lexer) addError(offset int, err error) {
	_ = l.handler.HandleError(reporter.Error(l.info.SourcePos(offset), err))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
