package ast

import "fmt"

// SourcePos identifies a location in a proto source file.
//
// Line and Col are both positive when the location is known. When they are
// zero, only the file is known and String degrades to just the file name.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

// IsKnown reports whether pos has line and column information.
func (pos SourcePos) IsKnown() bool {
	return pos.Line > 0 && pos.Col > 0
}

// UnknownPos is a placeholder position when only the source file
// name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}

// PosRange is a range of positions in a source file. Start is the position of
// the first byte of the range and End is the position just past its last byte.
type PosRange struct {
	Start, End SourcePos
}

// Comment represents a single comment in a source file. It indicates
// the position of the comment and its contents.
//
// Comments are values; once built they are never modified. A comment is
// attached to exactly one terminal node, either as one of its leading
// comments or one of its trailing comments.
type Comment struct {
	PosRange
	// The whitespace between the previous token or comment and this one.
	LeadingWhitespace string
	// The raw text of the comment, including the "//" or "/*" and "*/".
	Text string
}

// IsLineComment reports whether c is a "//" style comment.
func (c Comment) IsLineComment() bool {
	return len(c.Text) >= 2 && c.Text[:2] == "//"
}
