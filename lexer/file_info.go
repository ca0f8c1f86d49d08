package lexer

import (
	"sort"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/protocst/ast"
)

// DefaultTabWidth is the tab stop used for column numbers unless
// WithTabWidth says otherwise.
const DefaultTabWidth = 8

// FileInfo contains information about the contents of a source file,
// including the file name and the offset of every line. It converts byte
// offsets into positions.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The offsets for each line in the file. The value is the zero-based byte
	// offset for a given line. The line is given by its index. So the value at
	// index 0 is the offset for the first line (which is always zero). The
	// value at index 1 is the offset at which the second line begins. Etc.
	lines    []int
	tabWidth int
}

// NewFileInfo creates a new instance for the given file. Lines are found
// by scanning contents for newlines.
func NewFileInfo(filename string, contents []byte, tabWidth int) *FileInfo {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	lines := []int{0}
	for i, b := range contents {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &FileInfo{
		name:     filename,
		data:     contents,
		lines:    lines,
		tabWidth: tabWidth,
	}
}

func (f *FileInfo) Name() string {
	return f.name
}

// Data returns the contents of the file, without any byte order mark.
func (f *FileInfo) Data() []byte {
	return f.data
}

// LineCount returns the number of lines in the file. A file that ends with
// a newline has an empty last line.
func (f *FileInfo) LineCount() int {
	return len(f.lines)
}

// SourcePos returns the position of the byte at the given offset. An offset
// equal to the length of the file is the position just past the end.
//
// Columns are 1-based and count grapheme clusters, so a combined character
// or an emoji sequence is a single column. A tab advances the column to the
// next tab stop.
func (f *FileInfo) SourcePos(offset int) ast.SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	col := 0
	rest := string(f.data[f.lines[lineNumber-1]:offset])
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			col += f.tabWidth - (col % f.tabWidth)
		} else {
			col++
		}
	}

	return ast.SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed in this AST
		Col: col + 1,
	}
}

// PosRange returns the range of the bytes from start up to, but not
// including, end.
func (f *FileInfo) PosRange(start, end int) ast.PosRange {
	return ast.PosRange{Start: f.SourcePos(start), End: f.SourcePos(end)}
}

// Offset is the inverse of SourcePos: it returns the byte offset of the
// given 1-based line and column. A column inside a tab or past the end of
// the line is not a valid position.
func (f *FileInfo) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.lines) || col < 1 {
		return 0, false
	}
	start := f.lines[line-1]
	end := len(f.data)
	if line < len(f.lines) {
		end = f.lines[line]
	}

	offset, cur := start, 1
	rest := string(f.data[start:end])
	state := -1
	var cluster string
	for cur < col {
		if len(rest) == 0 || rest == "\n" {
			return 0, false
		}
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		if cluster == "\t" {
			c := cur - 1
			cur += f.tabWidth - (c % f.tabWidth)
			if cur > col {
				return 0, false
			}
		} else {
			cur++
		}
	}
	return offset, true
}
