package ast

import (
	"bufio"
	"io"
)

// Print prints the given AST node to the given output. This operation
// basically walks the AST and, for each TerminalNode, prints the node's
// leading comments, leading whitespace, the node's raw text, and then
// any trailing comments. If the given node is a *FileNode, it will then
// also print the file's final whitespace and comments, which are held
// by its end-of-file token.
//
// Printing a tree built from the tokens of a source file reproduces that
// source exactly.
func Print(w io.Writer, node Node) error {
	sw, ok := w.(stringWriter)
	if !ok {
		sw = bufio.NewWriter(w)
	}
	if err := printNode(sw, node); err != nil {
		return err
	}
	if bw, ok := sw.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}

// stringWriter is implemented by bufio.Writer, bytes.Buffer, and
// strings.Builder.
type stringWriter interface {
	io.Writer
	WriteString(string) (int, error)
}

func printNode(w stringWriter, node Node) error {
	switch n := node.(type) {
	case TerminalNode:
		return printTerminal(w, n)
	case CompositeNode:
		for _, ch := range n.Children() {
			if err := printNode(w, ch); err != nil {
				return err
			}
		}
	case interface{ Node() Node }:
		// one of the element families
		return printNode(w, n.Node())
	}
	return nil
}

func printTerminal(w stringWriter, n TerminalNode) error {
	if err := printComments(w, n.LeadingComments()); err != nil {
		return err
	}
	if _, err := w.WriteString(n.LeadingWhitespace()); err != nil {
		return err
	}
	if _, err := w.WriteString(n.RawText()); err != nil {
		return err
	}
	return printComments(w, n.TrailingComments())
}

func printComments(w stringWriter, comments []Comment) error {
	for _, c := range comments {
		if _, err := w.WriteString(c.LeadingWhitespace); err != nil {
			return err
		}
		if _, err := w.WriteString(c.Text); err != nil {
			return err
		}
	}
	return nil
}
