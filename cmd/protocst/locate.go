package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/protocst/lexer"
	"github.com/bufbuild/protocst/reporter"
	"github.com/bufbuild/protocst/walk"
)

func getLocateCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "locate file.proto line:col",
		Short: "Show the token or comment at a position",
		Long: `Show what sits at a 1-based line and column of a file: a token, a
comment together with the token it is attached to, or whitespace.
Columns count characters, with tabs advancing to the next tab stop.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			line, col, err := parseLineCol(args[1])
			if err != nil {
				return err
			}
			// lexical errors are not fatal here, the tokens can still be
			// searched
			all, lexErr := gs.tokenize(args[:1])
			if lexErr != nil && !errors.Is(lexErr, reporter.ErrInvalidSource) {
				return lexErr
			}
			res := all[0]
			offset, ok := res.FileInfo.Offset(line, col)
			if !ok {
				return fmt.Errorf("%s: no position %d:%d", args[0], line, col)
			}

			idx := walk.NewTokenIndex(res.All())
			pos := res.FileInfo.SourcePos(offset)
			switch tok := idx.TerminalAt(offset); {
			case tok != nil:
				rec := lexer.Record(tok)
				fmt.Fprintf(gs.stdout, "%s: %s %q\n", pos, rec.Kind, rec.Text)
			default:
				ref, ok := idx.CommentAt(offset)
				if !ok {
					fmt.Fprintf(gs.stdout, "%s: whitespace\n", pos)
					break
				}
				how := "leading"
				if ref.Trailing {
					how = "trailing"
				}
				owner := lexer.Record(ref.Owner)
				fmt.Fprintf(gs.stdout, "%s: comment %q, %s comment of %s %q at %s\n",
					pos, ref.Comment.Text, how, owner.Kind, owner.Text, owner.Pos)
			}
			return lexErr
		},
	}
}

func parseLineCol(s string) (line, col int, err error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.New("position must be line:col")
	}
	if line, err = strconv.Atoi(l); err != nil {
		return 0, 0, fmt.Errorf("bad line %q: %w", l, err)
	}
	if col, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("bad column %q: %w", c, err)
	}
	return line, col, nil
}
