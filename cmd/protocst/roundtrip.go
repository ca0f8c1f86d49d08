package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/reporter"
)

func getRoundTripCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip file.proto...",
		Short: "Check that printing the tokens of each file reproduces it exactly",
		Long: `Tokenize each file, print the tokens back with their whitespace and
comments, and compare the result with the file. A unified diff is shown
for every file that does not reproduce. A leading byte order mark is not
part of any token and is ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			names, err := expandArgs(gs.fs, args)
			if err != nil {
				return err
			}
			results, lexErr := gs.tokenize(names)
			if lexErr != nil && !errors.Is(lexErr, reporter.ErrInvalidSource) {
				return lexErr
			}

			okColor := gs.paint(color.FgGreen)
			failColor := gs.paint(color.FgRed, color.Bold)
			var failed int
			for i, res := range results {
				var buf bytes.Buffer
				for _, tok := range res.All() {
					if err := ast.Print(&buf, tok); err != nil {
						return err
					}
				}
				want := res.FileInfo.Data()
				if bytes.Equal(buf.Bytes(), want) {
					okColor.Fprintf(gs.stdout, "ok\t%s\n", names[i])
					continue
				}
				failed++
				failColor.Fprintf(gs.stdout, "FAIL\t%s\n", names[i])
				diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(buf.String()),
					FromFile: names[i],
					ToFile:   names[i] + " (printed)",
					Context:  2,
				})
				if err != nil {
					return err
				}
				fmt.Fprint(gs.stdout, diff)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files did not round trip", failed, len(results))
			}
			return lexErr
		},
	}
}
