package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/protocst/lexer"
	"github.com/bufbuild/protocst/reporter"
)

type fileTokens struct {
	File   string              `yaml:"file"`
	Tokens []lexer.TokenRecord `yaml:"tokens"`
}

func getTokensCmd(gs *globalState) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokens [flags] file.proto...",
		Short: "Print the tokens of each file with their comments",
		Long: `Print every token of each file, including the end of file token, with
its position, decoded value, and the comments attached to it.

Arguments may be doublestar globs, such as "protos/**/*.proto".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = gs.cfg.Format
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			names, err := expandArgs(gs.fs, args)
			if err != nil {
				return err
			}
			results, lexErr := gs.tokenize(names)
			if lexErr != nil && !errors.Is(lexErr, reporter.ErrInvalidSource) {
				return lexErr
			}

			files := make([]fileTokens, len(results))
			for i, res := range results {
				files[i] = fileTokens{File: names[i], Tokens: lexer.Records(res)}
			}
			if format == formatYAML {
				err = writeTokensYAML(gs.stdout, files)
			} else {
				err = gs.writeTokensText(gs.stdout, files)
			}
			if err != nil {
				return err
			}
			return lexErr
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format (yaml|text)")
	return cmd
}

func writeTokensYAML(w io.Writer, files []fileTokens) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(files); err != nil {
		return err
	}
	return enc.Close()
}

func (gs *globalState) writeTokensText(w io.Writer, files []fileTokens) error {
	kindColors := map[string]*color.Color{
		lexer.KindKeyword.String(): gs.paint(color.FgBlue, color.Bold),
		lexer.KindString.String():  gs.paint(color.FgGreen),
		lexer.KindInt.String():     gs.paint(color.FgCyan),
		lexer.KindFloat.String():   gs.paint(color.FgCyan),
	}
	plain := gs.paint()
	commentColor := gs.paint(color.FgHiBlack)
	for _, f := range files {
		for _, rec := range f.Tokens {
			c, ok := kindColors[rec.Kind]
			if !ok {
				c = plain
			}
			if _, err := fmt.Fprintf(w, "%s:%s\t%-7s\t%s", f.File, rec.Pos, rec.Kind, c.Sprintf("%q", rec.Text)); err != nil {
				return err
			}
			if rec.Value != "" && rec.Value != rec.Text {
				fmt.Fprintf(w, "\tvalue=%q", rec.Value)
			}
			for _, cmt := range rec.Leading {
				fmt.Fprintf(w, "\tleading=%s", commentColor.Sprintf("%q", cmt))
			}
			for _, cmt := range rec.Trailing {
				fmt.Fprintf(w, "\ttrailing=%s", commentColor.Sprintf("%q", cmt))
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
