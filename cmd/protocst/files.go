package main

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/bufbuild/protocst/lexer"
	"github.com/bufbuild/protocst/reporter"
)

// expandArgs expands the doublestar globs among args. Arguments without
// glob syntax are used as they are, so a missing file is reported when it
// is opened.
func expandArgs(fsys afero.Fs, args []string) ([]string, error) {
	var names []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			names = append(names, arg)
			continue
		}
		pattern := filepath.ToSlash(arg)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob %q", arg)
		}
		base, rest := doublestar.SplitPattern(pattern)
		root := fsys
		if base != "." {
			root = afero.NewBasePathFs(fsys, base)
		}
		matches, err := doublestar.Glob(afero.NewIOFS(root), rest, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		slices.Sort(matches)
		for _, m := range matches {
			names = append(names, filepath.FromSlash(path.Join(base, m)))
		}
	}
	return names, nil
}

// tokenize lexes the named files, printing every error to stderr. It
// returns the results along with an error if any file had errors.
func (gs *globalState) tokenize(names []string) ([]*lexer.Result, error) {
	errColor := gs.paint(color.FgRed, color.Bold)
	handler := reporter.NewHandler(reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			errColor.Fprintln(gs.stderr, err.Error())
			return nil
		},
		func(err reporter.ErrorWithPos) {
			gs.logger.Warn(err.Error())
		},
	))
	gs.logger.WithField("files", len(names)).Debug("tokenizing")
	return lexer.TokenizeFiles(gs.ctx, gs.fs, names, handler, lexer.WithTabWidth(gs.cfg.TabWidth))
}
