// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs table driven tests whose table lives in the file
// system: each input file is a test case, and the expected outputs sit
// next to it as golden files.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/bufbuild/protocst/internal"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root is the directory holding the test cases, relative to the file
	// that calls [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a glob. Test cases whose
	// names match it have their golden files rewritten instead of checked.
	Refresh string

	// Extension is the file extension, without the dot, of test case inputs,
	// e.g. "proto".
	Extension string

	// Outputs are the golden files of each test case. A missing golden file
	// is treated as empty.
	Outputs []Output

	// Test runs one test case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output describes one golden file of a test case.
type Output struct {
	// Extension is appended to the test case's file name to find the golden
	// file, so for "foo.proto" and "tokens.yaml" it is "foo.proto.tokens.yaml".
	Extension string

	// Compare compares the output with the golden file. Nil compares them
	// byte for byte.
	Compare Compare
}

// Compare compares got with want and returns a description of the
// difference, or "" if they match.
type Compare func(got, want string) string

// Run executes every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	testDir := internal.CallerDir(1)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	tests, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no *.%s files under %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, rel := range tests {
		t.Run(rel, func(t *testing.T) {
			path := filepath.Join(root, filepath.FromSlash(rel))
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			results := c.Test(t, rel, string(bytes))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshing := refresh != "" && doublestar.MatchUnvalidated(refresh, rel)
			for i, output := range c.Outputs {
				golden := path + "." + output.Extension
				if refreshing {
					if err := writeGolden(golden, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", golden, err)
					continue
				}
				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, diff)
				}
			}
		})
	}
}

func writeGolden(path, content string) error {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error while deleting output file %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("error while writing output file %q: %w", path, err)
	}
	return nil
}

var (
	added   = color.New(color.FgHiGreen, color.Bold)
	removed = color.New(color.FgHiRed, color.Bold)
)

// Diff returns a colorized unified diff from want to got, or "" if they
// are equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = added.Sprint(s)
		case strings.HasPrefix(s, "-"):
			lines[i] = removed.Sprint(s)
		}
	}
	return strings.Join(lines, "\n")
}

func defaultCompare(got, want string) string {
	return Diff(got, want)
}
