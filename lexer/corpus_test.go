package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/protocst/internal/corpora"
	"github.com/bufbuild/protocst/reporter"
)

func TestCorpus(t *testing.T) {
	t.Parallel()
	corpus := corpora.Corpus{
		Root:      "testdata/corpus",
		Refresh:   "PROTOCST_REFRESH",
		Extension: "proto",
		Outputs: []corpora.Output{
			{Extension: "tokens.yaml", Compare: compareRecords},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var errs []string
			rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
				errs = append(errs, err.Error()+"\n")
				return nil
			}, nil)
			res, err := Tokenize(path, strings.NewReader(text), reporter.NewHandler(rep))
			if len(errs) == 0 {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, reporter.ErrInvalidSource)
			}

			require.Equal(t, text, printTokens(t, res))

			out, err := yaml.Marshal(Records(res))
			require.NoError(t, err)
			return []string{string(out), strings.Join(errs, "")}
		},
	}
	corpus.Run(t)
}

// compareRecords compares token dumps as data, so that golden files may
// use any YAML style.
func compareRecords(got, want string) string {
	var gotRecs, wantRecs []TokenRecord
	if err := yaml.Unmarshal([]byte(got), &gotRecs); err != nil {
		return "invalid output: " + err.Error()
	}
	if err := yaml.Unmarshal([]byte(want), &wantRecs); err != nil {
		return "invalid golden file: " + err.Error()
	}
	if diff := cmp.Diff(wantRecs, gotRecs); diff != "" {
		return corpora.Diff(got, want) + "\n" + diff
	}
	return ""
}
