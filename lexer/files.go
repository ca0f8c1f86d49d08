package lexer

import (
	"context"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/protocst/internal/intern"
	"github.com/bufbuild/protocst/reporter"
)

// TokenizeFiles tokenizes the named files from fsys concurrently. The files
// share one intern table, so equal identifiers in different files share
// storage. Results are in the same order as names.
//
// The first error that aborts the handler, or that comes from reading a
// file, cancels the remaining work and is returned. If errors were only
// reported, all results are returned along with handler.Error().
func TokenizeFiles(ctx context.Context, fsys afero.Fs, names []string, handler *reporter.Handler, opts ...Option) ([]*Result, error) {
	table := &intern.Table{}
	opts = append(opts[:len(opts):len(opts)], WithInternTable(table))

	results := make([]*Result, len(names))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := fsys.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			res, err := Tokenize(name, f, handler, opts...)
			if err != nil && handler.ReporterError() != nil {
				return err
			}
			if res == nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, handler.Error()
}
