// Command protocst inspects protobuf source files at the token level: it
// dumps tokens with their attached comments, checks that tokens print back
// to the exact source, and reports what sits at a position.
package main

import (
	"context"
	"os"
)

func main() {
	gs := newGlobalState(context.Background())
	if err := newRootCommand(gs).Execute(); err != nil {
		gs.logger.Error(err)
		os.Exit(1)
	}
}
