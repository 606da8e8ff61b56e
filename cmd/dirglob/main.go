// The dirglob command prints the paths matching one or more glob patterns.
//
// Example:
//
//	$ dirglob --sort '**/*_test.go'
//	cmd/dirglob/root_test.go
//	fs_test.go
//	glob_test.go
//	match_test.go
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
