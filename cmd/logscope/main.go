package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mandalnilabja/logscope/internal/storage"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit status.
// Failures are reported on stdout after whatever part of the report was
// already written.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stdout, errorLine(err))
		return 1
	}
	return 0
}

func errorLine(err error) string {
	var serr *storage.Error
	if errors.As(err, &serr) {
		return "❌ SQLite error: " + err.Error()
	}
	return "❌ Error: " + err.Error()
}
