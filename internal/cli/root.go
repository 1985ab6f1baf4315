package cli

import (
	"context"
	"os"
)

// Execute builds the command tree, logging at info level to stderr, and
// runs it with ctx.
func Execute(ctx context.Context) error {
	return New(os.Stderr, LogInfo).RootCommand().ExecuteContext(ctx)
}
