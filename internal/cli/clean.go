package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/completion"
	"github.com/wslgate/wslgate/internal/logger"
)

// CleanParams contains parameters for the Clean command
type CleanParams struct {
	LogLevel string
	Output   io.Writer
}

// Clean removes the durable completion-function cache. Resolutions are
// re-queried from the remote environment on the next completion request.
func Clean(params CleanParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	cache := completion.NewFunctionCache(CachePath())
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear completion cache: %w", err)
	}
	log.Debug().Str("path", cache.Path()).Msg("Completion cache cleared")

	out := params.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Completion cache cleared: %s\n", cache.Path())
	return nil
}
