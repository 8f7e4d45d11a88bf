package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/completion"
	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	LogLevel string
	Line     string   // full command line text
	Cursor   int      // cursor offset within Line
	Tokens   []string // tokens as the calling shell parsed them
	Output   io.Writer
}

// Complete answers a completion request from the calling shell. One
// insert/display pair is printed per line, tab-separated. Completion never
// fails user-visibly: any degraded state just prints nothing.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	if len(params.Tokens) == 0 {
		return nil
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	cfg, _, err := config.LoadActive()
	if err != nil {
		log.Debug().Err(err).Msg("Config load failed, completing with defaults")
		cfg = &config.Config{}
	}

	br := newBridge(cfg, log)
	cache := completion.NewFunctionCache(CachePath())
	if err := cache.Load(); err != nil {
		log.Debug().Err(err).Msg("Completion cache load failed, starting empty")
	}

	resolver := completion.NewResolver(br, cache, log)
	engine := completion.NewEngine(br, resolver, log)

	candidates := engine.Complete(params.Line, params.Tokens, params.Cursor)
	log.Debug().
		Int("tokens", len(params.Tokens)).
		Int("cursor", params.Cursor).
		Int("candidates", len(candidates)).
		Msg("Completion request served")

	for _, cand := range candidates {
		fmt.Fprintf(out, "%s\t%s\n", cand.Insert, cand.Display)
	}
	return nil
}
