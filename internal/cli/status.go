package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/completion"
	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
	"github.com/wslgate/wslgate/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	LogLevel string
	Format   string // "text" or "yaml"
	Output   io.Writer
}

// Status reports the bridge, configuration and cache state.
func Status(params StatusParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	cfg, configPath, err := config.LoadActive()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	br := newBridge(cfg, log)
	cache := completion.NewFunctionCache(CachePath())
	if err := cache.Load(); err != nil {
		log.Debug().Err(err).Msg("Completion cache load failed")
	}

	data := status.Collect(br, cfg, configPath, cache)

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	switch params.Format {
	case "yaml":
		rendered, err := status.RenderYAML(data)
		if err != nil {
			return fmt.Errorf("failed to render status: %w", err)
		}
		fmt.Fprint(out, rendered)
	case "text", "":
		fmt.Fprint(out, status.Render(data))
	default:
		return fmt.Errorf("unsupported output format: %s", params.Format)
	}
	return nil
}
