package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
	"github.com/wslgate/wslgate/internal/shell"
	"github.com/wslgate/wslgate/pkg/version"
)

// RegisterParams contains parameters for the Register command
type RegisterParams struct {
	LogLevel string
	Shell    string
	Commands []string // overrides the configured command list when non-empty
	Output   io.Writer
}

// Register prints host-shell code binding each command name to remote
// execution and completion.
func Register(params RegisterParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	commands := params.Commands
	if len(commands) == 0 {
		cfg, _, err := config.LoadActive()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		commands = cfg.Commands
	}
	if len(commands) == 0 {
		return fmt.Errorf("no commands to register: pass names or set commands in the config")
	}

	gen, err := shell.NewGenerator(params.Shell, "wslgate", version.Version)
	if err != nil {
		return err
	}

	code, err := gen.GenerateRegistration(commands)
	if err != nil {
		return err
	}

	log.Debug().Str("shell", gen.Name()).Int("commands", len(commands)).Msg("Generated registration code")

	out := params.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprint(out, code)
	return nil
}
