package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/invoke"
	"github.com/wslgate/wslgate/internal/logger"
	"github.com/wslgate/wslgate/internal/pathtrans"
)

// RunParams contains parameters for the Run command
type RunParams struct {
	LogLevel string
	Command  string
	Args     []string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run executes a command in the remote environment and returns its exit
// code. The remote exit status and stderr pass through untouched; the only
// error this returns is a missing or unstartable bridge.
func Run(params RunParams) (int, error) {
	log := logger.New(params.LogLevel, os.Stderr)

	cfg, configPath, err := config.LoadActive()
	if err != nil {
		return -1, fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug().Str("config", configPath).Str("command", params.Command).Msg("Running remote command")

	br := newBridge(cfg, log)
	if err := br.Available(); err != nil {
		return -1, err
	}

	stdout := params.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := params.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	stdin := params.Stdin
	if stdin == nil {
		if f := stdinIfPiped(); f != nil {
			stdin = f
		}
	}

	translator := pathtrans.New(br, log)
	invoker := invoke.New(br, translator, cfg, log)

	return invoker.Invoke(params.Command, params.Args, stdin, stdout, stderr)
}
