// Package cli implements the wslgate command actions.
package cli

import (
	"os"
	"path/filepath"

	"github.com/wslgate/wslgate/internal/bridge"
	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
)

// CachePath returns the durable completion-function cache location.
func CachePath() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, _ := os.UserHomeDir()
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "wslgate", "completions.json")
}

// newBridge builds a bridge client from the active configuration.
func newBridge(cfg *config.Config, log *logger.Logger) *bridge.Client {
	return bridge.New(bridge.Options{
		Executable: cfg.Bridge.Executable,
		Distro:     cfg.Bridge.Distro,
		ExtraArgs:  cfg.Bridge.ExtraArgs,
	}, log)
}

// stdinIfPiped returns os.Stdin when input is piped into the process, nil
// when stdin is an interactive terminal.
func stdinIfPiped() *os.File {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
