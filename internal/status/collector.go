// Package status collects and renders the current wslgate configuration
// state.
package status

import (
	"os"

	"github.com/wslgate/wslgate/internal/completion"
	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/pkg/version"
)

// BridgeChecker reports whether the bridge executable can be found.
// Satisfied by *bridge.Client.
type BridgeChecker interface {
	Available() error
}

// Collect gathers status data from the bridge, the active config and the
// completion-function cache.
func Collect(checker BridgeChecker, cfg *config.Config, configPath string, cache *completion.FunctionCache) *Data {
	data := &Data{
		Version:          version.Version,
		BridgeExecutable: cfg.Bridge.Executable,
		Distro:           cfg.Bridge.Distro,
		ConfigPath:       configPath,
		Commands:         cfg.Commands,
		EnvCount:         len(cfg.Env),
		CachePath:        cache.Path(),
		CacheEntries:     cache.Len(),
	}

	if data.BridgeExecutable == "" {
		data.BridgeExecutable = "wsl.exe"
	}

	if err := checker.Available(); err != nil {
		data.BridgeError = err.Error()
	} else {
		data.BridgeAvailable = true
	}

	for name := range cfg.DefaultArgs {
		if name == config.DisabledKey {
			continue
		}
		data.DefaultArgsCount++
	}
	data.DefaultsDisabled = cfg.DefaultsDisabled()

	if info, err := os.Stat(cache.Path()); err == nil {
		data.CacheSize = info.Size()
	}

	return data
}
