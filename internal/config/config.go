// Package config handles loading and parsing of wslgate configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".wslgate.yml",
	".wslgate.yaml",
	".wslgate.toml",
	".wslgate.json",
}

// DisabledKey is the reserved key in the default-args table that, when
// truthy, suppresses default-argument injection for every command.
const DisabledKey = "Disabled"

// BridgeConfig selects the bridge executable and remote distribution.
type BridgeConfig struct {
	Executable string   `koanf:"executable"`
	Distro     string   `koanf:"distro"`
	ExtraArgs  []string `koanf:"extra_args"`
}

// Config represents a wslgate configuration.
type Config struct {
	Bridge BridgeConfig `koanf:"bridge"`
	// DefaultArgs maps a command name to a default argument string injected
	// before user arguments. The reserved Disabled key turns the feature off.
	DefaultArgs map[string]string `koanf:"default_args"`
	// Env maps variable names to values prefixed onto every remote command line.
	Env map[string]string `koanf:"env"`
	// Commands lists the command names the register command emits glue for.
	Commands []string `koanf:"commands"`
}

// DefaultArgsFor returns the default argument string for a command and
// whether one applies. Absence and the global disable switch both report
// false rather than an empty-string-by-convention.
func (c *Config) DefaultArgsFor(command string) (string, bool) {
	if c.DefaultArgs == nil {
		return "", false
	}
	if truthy(c.DefaultArgs[DisabledKey]) {
		return "", false
	}
	args, ok := c.DefaultArgs[command]
	if !ok || args == "" {
		return "", false
	}
	return args, true
}

// DefaultsDisabled reports whether the reserved Disabled key suppresses
// default-argument injection globally.
func (c *Config) DefaultsDisabled() bool {
	return c.DefaultArgs != nil && truthy(c.DefaultArgs[DisabledKey])
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// parserFor returns the koanf parser matching a config file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return kyaml.Parser(), nil
	case ".toml":
		return ktoml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return unmarshal(k)
}

// LoadBytes parses configuration from raw bytes, using the parser implied by
// the given name. Used by tests and the validate command.
func LoadBytes(data []byte, name string) (*Config, error) {
	parser, err := parserFor(name)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Find locates the active configuration file, preferring
// $XDG_CONFIG_HOME/wslgate over the home directory. Returns an empty string
// when no config exists, which is not an error.
func Find() string {
	var dirs []string

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "wslgate"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		for _, name := range SupportedConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// LoadActive loads the active configuration, or an empty one when no config
// file exists. The returned path is empty in that case.
func LoadActive() (*Config, string, error) {
	path := Find()
	if path == "" {
		return &Config{}, "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
