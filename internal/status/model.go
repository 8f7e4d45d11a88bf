package status

// Data contains all the information to display in status
type Data struct {
	Version string `yaml:"version"`

	// Bridge
	BridgeExecutable string `yaml:"bridge_executable"`
	BridgeAvailable  bool   `yaml:"bridge_available"`
	BridgeError      string `yaml:"bridge_error,omitempty"`
	Distro           string `yaml:"distro,omitempty"`

	// Configuration
	ConfigPath       string   `yaml:"config_path,omitempty"`
	Commands         []string `yaml:"commands,omitempty"`
	DefaultArgsCount int      `yaml:"default_args_count"`
	DefaultsDisabled bool     `yaml:"defaults_disabled"`
	EnvCount         int      `yaml:"env_count"`

	// Completion-function cache
	CachePath    string `yaml:"cache_path"`
	CacheSize    int64  `yaml:"cache_size"`
	CacheEntries int    `yaml:"cache_entries"`
}
