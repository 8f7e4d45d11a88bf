package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// InitParams contains parameters for the Init command
type InitParams struct {
	LogLevel string
	Path     string // target file, or empty for ~/.wslgate.yml
	Output   io.Writer
}

const sampleConfig = `# wslgate configuration
bridge:
  executable: wsl.exe
  # distro: Ubuntu

# Commands registered into the host shell by "wslgate register".
commands:
  - ls
  - grep

# Default arguments injected before user arguments.
default_args:
  ls: --color=auto
  # Disabled: "true"

# Environment variables prefixed onto every remote command line.
env: {}
`

// Init writes a starter configuration file. An existing file is never
// overwritten.
func Init(params InitParams) error {
	path := params.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".wslgate.yml")
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
