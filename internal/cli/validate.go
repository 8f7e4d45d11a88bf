package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/wslgate/wslgate/internal/config"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	LogLevel string
	Path     string // explicit config file, or empty for the active one
	Output   io.Writer
}

// Validate checks a configuration file against the schema and semantic
// rules, printing each problem found.
func Validate(params ValidateParams) error {
	path := params.Path
	if path == "" {
		path = config.Find()
		if path == "" {
			return fmt.Errorf("no configuration file found")
		}
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	result, err := config.Validate(path)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(out, "✓ %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "✗ %s has %d problem(s):\n", path, len(result.Errors))
	for _, e := range result.Errors {
		if e.Field != "" {
			fmt.Fprintf(out, "  - %s: %s\n", e.Field, e.Message)
		} else {
			fmt.Fprintf(out, "  - %s\n", e.Message)
		}
	}
	return fmt.Errorf("configuration is invalid")
}
