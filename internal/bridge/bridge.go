// Package bridge runs word lists inside the remote POSIX environment
// through an external bridge executable (wsl.exe by default).
package bridge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/wslgate/wslgate/internal/logger"
)

// Client invokes the bridge executable. Every method is a single blocking
// round trip; nothing is retried.
type Client struct {
	executable string
	baseArgs   []string
	log        *logger.Logger
}

// Options configures a bridge client.
type Options struct {
	// Executable is the bridge binary name or path. Defaults to "wsl.exe".
	Executable string
	// Distro selects a specific remote distribution, if non-empty.
	Distro string
	// ExtraArgs are appended to the base invocation before the word list.
	ExtraArgs []string
}

// New creates a bridge client.
func New(opts Options, log *logger.Logger) *Client {
	executable := opts.Executable
	if executable == "" {
		executable = "wsl.exe"
	}

	var base []string
	if opts.Distro != "" {
		base = append(base, "-d", opts.Distro)
	}
	base = append(base, opts.ExtraArgs...)

	return &Client{
		executable: executable,
		baseArgs:   base,
		log:        log,
	}
}

// Available checks that the bridge executable can be found. A failure here
// means the environment is misconfigured, not that a remote command failed.
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.executable); err != nil {
		return fmt.Errorf("bridge executable %s not found: %w", c.executable, err)
	}
	return nil
}

// Run forwards words to the bridge with streams attached and returns the
// remote exit code. An error is returned only when the bridge itself cannot
// be started; remote failures surface through the exit code and stderr
// verbatim.
func (c *Client) Run(words []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(c.executable, append(c.baseArgs, words...)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()

	c.log.Debug().Str("bridge", c.executable).Str("words", fmt.Sprintf("%q", words)).Msg("Running bridge command")

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, fmt.Errorf("failed to start bridge %s: %w", c.executable, err)
}

// Output forwards words to the bridge and returns captured stdout. Used for
// the internal round trips (path mapping, completion queries) where the
// output is parsed rather than streamed.
func (c *Client) Output(words []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	code, err := c.Run(words, nil, &stdout, &stderr)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("bridge command exited %d: %s", code, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// PathMap converts a drive-qualified Windows path to its remote-mounted
// equivalent via the bridge's wslpath utility.
func (c *Client) PathMap(windowsPath string) (string, error) {
	out, err := c.Output([]string{"wslpath", windowsPath})
	if err != nil {
		return "", fmt.Errorf("wslpath %s: %w", windowsPath, err)
	}

	mapped := strings.TrimSpace(string(out))
	if mapped == "" {
		return "", fmt.Errorf("wslpath returned no mapping for %s", windowsPath)
	}
	return mapped, nil
}
