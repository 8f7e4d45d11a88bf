// Package invoke builds remote command lines and forwards them through the
// bridge.
package invoke

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"

	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
)

// Runner forwards a word list to the bridge with streams attached.
// Satisfied by *bridge.Client.
type Runner interface {
	Run(words []string, stdin io.Reader, stdout, stderr io.Writer) (int, error)
}

// Translator rewrites path arguments for the remote environment.
// Satisfied by *pathtrans.Translator.
type Translator interface {
	Translate(token string) string
}

// Invoker executes commands in the remote environment.
type Invoker struct {
	bridge     Runner
	translator Translator
	cfg        *config.Config
	log        *logger.Logger
}

// New creates an invoker.
func New(bridge Runner, translator Translator, cfg *config.Config, log *logger.Logger) *Invoker {
	return &Invoker{bridge: bridge, translator: translator, cfg: cfg, log: log}
}

// Invoke runs command remotely with the given arguments. The word list is
// built as: env-assignment prefix, the command, its configured default
// arguments, then the user arguments each run through the path translator.
// The bridge is called exactly once; the remote exit code and stderr pass
// through unmodified.
func (i *Invoker) Invoke(command string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	words, err := i.buildWords(command, args)
	if err != nil {
		return -1, err
	}

	i.log.Debug().Str("command", command).Str("words", fmt.Sprintf("%q", words)).Msg("Invoking remote command")

	return i.bridge.Run(words, stdin, stdout, stderr)
}

func (i *Invoker) buildWords(command string, args []string) ([]string, error) {
	var words []string

	words = append(words, i.envPrefix()...)
	words = append(words, command)

	if defaults, ok := i.cfg.DefaultArgsFor(command); ok {
		defaultWords, err := shlex.Split(defaults)
		if err != nil {
			return nil, fmt.Errorf("invalid default arguments for %s: %w", command, err)
		}
		words = append(words, defaultWords...)
	}

	for _, arg := range args {
		if arg == "" {
			continue
		}
		words = append(words, i.translator.Translate(arg))
	}

	return words, nil
}

// envPrefix renders the environment table as NAME='value' assignment words,
// sorted by name for a stable command line.
func (i *Invoker) envPrefix() []string {
	if len(i.cfg.Env) == 0 {
		return nil
	}

	names := make([]string, 0, len(i.cfg.Env))
	for name := range i.cfg.Env {
		names = append(names, name)
	}
	sort.Strings(names)

	prefix := make([]string, 0, len(names))
	for _, name := range names {
		prefix = append(prefix, name+"="+singleQuote(i.cfg.Env[name]))
	}
	return prefix
}

// singleQuote wraps a value in single quotes for bash, escaping embedded
// single quotes.
func singleQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
