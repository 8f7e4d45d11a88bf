package completion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wslgate/wslgate/internal/logger"
)

// Querier runs a word list through the bridge and returns captured stdout.
// Satisfied by *bridge.Client.
type Querier interface {
	Output(words []string) ([]byte, error)
}

// completeFnRe extracts the function name from `complete -p` output, e.g.
// "complete -F _longopt mv".
var completeFnRe = regexp.MustCompile(`-F\s+(\S+)`)

// functionNameRe matches a sane bash function identifier. Anything else in
// the remote reply is treated as error output.
var functionNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:.-]*$`)

// Resolver maps command names to remote completion function names, memoized
// through the function cache.
type Resolver struct {
	bridge Querier
	cache  *FunctionCache
	log    *logger.Logger
}

// NewResolver creates a resolver backed by the given bridge and cache.
func NewResolver(bridge Querier, cache *FunctionCache, log *logger.Logger) *Resolver {
	return &Resolver{bridge: bridge, cache: cache, log: log}
}

// Resolve returns the remote completion function for a command. The first
// lookup per command queries the bridge; every later one answers from the
// cache, including across process restarts once the store is written.
func (r *Resolver) Resolve(command string) string {
	if fn, ok := r.cache.Get(command); ok {
		return fn
	}

	fn := r.query(command)
	if err := r.cache.Put(command, fn); err != nil {
		r.log.Debug().Str("command", command).Err(err).Msg("Failed to persist completion function")
	}

	r.log.Debug().Str("command", command).Str("function", fn).Msg("Resolved completion function")
	return fn
}

// query asks the remote environment which function completes the command.
// Every failure mode degrades to the path-only fallback.
func (r *Resolver) query(command string) string {
	script := fmt.Sprintf(
		"source /usr/share/bash-completion/bash_completion 2>/dev/null ; "+
			"__load_completion %s 2>/dev/null ; "+
			"complete -p %s 2>/dev/null",
		singleQuote(command), singleQuote(command),
	)

	out, err := r.bridge.Output([]string{"bash", "-c", script})
	if err != nil {
		r.log.Debug().Str("command", command).Err(err).Msg("Completion function query failed")
		return FallbackFunction
	}

	m := completeFnRe.FindStringSubmatch(strings.TrimSpace(string(out)))
	if m == nil || !functionNameRe.MatchString(m[1]) {
		return FallbackFunction
	}
	return m[1]
}
