// Package completion bridges the calling shell's completion machinery to
// bash programmable completion running in the remote environment.
package completion

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wslgate/wslgate/internal/format"
	"github.com/wslgate/wslgate/internal/logger"
)

// Candidate is a completion suggestion with separate insertable and display
// representations. The calling shell compares candidates case-insensitively,
// so display text sometimes differs from insertable text (see assemble).
type Candidate struct {
	Insert  string
	Display string
}

// nameEqRe matches an in-progress word of the form name=prefix, as typed
// when completing the value part of --opt=value style arguments.
var nameEqRe = regexp.MustCompile(`^([^\s=]+=)`)

// Engine drives a remote completion round trip per request. The only state
// shared across calls lives in the resolver's function cache.
type Engine struct {
	bridge   Querier
	resolver *Resolver
	log      *logger.Logger
}

// NewEngine creates a completion engine.
func NewEngine(bridge Querier, resolver *Resolver, log *logger.Logger) *Engine {
	return &Engine{bridge: bridge, resolver: resolver, log: log}
}

// Complete runs the completion protocol for the given command line state and
// returns the candidate list. Failures degrade to no candidates, never to an
// error the user sees.
func (e *Engine) Complete(line string, tokens []string, cursor int) []Candidate {
	ctx, words, ok := ResolveContext(line, tokens, cursor)
	if !ok {
		return nil
	}

	command := words[0]
	fn := e.resolver.Resolve(command)

	req := request{
		command: command,
		fn:      fn,
		line:    line,
		words:   words,
		cword:   ctx.Index,
		point:   cursor,
		word:    ctx.Word,
		prev:    ctx.Previous,
	}

	e.log.Debug().
		Str("command", command).
		Str("function", fn).
		Int("cword", ctx.Index).
		Str("word", ctx.Word).
		Str("prev", ctx.Previous).
		Msg("Invoking remote completion")

	out, err := e.bridge.Output([]string{"bash", "-c", req.script()})
	if err != nil {
		e.log.Debug().Str("command", command).Err(err).Msg("Remote completion failed")
		return nil
	}

	return assemble(parseCandidates(out), ctx.Word, words)
}

// parseCandidates splits remote output into unique, case-sensitively sorted
// values. Sorting governs de-duplication and the collision fold below, not
// how the calling shell displays the list.
func parseCandidates(out []byte) []string {
	var values []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		values = append(values, line)
	}

	sort.Strings(values)

	unique := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			unique = append(unique, v)
		}
	}
	return unique
}

// assemble turns raw remote values into candidates. For a name=prefix word
// in progress the prefix is re-attached to the insertable text; otherwise
// values already present as line tokens are dropped and the rest are
// formatted for the completion menu. Candidates that collide with their
// sorted predecessor case-insensitively get a trailing space on the display
// text only, keeping both selectable in a case-insensitive consumer.
func assemble(values []string, word string, tokens []string) []Candidate {
	prefix := ""
	if m := nameEqRe.FindStringSubmatch(word); m != nil {
		prefix = m[1]
	}

	onLine := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		onLine[tok] = true
	}

	candidates := make([]Candidate, 0, len(values))
	prevInsert := ""
	for _, v := range values {
		var cand Candidate
		if prefix != "" {
			cand = Candidate{Insert: prefix + v, Display: v}
		} else {
			insert := format.Format(v, true)
			if onLine[insert] || onLine[v] {
				continue
			}
			cand = Candidate{Insert: insert, Display: insert}
		}

		if len(candidates) > 0 && strings.EqualFold(cand.Insert, prevInsert) {
			cand.Display += " "
		}
		prevInsert = cand.Insert

		candidates = append(candidates, cand)
	}
	return candidates
}
