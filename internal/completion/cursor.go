package completion

import "strings"

// Context is the cursor-derived completion state: which token slot is being
// edited, the word in progress there (empty for a not-yet-typed slot) and
// the word before it.
type Context struct {
	Index    int
	Word     string
	Previous string
}

type span struct {
	start, end int
}

// tokenSpans locates each token's extent within the line. Tokens are matched
// in order; when a token's text cannot be found (the calling shell requoted
// it), its span is approximated from the current scan position.
func tokenSpans(line string, tokens []string) []span {
	spans := make([]span, len(tokens))
	off := 0
	for i, tok := range tokens {
		if idx := strings.Index(line[off:], tok); idx >= 0 {
			start := off + idx
			spans[i] = span{start: start, end: start + len(tok)}
			off = spans[i].end
			continue
		}

		for off < len(line) && line[off] == ' ' {
			off++
		}
		end := off + len(tok)
		if end > len(line) {
			end = len(line)
		}
		spans[i] = span{start: off, end: end}
		off = end
	}
	return spans
}

// locate resolves the cursor offset against the token spans. First match in
// line order wins: strictly inside a token edits it, exactly at a token's
// end edits the next slot, inside leading whitespace edits the upcoming
// token's slot, and past the last token edits a new trailing slot.
func locate(spans []span, tokens []string, cursor int) Context {
	for i, sp := range spans {
		prev := ""
		if i > 0 {
			prev = tokens[i-1]
		}
		switch {
		case cursor < sp.start:
			return Context{Index: i, Previous: prev}
		case cursor < sp.end:
			return Context{Index: i, Word: tokens[i], Previous: prev}
		case cursor == sp.end:
			return Context{Index: i + 1, Previous: tokens[i]}
		}
	}
	return Context{Index: len(tokens), Previous: tokens[len(tokens)-1]}
}

// ResolveContext computes the cursor context for a completion request and
// applies the quoted-path continuation merge: a token starting with a path
// separator whose extent begins exactly where the previous token ends is one
// in-progress word split by the calling shell's parser, so the two are
// rejoined and the edited slot shifts back by one.
//
// The possibly rewritten token list is returned alongside the context. A
// zero-token request yields ok=false: no completions.
func ResolveContext(line string, tokens []string, cursor int) (Context, []string, bool) {
	if len(tokens) == 0 {
		return Context{}, nil, false
	}

	spans := tokenSpans(line, tokens)
	ctx := locate(spans, tokens, cursor)

	if ctx.Index > 0 && ctx.Index < len(tokens) &&
		strings.HasPrefix(tokens[ctx.Index], "/") &&
		spans[ctx.Index].start == spans[ctx.Index-1].end {

		merged := tokens[ctx.Index-1] + tokens[ctx.Index]

		rewritten := make([]string, 0, len(tokens)-1)
		rewritten = append(rewritten, tokens[:ctx.Index-1]...)
		rewritten = append(rewritten, merged)
		rewritten = append(rewritten, tokens[ctx.Index+1:]...)

		ctx.Index--
		ctx.Word = merged
		ctx.Previous = ""
		if ctx.Index > 0 {
			ctx.Previous = rewritten[ctx.Index-1]
		}
		return ctx, rewritten, true
	}

	return ctx, tokens, true
}
