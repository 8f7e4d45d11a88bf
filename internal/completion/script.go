package completion

import (
	"fmt"
	"strings"
)

// request models the remote completion invocation as structured data. All
// bash serialization happens in one place, script, so escaping stays
// centralized and testable apart from the invocation logic.
type request struct {
	command string   // command being completed (token 0)
	fn      string   // resolved completion function
	line    string   // full command line text (COMP_LINE)
	words   []string // token list (COMP_WORDS)
	cword   int      // edited token index (COMP_CWORD)
	point   int      // cursor offset (COMP_POINT)
	word    string   // word being completed
	prev    string   // previous word
}

// script serializes the request to a bash program: load the completion
// framework and the command's definitions, export the completion protocol
// variables, invoke the function and print the resulting candidate array.
func (r request) script() string {
	quoted := make([]string, len(r.words))
	for i, w := range r.words {
		quoted[i] = singleQuote(w)
	}

	return fmt.Sprintf(`source /usr/share/bash-completion/bash_completion 2>/dev/null
__load_completion %s 2>/dev/null
COMP_LINE=%s
COMP_POINT=%d
COMP_WORDS=(%s)
COMP_CWORD=%d
bind 'set completion-ignore-case on' 2>/dev/null
%s %s %s %s 2>/dev/null
printf '%%s\n' "${COMPREPLY[@]}"
`,
		singleQuote(r.command),
		singleQuote(r.line),
		r.point,
		strings.Join(quoted, " "),
		r.cword,
		r.fn,
		singleQuote(r.command),
		singleQuote(r.word),
		singleQuote(r.prev),
	)
}

// singleQuote wraps a word in single quotes for bash, escaping embedded
// single quotes.
func singleQuote(word string) string {
	return "'" + strings.ReplaceAll(word, "'", `'\''`) + "'"
}
