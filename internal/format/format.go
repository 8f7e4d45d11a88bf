// Package format escapes command arguments for the remote POSIX shell.
//
// Two escaping profiles exist. Interactive output is inserted back into the
// calling shell's line editor, which treats backslash sequences itself, so
// metacharacters are escaped with a backtick there. Non-interactive output
// goes straight to the remote shell and uses plain backslash escapes.
package format

import "strings"

// metachars is the set of characters the remote shell would otherwise
// interpret when they appear unquoted in an argument.
const metachars = " ,(){}|;"

// Format returns token escaped for the remote shell. When interactive is
// true the escaping targets the calling shell's completion menu instead of
// direct execution.
func Format(token string, interactive bool) string {
	token = strings.TrimSpace(token)

	// A token the user already quoted is passed through untouched.
	if isQuoted(token) {
		return token
	}

	// Completion menus read better with whole-token quoting than with a
	// backtick before every space.
	if interactive && strings.Contains(token, " ") {
		return "'" + token + "'"
	}

	escape := byte('\\')
	if interactive {
		escape = '`'
	}

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case strings.IndexByte(metachars, c) >= 0:
			b.WriteByte(escape)
			b.WriteByte(c)
		case c == '\\' && i+1 < len(token) && isAlnum(token[i+1]):
			// A user-supplied backslash before a letter or digit (a regex
			// escape like \n, say) must survive as a literal backslash.
			b.WriteByte(escape)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isQuoted reports whether token is fully wrapped in a matching single- or
// double-quote pair.
func isQuoted(token string) bool {
	if len(token) < 2 {
		return false
	}
	first, last := token[0], token[len(token)-1]
	return (first == '\'' || first == '"') && first == last
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
