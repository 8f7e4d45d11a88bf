// Package pathtrans rewrites filesystem-path arguments into the remote
// environment's path convention before they cross the bridge.
package pathtrans

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wslgate/wslgate/internal/format"
	"github.com/wslgate/wslgate/internal/logger"
)

// PathMapper maps a drive-qualified Windows path to its remote-mounted
// equivalent. Satisfied by *bridge.Client.
type PathMapper interface {
	PathMap(windowsPath string) (string, error)
}

// Translator classifies tokens and rewrites the ones that are paths.
type Translator struct {
	mapper PathMapper
	log    *logger.Logger
}

// New creates a path translator backed by the given mapper.
func New(mapper PathMapper, log *logger.Logger) *Translator {
	return &Translator{mapper: mapper, log: log}
}

// Translate returns the execution-mode representation of token. Absolute
// drive-qualified paths go through the bridge's path mapper, relative paths
// that exist locally are slash-normalized in place, and everything else is
// treated as a plain argument.
func (t *Translator) Translate(token string) string {
	if isDriveQualified(token) {
		mapped, err := t.mapper.PathMap(token)
		if err != nil {
			// Mapping failures degrade to plain-argument handling rather
			// than failing the whole invocation.
			t.log.Debug().Str("token", token).Err(err).Msg("Path mapping failed, passing through")
			return format.Format(token, false)
		}
		return format.Format(filepath.ToSlash(mapped), false)
	}

	if t.isExistingRelative(token) {
		// Relative paths resolve naturally once the remote working
		// directory is set, so no bridge round trip is needed.
		return format.Format(filepath.ToSlash(token), false)
	}

	return format.Format(token, false)
}

// isDriveQualified reports whether token looks like an absolute Windows
// path with a drive letter, e.g. C:\Users or c:/temp.
func isDriveQualified(token string) bool {
	if len(token) < 3 {
		return false
	}
	drive := token[0]
	if !(drive >= 'a' && drive <= 'z' || drive >= 'A' && drive <= 'Z') {
		return false
	}
	return token[1] == ':' && (token[2] == '\\' || token[2] == '/')
}

// isExistingRelative reports whether token is a syntactically relative path
// naming an existing filesystem entry. Stat errors (wildcard characters and
// the like) are swallowed and classify the token as not-a-path.
func (t *Translator) isExistingRelative(token string) bool {
	if token == "" || isDriveQualified(token) {
		return false
	}
	// Rooted tokens are already remote-native or handled above, and flags
	// are never paths.
	if strings.HasPrefix(token, "/") || strings.HasPrefix(token, "-") {
		return false
	}

	_, err := os.Stat(token)
	return err == nil
}
