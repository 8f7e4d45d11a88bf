package pathtrans

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wslgate/wslgate/internal/logger"
)

// fakeMapper records calls and returns a canned mapping.
type fakeMapper struct {
	calls  []string
	result string
	err    error
}

func (f *fakeMapper) PathMap(windowsPath string) (string, error) {
	f.calls = append(f.calls, windowsPath)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func testLogger() *logger.Logger {
	return logger.New("error", os.Stderr)
}

func TestTranslate_DriveQualifiedPath(t *testing.T) {
	mapper := &fakeMapper{result: "/mnt/c/Users/test"}
	tr := New(mapper, testLogger())

	got := tr.Translate(`C:\Users\test`)

	assert.Equal(t, "/mnt/c/Users/test", got)
	require.Len(t, mapper.calls, 1)
	assert.Equal(t, `C:\Users\test`, mapper.calls[0])
}

func TestTranslate_DriveQualifiedWithSpaces(t *testing.T) {
	mapper := &fakeMapper{result: "/mnt/c/Program Files (x86)"}
	tr := New(mapper, testLogger())

	got := tr.Translate(`C:\Program Files (x86)`)

	assert.Equal(t, `/mnt/c/Program\ Files\ \(x86\)`, got)
}

func TestTranslate_MapperFailureFallsBack(t *testing.T) {
	mapper := &fakeMapper{err: errors.New("bridge unavailable")}
	tr := New(mapper, testLogger())

	// The token is still handed to the formatter as a plain argument, where
	// the backslash before an alphanumeric gets protected.
	got := tr.Translate(`C:\temp`)
	assert.Equal(t, `C:\\temp`, got)
}

func TestTranslate_RelativeExistingPath(t *testing.T) {
	tmpDir := t.TempDir()
	name := filepath.Join(tmpDir, "some file.txt")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	mapper := &fakeMapper{}
	tr := New(mapper, testLogger())

	got := tr.Translate("some file.txt")

	assert.Equal(t, `some\ file.txt`, got)
	assert.Empty(t, mapper.calls, "relative paths must not hit the bridge")
}

func TestTranslate_PlainArguments(t *testing.T) {
	mapper := &fakeMapper{}
	tr := New(mapper, testLogger())

	tests := []struct {
		token string
		want  string
	}{
		{"--verbose", "--verbose"},
		{"no-such-file.txt", "no-such-file.txt"},
		{"a;b", `a\;b`},
		{"/etc/passwd", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.token))
		})
	}
	assert.Empty(t, mapper.calls)
}

func TestTranslate_WildcardTokenNeverFails(t *testing.T) {
	mapper := &fakeMapper{}
	tr := New(mapper, testLogger())

	// Bracket wildcards can make existence checks error on some systems;
	// the token must still come back as a plain formatted argument.
	got := tr.Translate("file[0-9].txt")
	assert.Equal(t, "file[0-9].txt", got)
}

func TestIsDriveQualified(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{`C:\Users`, true},
		{"c:/temp", true},
		{"C:", false},
		{"/mnt/c", false},
		{"relative/path", false},
		{"1:\\x", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, isDriveQualified(tt.token))
		})
	}
}
