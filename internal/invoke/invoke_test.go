package invoke

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wslgate/wslgate/internal/config"
	"github.com/wslgate/wslgate/internal/logger"
)

// recordingRunner captures the word list handed to the bridge.
type recordingRunner struct {
	words    []string
	stdinSaw []byte
	exitCode int
}

func (r *recordingRunner) Run(words []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	r.words = words
	if stdin != nil {
		r.stdinSaw, _ = io.ReadAll(stdin)
	}
	return r.exitCode, nil
}

// seqRunner emulates a remote seq command, enough to pin the end-to-end
// word-assembly contract without a real bridge.
type seqRunner struct{}

func (seqRunner) Run(words []string, _ io.Reader, stdout, _ io.Writer) (int, error) {
	sep := "\n"
	var bounds []int
	for i := 1; i < len(words); i++ {
		if words[i] == "-s" && i+1 < len(words) {
			sep = words[i+1]
			i++
			continue
		}
		n, err := strconv.Atoi(words[i])
		if err != nil {
			return 1, nil
		}
		bounds = append(bounds, n)
	}
	if len(bounds) != 2 {
		return 1, nil
	}

	var out []string
	for n := bounds[0]; n <= bounds[1]; n++ {
		out = append(out, strconv.Itoa(n))
	}
	_, _ = io.WriteString(stdout, strings.Join(out, sep)+"\n")
	return 0, nil
}

type identityTranslator struct{}

func (identityTranslator) Translate(token string) string { return token }

func testLogger() *logger.Logger {
	return logger.New("error", os.Stderr)
}

func TestInvoke_WordOrder(t *testing.T) {
	runner := &recordingRunner{}
	cfg := &config.Config{
		Env:         map[string]string{"EDITOR": "vim", "ALTERNATE_EDITOR": "nano"},
		DefaultArgs: map[string]string{"ls": "-lah --color=auto"},
	}
	inv := New(runner, identityTranslator{}, cfg, testLogger())

	code, err := inv.Invoke("ls", []string{"/tmp"}, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	// Env prefix sorted by name, then command, defaults, user args.
	assert.Equal(t, []string{
		"ALTERNATE_EDITOR='nano'",
		"EDITOR='vim'",
		"ls", "-lah", "--color=auto", "/tmp",
	}, runner.words)
}

func TestInvoke_EnvValueWithSingleQuote(t *testing.T) {
	runner := &recordingRunner{}
	cfg := &config.Config{
		Env: map[string]string{"PS1": `it's \w $ `},
	}
	inv := New(runner, identityTranslator{}, cfg, testLogger())

	_, err := inv.Invoke("env", nil, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{`PS1='it'\''s \w $ '`, "env"}, runner.words)
}

func TestInvoke_NoEnvNoDefaults(t *testing.T) {
	runner := &recordingRunner{}
	inv := New(runner, identityTranslator{}, &config.Config{}, testLogger())

	_, err := inv.Invoke("grep", []string{"-r", "needle"}, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"grep", "-r", "needle"}, runner.words)
}

func TestInvoke_DefaultArgsDisabled(t *testing.T) {
	runner := &recordingRunner{}
	cfg := &config.Config{DefaultArgs: map[string]string{
		config.DisabledKey: "true",
		"seq":              "-s -",
	}}
	inv := New(runner, identityTranslator{}, cfg, testLogger())

	_, err := inv.Invoke("seq", []string{"0", "10"}, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"seq", "0", "10"}, runner.words)
}

func TestInvoke_StdinForwarded(t *testing.T) {
	runner := &recordingRunner{}
	inv := New(runner, identityTranslator{}, &config.Config{}, testLogger())

	_, err := inv.Invoke("wc", []string{"-l"}, strings.NewReader("a\nb\n"), io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(runner.stdinSaw))
}

func TestInvoke_ExitCodePassthrough(t *testing.T) {
	runner := &recordingRunner{exitCode: 42}
	inv := New(runner, identityTranslator{}, &config.Config{}, testLogger())

	code, err := inv.Invoke("false", nil, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 42, code)
}

func TestInvoke_SeqWithoutDefaults(t *testing.T) {
	inv := New(seqRunner{}, identityTranslator{}, &config.Config{}, testLogger())

	var stdout bytes.Buffer
	code, err := inv.Invoke("seq", []string{"0", "10"}, nil, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", stdout.String())
}

func TestInvoke_SeqWithDefaultSeparator(t *testing.T) {
	cfg := &config.Config{DefaultArgs: map[string]string{"seq": "-s -"}}
	inv := New(seqRunner{}, identityTranslator{}, cfg, testLogger())

	var stdout bytes.Buffer
	code, err := inv.Invoke("seq", []string{"0", "10"}, nil, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0-1-2-3-4-5-6-7-8-9-10\n", stdout.String())
}

func TestInvoke_InvalidDefaultArgs(t *testing.T) {
	cfg := &config.Config{DefaultArgs: map[string]string{"ls": "unterminated '"}}
	inv := New(&recordingRunner{}, identityTranslator{}, cfg, testLogger())

	_, err := inv.Invoke("ls", nil, nil, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestInvoke_EmptyArgsSkipped(t *testing.T) {
	runner := &recordingRunner{}
	inv := New(runner, identityTranslator{}, &config.Config{}, testLogger())

	_, err := inv.Invoke("echo", []string{"a", "", "b"}, nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "a", "b"}, runner.words)
}
