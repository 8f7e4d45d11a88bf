package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "plain command",
			argv: []string{"run", "ls", "-la"},
			want: []string{"ls", "-la"},
		},
		{
			name: "first double dash is stripped",
			argv: []string{"run", "ls", "--", "-la"},
			want: []string{"ls", "-la"},
		},
		{
			name: "later double dash survives",
			argv: []string{"run", "git", "--", "checkout", "--", "file.txt"},
			want: []string{"git", "checkout", "--", "file.txt"},
		},
		{
			name: "global flags before subcommand are ignored",
			argv: []string{"--log-level", "debug", "run", "grep", "run"},
			want: []string{"grep", "run"},
		},
		{
			name: "no args",
			argv: []string{"run"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runArgs(tt.argv))
		})
	}
}

func TestCompleteArgs(t *testing.T) {
	line, cursor, tokens := completeArgs([]string{
		"complete", "--line", "git che", "--cursor", "7", "--", "git", "che",
	})
	assert.Equal(t, "git che", line)
	assert.Equal(t, 7, cursor)
	assert.Equal(t, []string{"git", "che"}, tokens)
}

func TestCompleteArgs_TokensWithFlags(t *testing.T) {
	line, cursor, tokens := completeArgs([]string{
		"complete", "--line", "ls -la --col", "--cursor", "12", "--", "ls", "-la", "--col",
	})
	assert.Equal(t, "ls -la --col", line)
	assert.Equal(t, 12, cursor)
	assert.Equal(t, []string{"ls", "-la", "--col"}, tokens)
}

func TestCompleteArgs_DoubleDashToken(t *testing.T) {
	_, _, tokens := completeArgs([]string{
		"complete", "--line", "git -- f", "--cursor", "8", "--", "git", "--", "f",
	})
	assert.Equal(t, []string{"git", "--", "f"}, tokens)
}

func TestCompleteArgs_CursorDefaultsToLineEnd(t *testing.T) {
	_, cursor, _ := completeArgs([]string{
		"complete", "--line", "git che", "--", "git", "che",
	})
	assert.Equal(t, len("git che"), cursor)
}

func TestCompleteArgs_ExplicitCursorZero(t *testing.T) {
	_, cursor, _ := completeArgs([]string{
		"complete", "--line", "git che", "--cursor", "0", "--", "git", "che",
	})
	assert.Equal(t, 0, cursor)
}

func TestCompleteArgs_NoSeparator(t *testing.T) {
	line, _, tokens := completeArgs([]string{
		"complete", "--line", "ls x", "--cursor", "4", "ls", "x",
	})
	assert.Equal(t, "ls x", line)
	assert.Equal(t, []string{"ls", "x"}, tokens)
}
