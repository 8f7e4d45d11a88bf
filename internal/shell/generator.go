// Package shell generates the host-shell glue that binds command names to
// wslgate execution and completion.
package shell

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// CodeGenerator emits host-shell registration code for a set of command
// names.
type CodeGenerator interface {
	// GenerateRegistration emits code that, for each command, registers an
	// execution handler and a completion handler under that exact name.
	GenerateRegistration(commands []string) (string, error)
	// Name returns the host shell name.
	Name() string
}

// powershellTemplate defines, per command, a forwarding function and an
// argument completer that ships {line, tokens, cursor} to wslgate and maps
// the insert/display pairs it prints back into CompletionResult entries.
const powershellTemplate = `# Generated by wslgate {{ .Version }}. Do not edit.
# Registered commands: {{ join ", " .Commands }}
{{- range .Commands }}

function global:{{ . }} {
    if ($MyInvocation.ExpectingInput) {
        $input | & {{ $.Binary }} run {{ . }} -- @Args
    } else {
        & {{ $.Binary }} run {{ . }} -- @Args
    }
}

Register-ArgumentCompleter -Native -CommandName {{ . }} -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $tokens = $commandAst.CommandElements | ForEach-Object { $_.Extent.Text }
    $lines = & {{ $.Binary }} complete --line $commandAst.Extent.Text --cursor $cursorPosition -- @tokens
    foreach ($pair in $lines) {
        $insert, $display = $pair -split "` + "`" + `t", 2
        if ([string]::IsNullOrEmpty($display)) { $display = $insert }
        [System.Management.Automation.CompletionResult]::new($insert, $display, 'ParameterValue', $display)
    }
}
{{- end }}
`

// PowerShellGenerator generates PowerShell registration code.
type PowerShellGenerator struct {
	// Binary is the wslgate executable name used in the generated code.
	Binary string
	// Version is stamped into the generated header.
	Version string
}

// Name returns the shell name for PowerShell
func (p *PowerShellGenerator) Name() string {
	return "powershell"
}

// GenerateRegistration generates PowerShell functions and argument
// completers for the given command names.
func (p *PowerShellGenerator) GenerateRegistration(commands []string) (string, error) {
	binary := p.Binary
	if binary == "" {
		binary = "wslgate"
	}

	tmpl, err := template.New("powershell").Funcs(sprig.FuncMap()).Parse(powershellTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse registration template: %w", err)
	}

	var b strings.Builder
	err = tmpl.Execute(&b, map[string]interface{}{
		"Binary":   binary,
		"Version":  p.Version,
		"Commands": commands,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render registration code: %w", err)
	}
	return b.String(), nil
}

// NewGenerator returns the generator for the given host shell.
func NewGenerator(shell, binary, version string) (CodeGenerator, error) {
	switch shell {
	case "powershell", "pwsh", "":
		return &PowerShellGenerator{Binary: binary, Version: version}, nil
	default:
		return nil, fmt.Errorf("unsupported host shell: %s", shell)
	}
}
