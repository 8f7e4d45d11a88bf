package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a styled string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wslgate ") + valueStyle.Render(data.Version) + "\n\n")

	b.WriteString(sectionStyle.Render("Bridge:") + "\n")
	b.WriteString("   " + keyStyle.Render("Executable: ") + valueStyle.Render(data.BridgeExecutable) + "\n")
	if data.Distro != "" {
		b.WriteString("   " + keyStyle.Render("Distro: ") + valueStyle.Render(data.Distro) + "\n")
	}
	if data.BridgeAvailable {
		b.WriteString("   " + keyStyle.Render("Status: ") + successStyle.Render("✓ Available") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Status: ") + errorStyle.Render("✗ Not found") + "\n")
		b.WriteString("   " + subtleStyle.Render(data.BridgeError) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Configuration:") + "\n")
	if data.ConfigPath != "" {
		b.WriteString("   " + keyStyle.Render("File: ") + subtleStyle.Render(data.ConfigPath) + "\n")
	} else {
		b.WriteString("   " + subtleStyle.Render("No configuration file found") + "\n")
	}
	if len(data.Commands) > 0 {
		b.WriteString("   " + keyStyle.Render("Commands: ") + valueStyle.Render(strings.Join(data.Commands, ", ")) + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Default args: ") + valueStyle.Render(fmt.Sprintf("%d", data.DefaultArgsCount)))
	if data.DefaultsDisabled {
		b.WriteString(" " + errorStyle.Render("(disabled)"))
	}
	b.WriteString("\n")
	b.WriteString("   " + keyStyle.Render("Env vars: ") + valueStyle.Render(fmt.Sprintf("%d", data.EnvCount)) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Completion cache:") + "\n")
	b.WriteString("   " + keyStyle.Render("Path: ") + subtleStyle.Render(data.CachePath) + "\n")
	b.WriteString("   " + keyStyle.Render("Size: ") + valueStyle.Render(formatBytes(data.CacheSize)) + "\n")
	b.WriteString("   " + keyStyle.Render("Entries: ") + valueStyle.Render(fmt.Sprintf("%d", data.CacheEntries)))

	return b.String()
}

// RenderYAML renders the status data as YAML for scripting.
func RenderYAML(data *Data) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal status: %w", err)
	}
	return string(out), nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
