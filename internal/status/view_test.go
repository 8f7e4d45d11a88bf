package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleData() *Data {
	return &Data{
		Version:          "1.0.0",
		BridgeExecutable: "wsl.exe",
		BridgeAvailable:  true,
		Distro:           "Ubuntu",
		ConfigPath:       "/home/user/.wslgate.yml",
		Commands:         []string{"ls", "git"},
		DefaultArgsCount: 2,
		EnvCount:         1,
		CachePath:        "/home/user/.cache/wslgate/completions.json",
		CacheSize:        2048,
		CacheEntries:     5,
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleData())

	assert.Contains(t, out, "wslgate")
	assert.Contains(t, out, "wsl.exe")
	assert.Contains(t, out, "Ubuntu")
	assert.Contains(t, out, "ls, git")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "Available")
}

func TestRender_BridgeMissing(t *testing.T) {
	data := sampleData()
	data.BridgeAvailable = false
	data.BridgeError = "bridge executable wsl.exe not found"

	out := Render(data)
	assert.Contains(t, out, "Not found")
	assert.Contains(t, out, "not found")
}

func TestRender_DefaultsDisabled(t *testing.T) {
	data := sampleData()
	data.DefaultsDisabled = true

	assert.Contains(t, Render(data), "(disabled)")
}

func TestRenderYAML(t *testing.T) {
	out, err := RenderYAML(sampleData())
	require.NoError(t, err)

	var decoded Data
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0.0", decoded.Version)
	assert.Equal(t, 5, decoded.CacheEntries)
	assert.True(t, strings.Contains(out, "bridge_executable: wsl.exe"))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
