package completion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FallbackFunction is the bash-completion function used when no completion
// function is registered for a command. It completes filesystem paths only.
const FallbackFunction = "_minimal"

// FunctionCache persists the command-name to completion-function mapping so
// later processes skip the remote round trip. Entries are never re-resolved
// within a process; staleness is accepted until the store is cleared.
type FunctionCache struct {
	mu      sync.RWMutex
	path    string
	entries map[string]string
	loaded  bool
}

// NewFunctionCache creates a cache backed by the given file. Nothing is read
// until the first access.
func NewFunctionCache(path string) *FunctionCache {
	return &FunctionCache{
		path:    path,
		entries: make(map[string]string),
	}
}

// Load reads the durable store once. A missing, partial or corrupt file
// starts the cache empty; it is never fatal.
func (c *FunctionCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoadedLocked()
	return nil
}

func (c *FunctionCache) ensureLoadedLocked() {
	if c.loaded {
		return
	}
	c.loaded = true

	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return
	}
	// A JSON "null" document unmarshals cleanly into a nil map.
	if entries == nil {
		return
	}
	c.entries = entries
}

// Get returns the cached completion function for a command.
func (c *FunctionCache) Get(command string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoadedLocked()

	fn, ok := c.entries[command]
	return fn, ok
}

// Put stores a resolution and persists it immediately.
func (c *FunctionCache) Put(command, fn string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoadedLocked()

	c.entries[command] = fn
	return c.persistLocked()
}

// Len returns the number of cached resolutions.
func (c *FunctionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoadedLocked()
	return len(c.entries)
}

// Path returns the durable store location.
func (c *FunctionCache) Path() string {
	return c.path
}

// Clear drops all entries and removes the durable store. This is the only
// way to refresh stale resolutions.
func (c *FunctionCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)
	c.loaded = true

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (c *FunctionCache) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0600)
}
