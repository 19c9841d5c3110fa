// Package file provides a host client that persists the widget value to
// a single file on disk. It stands in for the embedding application
// shell during local use: GetValue/SetValue map to reads and atomic
// writes, and CloseApp releases the watcher.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
)

// valueFile is the name of the backing file inside the data directory.
const valueFile = "value.json"

// Ensure Client implements the interfaces.
var (
	_ driven.HostClient   = (*Client)(nil)
	_ driven.ValueWatcher = (*Client)(nil)
)

// Client is a file-backed implementation of driven.HostClient.
type Client struct {
	mu          sync.Mutex
	path        string
	initialized bool
	watcher     *watcher
}

// NewClient creates a file host client rooted at dataDir. If dataDir is
// empty, defaults to ~/.gridpad/data.
func NewClient(dataDir string) (*Client, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".gridpad", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Client{
		path:        filepath.Join(dataDir, valueFile),
		initialized: true,
	}, nil
}

// Initialized reports whether the host is ready for value exchange.
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// GetValue returns the persisted value. A missing file means no prior
// value.
func (c *Client) GetValue(_ context.Context) (string, error) {
	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading value file: %w", err)
	}
	return string(raw), nil
}

// SetValue persists the text with a write-to-temp-then-rename so readers
// never observe a partial value. flush additionally syncs the file to
// stable storage.
func (c *Client) SetValue(_ context.Context, text string, flush bool) error {
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".value-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing value: %w", err)
	}

	if flush {
		if err := tmp.Sync(); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("syncing value: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing value file: %w", err)
	}

	return nil
}

// CloseApp dismisses the view. For the file backend this only releases
// the watcher; there is no surrounding shell to tear down.
func (c *Client) CloseApp(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = false
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// Watch reports external changes to the value file. Notification bursts
// from editors that write multiple events per save are coalesced.
func (c *Client) Watch(ctx context.Context) (<-chan struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher == nil {
		w, err := newWatcher(c.path)
		if err != nil {
			return nil, err
		}
		c.watcher = w
	}

	return c.watcher.Run(ctx), nil
}

// Path returns the backing file path.
func (c *Client) Path() string {
	return c.path
}
