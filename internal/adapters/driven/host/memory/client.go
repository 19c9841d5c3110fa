// Package memory provides an in-memory host client for testing. It
// records every SetValue call and supports scripted failures.
package memory

import (
	"context"
	"sync"

	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.HostClient = (*Client)(nil)

// SetCall records a single SetValue invocation.
type SetCall struct {
	Text  string
	Flush bool
}

// Client is an in-memory implementation of driven.HostClient.
type Client struct {
	mu          sync.RWMutex
	initialized bool
	value       string
	setCalls    []SetCall
	closed      bool

	// Scripted failures, returned verbatim when non-nil.
	GetErr   error
	SetErr   error
	CloseErr error
}

// NewClient creates an initialized in-memory host client with no prior
// value.
func NewClient() *Client {
	return &Client{initialized: true}
}

// NewClientWithValue creates an initialized client holding a previously
// persisted value.
func NewClientWithValue(value string) *Client {
	return &Client{initialized: true, value: value}
}

// SetInitialized toggles the readiness gate.
func (c *Client) SetInitialized(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = v
}

// Initialized reports whether the host is ready for value exchange.
func (c *Client) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// GetValue returns the stored value.
func (c *Client) GetValue(_ context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.GetErr != nil {
		return "", c.GetErr
	}
	return c.value, nil
}

// SetValue stores the value and records the call.
func (c *Client) SetValue(_ context.Context, text string, flush bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.value = text
	c.setCalls = append(c.setCalls, SetCall{Text: text, Flush: flush})
	return nil
}

// CloseApp marks the view as dismissed.
func (c *Client) CloseApp(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.CloseErr != nil {
		return c.CloseErr
	}
	c.closed = true
	return nil
}

// Value returns the currently stored value.
func (c *Client) Value() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetCalls returns all recorded SetValue invocations.
func (c *Client) SetCalls() []SetCall {
	c.mu.RLock()
	defer c.mu.RUnlock()
	calls := make([]SetCall, len(c.setCalls))
	copy(calls, c.setCalls)
	return calls
}

// Closed reports whether CloseApp was invoked.
func (c *Client) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
