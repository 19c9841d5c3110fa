// Package driving defines the inbound port interfaces exposed by the
// core services to the CLI, TUI, and MCP adapters.
package driving
