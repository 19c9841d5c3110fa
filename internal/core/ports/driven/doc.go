// Package driven defines the outbound port interfaces the core depends
// on: the host client boundary, revision history, and settings storage.
// Adapters under internal/adapters/driven implement them.
package driven
