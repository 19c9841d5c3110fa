// Package domain contains the core business entities for gridpad:
// the canonical table document, the editor state record and its
// reducer, and the domain error taxonomy. It depends on nothing
// outside the standard library.
package domain
