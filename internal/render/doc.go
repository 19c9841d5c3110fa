// Package render converts table documents into display formats: an
// HTML table with the first row as a header band, and a plain-text
// grid for terminal output. Both carry the row/column count footer.
package render
