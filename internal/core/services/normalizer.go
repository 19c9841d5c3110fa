package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
)

// Ensure Normalizer implements the interface.
var _ driving.Normalizer = (*Normalizer)(nil)

// Normalizer turns arbitrary pasted text, or a previously stored string,
// into a TableDocument, and serializes documents back to text. It holds
// no state; every operation is a pure function of its input.
type Normalizer struct{}

// NewNormalizer creates a new table normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// ParseDelimited splits text into non-blank lines; a line containing a
// horizontal tab splits on tabs, any other line splits on commas. Every
// cell is trimmed of surrounding whitespace.
func (n *Normalizer) ParseDelimited(text string) *domain.TableDocument {
	var rows [][]string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Tab takes precedence per line: commas inside a tabbed line
		// are not delimiters.
		sep := ","
		if strings.ContainsRune(line, '\t') {
			sep = "\t"
		}

		cells := strings.Split(line, sep)
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, cells)
	}

	doc := &domain.TableDocument{Rows: rows}
	doc.Metadata = &domain.TableMetadata{
		RowCount:    doc.RowCount(),
		ColumnCount: doc.ColumnCount(),
		Source:      domain.SourceClipboard,
	}
	return doc
}

// NormalizeInput parses pasted text into a document and its canonical
// pretty-printed JSON rendering. Blank input yields a nil document with
// no error — a valid empty state. A JSON-looking string is adopted as a
// pre-formed document when it carries a "data" sequence; on any parse
// failure or shape mismatch it falls back to delimited parsing of the
// literal text.
func (n *Normalizer) NormalizeInput(text string) (*domain.TableDocument, string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, "", nil
	}

	var doc *domain.TableDocument
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		doc = parseStoredJSON(trimmed)
	}
	if doc == nil {
		doc = n.ParseDelimited(text)
	}

	if doc.RowCount() == 0 {
		return nil, "", domain.ErrEmptyTable
	}

	canonical, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	return doc, string(canonical), nil
}

// Load adopts a previously stored string. Strict JSON carrying a "data"
// sequence is taken directly as the document; anything else is treated
// as pasted text and run through NormalizeInput. The returned error is
// for logging only.
func (n *Normalizer) Load(raw string) (*domain.TableDocument, string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, "", nil
	}

	if doc := parseStoredJSON(strings.TrimSpace(raw)); doc != nil {
		return doc, raw, nil
	}

	return n.NormalizeInput(raw)
}

// Serialize renders a document as compact JSON, or an empty string for nil.
func (n *Normalizer) Serialize(doc *domain.TableDocument) string {
	if doc == nil {
		return ""
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		// A TableDocument holds only strings; this cannot fail in
		// practice.
		return ""
	}
	return string(raw)
}

// parseStoredJSON attempts a strict parse of the stored document shape:
// a JSON object whose "data" field is a sequence of rows. It returns nil
// on any parse failure or shape mismatch; callers fall back to delimited
// parsing. Stored metadata is adopted as-is, never re-derived.
func parseStoredJSON(text string) *domain.TableDocument {
	var probe struct {
		Data     json.RawMessage       `json:"data"`
		Metadata *domain.TableMetadata `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil
	}

	raw := bytesTrimLeft(probe.Data)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var rows [][]string
	if err := json.Unmarshal(probe.Data, &rows); err != nil {
		return nil
	}

	return &domain.TableDocument{Rows: rows, Metadata: probe.Metadata}
}

// bytesTrimLeft strips leading JSON whitespace.
func bytesTrimLeft(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t' || b[0] == '\n' || b[0] == '\r') {
		b = b[1:]
	}
	return b
}
