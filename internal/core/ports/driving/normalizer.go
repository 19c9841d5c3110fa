package driving

import "github.com/gridpad-labs/gridpad-cli/internal/core/domain"

// Normalizer converts free-form pasted text, or a previously stored
// string, into a TableDocument, and serializes documents back to text.
// All operations are pure functions of their input.
type Normalizer interface {
	// ParseDelimited splits text into non-blank lines and each line on
	// tabs when present, otherwise commas, trimming every cell.
	ParseDelimited(text string) *domain.TableDocument

	// NormalizeInput parses pasted text into a document and its
	// canonical pretty-printed JSON rendering, which replaces the pasted
	// text as the authoritative representation. Blank input returns a
	// nil document with no error. A structurally valid parse with zero
	// rows returns domain.ErrEmptyTable; anything unrecoverable returns
	// a wrapped domain.ErrParse.
	NormalizeInput(text string) (*domain.TableDocument, string, error)

	// Load adopts a previously stored string: strict JSON with a "data"
	// sequence is taken as-is, anything else is run through
	// NormalizeInput. The error is for logging only; callers fall back
	// to the empty initial state.
	Load(raw string) (*domain.TableDocument, string, error)

	// Serialize renders a document as compact JSON, or an empty string
	// for nil.
	Serialize(doc *domain.TableDocument) string
}
