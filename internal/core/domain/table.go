package domain

// Provenance tags recorded in TableMetadata.Source.
const (
	// SourceClipboard marks documents produced from pasted text.
	SourceClipboard = "clipboard"

	// SourceStorage marks documents adopted from a previously stored value.
	SourceStorage = "storage"
)

// TableDocument is the canonical in-memory representation of tabular data.
// It is constructed by parsing pasted text or a previously stored JSON
// string, and is the only unit the editor ever persists.
type TableDocument struct {
	// Rows is the ordered grid of text cells: outer order is row order,
	// inner order is column order within a row. Rows may have differing
	// lengths; no padding or truncation is performed.
	//
	// The wire key is "data". Stored documents have always used this
	// key, so it is kept as the persisted format.
	Rows [][]string `json:"data"`

	// Metadata is an optional derived summary. When a document arrives
	// pre-formed from storage the stored values are kept as-is; they are
	// advisory and display code recomputes counts from Rows.
	Metadata *TableMetadata `json:"metadata,omitempty"`
}

// TableMetadata summarises a table document.
type TableMetadata struct {
	// RowCount is the number of rows at the time the summary was derived.
	RowCount int `json:"rowCount"`

	// ColumnCount is the length of the first row, or 0 with no rows.
	ColumnCount int `json:"columnCount"`

	// Source is a provenance tag, e.g. "clipboard".
	Source string `json:"source,omitempty"`
}

// RowCount returns the number of rows, recomputed from Rows.
func (d *TableDocument) RowCount() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnCount returns the length of the first row, or 0 with no rows.
// It is recomputed from Rows and may disagree with stored metadata.
func (d *TableDocument) ColumnCount() int {
	if d == nil || len(d.Rows) == 0 {
		return 0
	}
	return len(d.Rows[0])
}

// Header returns the first row, treated by rendering code as the header
// band, or nil with no rows.
func (d *TableDocument) Header() []string {
	if d == nil || len(d.Rows) == 0 {
		return nil
	}
	return d.Rows[0]
}

// Body returns all rows after the header band. A single-row document has
// an empty body.
func (d *TableDocument) Body() [][]string {
	if d == nil || len(d.Rows) < 2 {
		return nil
	}
	return d.Rows[1:]
}
