// Package sqlite provides a host client backed by a SQLite database.
// Unlike the file backend it keeps a bounded history of saved values,
// exposed through the RevisionStore port.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driven/host/sqlite/migrations"
	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
)

// maxRevisions bounds the save history; older revisions are pruned.
const maxRevisions = 20

// Ensure Client implements the interfaces.
var (
	_ driven.HostClient    = (*Client)(nil)
	_ driven.RevisionStore = (*Client)(nil)
)

// Client is a SQLite-backed implementation of driven.HostClient.
type Client struct {
	mu          sync.Mutex
	db          *sql.DB
	path        string
	initialized bool
}

// NewClient creates a SQLite host client at the specified data
// directory. If dataDir is empty, defaults to ~/.gridpad/data.
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

	dbPath := filepath.Join(dataDir, "gridpad.db")

	// WAL mode for better concurrency between the widget and any
	// external readers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Client{
		db:          db,
		path:        dbPath,
		initialized: true,
	}

	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Initialized reports whether the host is ready for value exchange.
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// GetValue returns the persisted value. A missing row means no prior
// value.
func (c *Client) GetValue(ctx context.Context) (string, error) {
	var text string
	err := c.db.QueryRowContext(ctx, "SELECT text FROM current_value WHERE id = 1").Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading value: %w", err)
	}
	return text, nil
}

// SetValue persists the text. A flushed save additionally records a
// revision, pruned to the most recent maxRevisions entries.
func (c *Client) SetValue(ctx context.Context, text string, flush bool) error {
	now := time.Now().UTC()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO current_value (id, text, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			updated_at = excluded.updated_at
	`, text, now)
	if err != nil {
		return fmt.Errorf("saving value: %w", err)
	}

	if flush {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO revisions (id, text, saved_at) VALUES (?, ?, ?)
		`, uuid.New().String(), text, now)
		if err != nil {
			return fmt.Errorf("recording revision: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM revisions WHERE id NOT IN (
				SELECT id FROM revisions ORDER BY saved_at DESC, id LIMIT ?
			)
		`, maxRevisions)
		if err != nil {
			return fmt.Errorf("pruning revisions: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// CloseApp dismisses the view and releases the database.
func (c *Client) CloseApp(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}
	c.initialized = false
	return c.db.Close()
}

// Close releases the database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return nil
	}
	c.initialized = false
	return c.db.Close()
}

// Path returns the database file path.
func (c *Client) Path() string {
	return c.path
}

// ListRevisions returns revisions newest first.
func (c *Client) ListRevisions(ctx context.Context) ([]domain.Revision, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, text, saved_at FROM revisions
		ORDER BY saved_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	var revisions []domain.Revision //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rev domain.Revision
		if err := rows.Scan(&rev.ID, &rev.Text, &rev.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		revisions = append(revisions, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}

	return revisions, nil
}

// GetRevision retrieves a revision by ID.
func (c *Client) GetRevision(ctx context.Context, id string) (*domain.Revision, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, text, saved_at FROM revisions WHERE id = ?
	`, id)

	var rev domain.Revision
	if err := row.Scan(&rev.ID, &rev.Text, &rev.SavedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning revision: %w", err)
	}

	return &rev, nil
}

// migrate runs all pending migrations.
func (c *Client) migrate(fsys embed.FS) error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := c.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
