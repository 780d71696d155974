package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sandfly/dawnpatrol/internal/advisor"
)

// ErrNoCachedRun is returned by Load when no advisory has been saved yet.
var ErrNoCachedRun = errors.New("no cached advisory")

// Cache keeps the latest successful advisory in a single-row sqlite table so
// the UI has something to show offline. Exactly one row: this is a fallback,
// not a history.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database and ensures its schema.
func Open(dbPath string) (*Cache, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS advisory (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			generated_at TEXT NOT NULL,
			payload TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating advisory table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Save stores the advisory, replacing any previous one.
func (c *Cache) Save(result *advisor.RunResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding advisory: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO advisory (id, generated_at, payload) VALUES (1, ?, ?)`,
		result.GeneratedAt.Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving advisory: %w", err)
	}
	return nil
}

// Load returns the saved advisory, or ErrNoCachedRun when the cache is empty.
func (c *Cache) Load() (*advisor.RunResult, error) {
	var payload string
	err := c.db.QueryRow(`SELECT payload FROM advisory WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCachedRun
	}
	if err != nil {
		return nil, fmt.Errorf("loading advisory: %w", err)
	}

	var result advisor.RunResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decoding cached advisory: %w", err)
	}
	return &result, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
