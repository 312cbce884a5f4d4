// ABOUTME: SQLite-backed item store for persistent local caching
// ABOUTME: Items survive application restarts and receive auto-incrementing ids

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/mapper"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NULL,
		description TEXT NULL
	);
`

// Client implements the ItemStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteStore opens (or creates) the item database at filePath
func NewSQLiteStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "items.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Client{
		db:       db,
		filePath: filePath,
	}, nil
}

// HasData reports whether at least one item row exists
func (c *Client) HasData(ctx context.Context) (bool, error) {
	var exists bool
	err := c.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM items)").Scan(&exists)
	if err != nil {
		return false, apperrors.NewStorageError("has data", err)
	}
	return exists, nil
}

// ReadAll returns every stored item ordered by id
func (c *Client) ReadAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT id, title, description FROM items ORDER BY id")
	if err != nil {
		return nil, apperrors.NewStorageError("read all", err)
	}
	defer rows.Close()

	var stored []domain.StorageItem
	for rows.Next() {
		var (
			row         domain.StorageItem
			title       sql.NullString
			description sql.NullString
		)
		if err := rows.Scan(&row.ID, &title, &description); err != nil {
			return nil, apperrors.NewStorageError("read all", err)
		}
		row.Title = nullableString(title)
		row.Description = nullableString(description)
		stored = append(stored, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("read all", err)
	}

	return mapper.StorageListToItems(stored), nil
}

// WriteAll inserts items in order inside a single transaction
func (c *Client) WriteAll(ctx context.Context, items []domain.RemoteItem) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("write all", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO items (title, description) VALUES (?, ?)")
	if err != nil {
		return apperrors.NewStorageError("write all", err)
	}
	defer stmt.Close()

	for _, row := range mapper.RemoteListToStorage(items) {
		if _, err := stmt.ExecContext(ctx, row.Title, row.Description); err != nil {
			return apperrors.NewStorageError("write all", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("write all", err)
	}
	return nil
}

// DeleteAll removes every stored item. Ids keep increasing afterwards.
func (c *Client) DeleteAll(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return apperrors.NewStorageError("delete all", err)
	}
	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Stats returns store statistics
func (c *Client) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return nil, apperrors.NewStorageError("stats", err)
	}
	stats["total_items"] = count

	var pageCount, pageSize int
	err := c.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["backend"] = "sqlite"
	stats["file_path"] = c.filePath

	return stats, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
