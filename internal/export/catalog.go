// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/researchlib/internal/index"
	"github.com/pdiddy/researchlib/pkg/types"
)

var catalogSchema = []string{
	`CREATE TABLE records (
		position INTEGER PRIMARY KEY,
		identifier TEXT NOT NULL,
		title TEXT,
		author TEXT,
		year TEXT,
		last_updated TEXT,
		data TEXT NOT NULL
	)`,
	`CREATE INDEX idx_records_identifier ON records(identifier)`,
	`CREATE TABLE keywords (
		keyword TEXT NOT NULL,
		identifier TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE INDEX idx_keywords_keyword ON keywords(keyword)`,
}

// Catalog is a SQLite snapshot of a record collection and its keyword
// index, written for hand-off to other library systems.
type Catalog struct {
	db *sql.DB
}

// WriteCatalog replaces path with a SQLite catalog holding records in order
// and the inverted keyword index built from them.
func WriteCatalog(records []types.Record, path string) error {
	return WriteCatalogContext(context.Background(), records, path)
}

// WriteCatalogContext is WriteCatalog with a context.
func WriteCatalogContext(ctx context.Context, records []types.Record, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return exportError(path, err)
	}

	c, err := OpenCatalog(path)
	if err != nil {
		return exportError(path, err)
	}
	if err := c.write(ctx, records); err != nil {
		c.Close()
		return exportError(path, err)
	}
	if err := c.Close(); err != nil {
		return exportError(path, err)
	}
	return nil
}

// OpenCatalog opens the catalog at path, creating the file if needed.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", catalogDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// catalogDSN returns path as a SQLite file URI so that '?' and '#' in the
// path are not read as URI syntax.
func catalogDSN(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath()
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) write(ctx context.Context, records []types.Record) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range catalogSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	insRecord, err := tx.PrepareContext(ctx,
		`INSERT INTO records (position, identifier, title, author, year, last_updated, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer insRecord.Close()

	for i, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		_, err = insRecord.ExecContext(ctx,
			i, r.ID(), nullable(r.Title), nullable(r.Author), nullable(r.Year),
			nullable(r.LastUpdated), string(data))
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	insKeyword, err := tx.PrepareContext(ctx,
		`INSERT INTO keywords (keyword, identifier, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing keyword insert: %w", err)
	}
	defer insKeyword.Close()

	idx := index.Build(records)
	for _, kw := range idx.Keywords() {
		for pos, id := range idx.Lookup(kw) {
			if _, err := insKeyword.ExecContext(ctx, kw, id, pos); err != nil {
				return fmt.Errorf("inserting keyword %s: %w", kw, err)
			}
		}
	}

	return tx.Commit()
}

func nullable(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// Records returns the catalog's records in the order they were written.
func (c *Catalog) Records(ctx context.Context) ([]types.Record, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT data FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		var r types.Record
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Index rebuilds the inverted index stored in the catalog.
func (c *Catalog) Index(ctx context.Context) (types.InvertedIndex, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT keyword, identifier FROM keywords ORDER BY keyword, position`)
	if err != nil {
		return nil, fmt.Errorf("querying keywords: %w", err)
	}
	defer rows.Close()

	idx := make(types.InvertedIndex)
	for rows.Next() {
		var kw, id string
		if err := rows.Scan(&kw, &id); err != nil {
			return nil, fmt.Errorf("scanning keyword: %w", err)
		}
		idx[kw] = append(idx[kw], id)
	}
	return idx, rows.Err()
}

// Lookup returns the identifiers stored under keyword, in index order.
func (c *Catalog) Lookup(ctx context.Context, keyword string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT identifier FROM keywords WHERE keyword = ? ORDER BY position`, keyword)
	if err != nil {
		return nil, fmt.Errorf("querying keyword %s: %w", keyword, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning identifier: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// LoadCatalog reads all records from the catalog at path.
func LoadCatalog(ctx context.Context, path string) ([]types.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	c, err := OpenCatalog(path)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.Records(ctx)
}
