package segment

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS layout_builds (
	layout_id BIGINT PRIMARY KEY,
	row_count BIGINT NOT NULL
)`

// Store is a DuckDB-backed segment. Build state written here survives the
// process, so a crashed planning session can rebuild its forest and
// re-derive every decision from the same durable state.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the segment database at path. An empty path
// opens an in-memory database, which is useful in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment database %q: %w", path, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize segment schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// MarkBuilt records the layout as materialized with the given row count.
func (s *Store) MarkBuilt(layoutID, rowCount int64) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO layout_builds (layout_id, row_count) VALUES (?, ?)`,
		layoutID, rowCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record build of layout %d: %w", layoutID, err)
	}
	return nil
}

// IsBuilt reports whether the layout has been materialized.
func (s *Store) IsBuilt(layoutID int64) bool {
	_, ok := s.RowCount(layoutID)
	return ok
}

// RowCount returns the recorded row count, and whether the layout was
// built at all. A point query on the primary key only fails when the
// database itself is broken; that is indistinguishable from "not built"
// for the caller, who will fail the layer either way.
func (s *Store) RowCount(layoutID int64) (int64, bool) {
	var rows int64
	err := s.db.QueryRow(
		`SELECT row_count FROM layout_builds WHERE layout_id = ?`, layoutID,
	).Scan(&rows)
	if err != nil {
		return 0, false
	}
	return rows, true
}
