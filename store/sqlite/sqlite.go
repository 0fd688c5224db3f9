/*
Package sqlite provides a SQLite-backed ScenarioStore.

PURPOSE:
  Production persistence for saved input snapshots. In a larger deployment
  the same patterns apply to PostgreSQL - only minor SQL dialect
  differences.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time, better crash
  recovery.

MIGRATION:
  Schema is auto-migrated on New(). For a production rollout, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

USAGE:
  st, err := sqlite.New("./data/growth.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

SEE ALSO:
  - store/store.go: Interface definition
  - store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/growth-engine/store"
)

// Store implements store.ScenarioStore using SQLite.
type Store struct {
	db *sql.DB
}

// Compile-time check.
var _ store.ScenarioStore = (*Store)(nil)

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		payload_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_updated_at
		ON scenarios(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Save(ctx context.Context, sc store.Scenario) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, payload_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			payload_json = excluded.payload_json,
			updated_at = excluded.updated_at`,
		sc.ID, sc.Name, string(sc.Payload), now, now)
	if err != nil {
		return fmt.Errorf("save scenario %s: %w", sc.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (store.Scenario, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, payload_json, created_at, updated_at
		FROM scenarios WHERE id = ?`, id)

	sc, err := scanScenario(row.Scan)
	if err == sql.ErrNoRows {
		return store.Scenario{}, store.ErrScenarioNotFound
	}
	if err != nil {
		return store.Scenario{}, fmt.Errorf("get scenario %s: %w", id, err)
	}
	return sc, nil
}

func (s *Store) List(ctx context.Context) ([]store.Scenario, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, payload_json, created_at, updated_at
		FROM scenarios ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var result []store.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		result = append(result, sc)
	}
	return result, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	return nil
}

func scanScenario(scan func(dest ...any) error) (store.Scenario, error) {
	var sc store.Scenario
	var payload, createdAt, updatedAt string
	if err := scan(&sc.ID, &sc.Name, &payload, &createdAt, &updatedAt); err != nil {
		return store.Scenario{}, err
	}
	sc.Payload = []byte(payload)

	var err error
	if sc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return store.Scenario{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if sc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return store.Scenario{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	return sc, nil
}
