// Package history keeps a SQLite journal of plugin runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/arrhook/internal/migrations"
	_ "modernc.org/sqlite"
)

// Record is one plugin job.
type Record struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	Plugin       string    `json:"plugin"`
	Backend      string    `json:"backend"`
	OriginalFile string    `json:"original_file"`
	CurrentFile  string    `json:"current_file,omitempty"`
	Output       int       `json:"output"` // 0 when the job failed
	EntityID     int64     `json:"entity_id,omitempty"`
	Season       int       `json:"season,omitempty"`
	Episode      int       `json:"episode,omitempty"`
	NewPath      string    `json:"new_path,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Filter specifies criteria for listing records.
type Filter struct {
	Plugin string
	RunID  string
	Limit  int
}

// Store persists records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal at path and migrates it.
// ":memory:" gives a private in-memory journal.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	// One writer; also keeps ":memory:" on a single database.
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history %s: %w", path, err)
	}
	return NewStore(db), nil
}

// NewStore wraps an already migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a record, setting its ID and CreatedAt.
func (s *Store) Add(ctx context.Context, r *Record) error {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO history (run_id, plugin, backend, original_file, current_file, output,
			entity_id, season, episode, new_path, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Plugin, r.Backend, r.OriginalFile, r.CurrentFile, r.Output,
		r.EntityID, r.Season, r.Episode, r.NewPath, r.Error, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	r.ID = id
	r.CreatedAt = now
	return nil
}

// List returns records matching the filter, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]*Record, error) {
	var conditions []string
	var args []any

	if f.Plugin != "" {
		conditions = append(conditions, "plugin = ?")
		args = append(args, f.Plugin)
	}
	if f.RunID != "" {
		conditions = append(conditions, "run_id = ?")
		args = append(args, f.RunID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, run_id, plugin, backend, original_file, current_file, output,
		entity_id, season, episode, new_path, error, created_at
		FROM history ` + whereClause + ` ORDER BY id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(&r.ID, &r.RunID, &r.Plugin, &r.Backend, &r.OriginalFile, &r.CurrentFile,
			&r.Output, &r.EntityID, &r.Season, &r.Episode, &r.NewPath, &r.Error, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
