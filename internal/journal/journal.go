// Package journal records to-do change events into a sqlite file for later
// inspection. It is a write-only trace: nothing here is ever replayed into the
// to-do state, so a restart still begins with an empty list.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"todo-cli/internal/model"
	"todo-cli/internal/todo"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one stored event.
type Record struct {
	Seq       int64        `json:"seq"`
	SessionID string       `json:"sessionId"`
	Kind      string       `json:"kind"`
	ItemID    string       `json:"itemId,omitempty"`
	Title     string       `json:"title,omitempty"`
	Completed bool         `json:"completed"`
	Filter    model.Filter `json:"filter"`
	At        time.Time    `json:"at"`
}

type Journal struct {
	db        *sql.DB
	sessionID string
	log       *slog.Logger
}

// Open opens (creating if needed) the trace database at path.
func Open(ctx context.Context, path string, log *slog.Logger) (*Journal, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	j := &Journal{
		db:        db,
		sessionID: "sess-" + uuid.NewString(),
		log:       log,
	}
	log.Info("trace opened", "path", path, "session", j.sessionID)
	return j, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			item_id TEXT NOT NULL,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL,
			filter TEXT NOT NULL,
			at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (j *Journal) SessionID() string { return j.sessionID }

func (j *Journal) Append(ctx context.Context, ev todo.Event) error {
	completed := 0
	if ev.Item.Completed {
		completed = 1
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO events(session_id, kind, item_id, title, completed, filter, at_unixms) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID, string(ev.Kind), ev.ID, ev.Item.Title, completed, string(ev.Filter), ev.At.UnixMilli(),
	)
	return err
}

// Listener adapts the journal to todo.State.OnChange. Write failures are logged, never returned.
func (j *Journal) Listener(ctx context.Context) todo.Listener {
	return func(ev todo.Event) {
		if err := j.Append(ctx, ev); err != nil {
			j.log.Warn("trace append failed", "kind", string(ev.Kind), "id", ev.ID, "err", err.Error())
		}
	}
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Read returns up to limit most recent records from the trace at path, oldest first.
// limit <= 0 means no limit.
func Read(ctx context.Context, path string, limit int) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("trace not found: %s", path)
		}
		return nil, err
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT seq, session_id, kind, item_id, title, completed, filter, at_unixms FROM events ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r         Record
			completed int
			filter    string
			atMS      int64
		)
		if err := rows.Scan(&r.Seq, &r.SessionID, &r.Kind, &r.ItemID, &r.Title, &completed, &filter, &atMS); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		r.Filter = model.Filter(filter)
		r.At = time.UnixMilli(atMS).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}
	return out, nil
}
