package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"statusdeck/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "state.sqlite"

// SQLiteState stores each setting type as one row of the settings table in
// <dir>/state.sqlite. The layout lives under LayoutSettingKey, matching the
// JSON file layout.
type SQLiteState struct {
	Store Store
}

func (s Store) SQLiteState() SQLiteState {
	return SQLiteState{Store: s}
}

func (q SQLiteState) Path() string {
	return q.Store.path(sqliteFileName)
}

func (q SQLiteState) open(ctx context.Context) (*sql.DB, error) {
	if err := q.Store.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", q.Path())
	if err != nil {
		return nil, err
	}
	// WAL lets the CLI read while a TUI process writes.
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
	if err := migrateSettings(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSettings(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load returns (nil, nil) when no layout row exists.
func (q SQLiteState) Load(ctx context.Context) (*model.LayoutState, error) {
	if strings.TrimSpace(q.Store.Dir) == "" {
		return nil, nil
	}
	db, err := q.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM settings WHERE k = ?`, LayoutSettingKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st model.LayoutState
	if err := json.Unmarshal([]byte(v), &st); err != nil {
		return nil, fmt.Errorf("%s settings[%s]: %w", sqliteFileName, LayoutSettingKey, err)
	}
	return &st, nil
}

func (q SQLiteState) Save(ctx context.Context, st model.LayoutState) error {
	if strings.TrimSpace(q.Store.Dir) == "" {
		return nil
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	db, err := q.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		LayoutSettingKey, string(b), time.Now().UTC().UnixMilli(),
	)
	return err
}

// UpdatedAt reports when the layout row was last written.
func (q SQLiteState) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	db, err := q.open(ctx)
	if err != nil {
		return time.Time{}, false, err
	}
	defer db.Close()

	var ms int64
	err = db.QueryRowContext(ctx, `SELECT updated_at_unixms FROM settings WHERE k = ?`, LayoutSettingKey).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(ms).UTC(), true, nil
}
