package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"statusdeck/internal/model"
)

const (
	settingsFileName = "settings.json"

	// LayoutSettingKey is the settings.json entry holding the layout state.
	// Other keys belong to other setting types and are preserved on save.
	LayoutSettingKey = "layouttype"
)

// SettingsFile stores the layout state under LayoutSettingKey in
// <dir>/settings.json.
type SettingsFile struct {
	Store Store
}

func (s Store) SettingsFile() SettingsFile {
	return SettingsFile{Store: s}
}

func (f SettingsFile) Path() string {
	return f.Store.path(settingsFileName)
}

func (f SettingsFile) readAll() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(f.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", settingsFileName, err)
	}
	return m, nil
}

// Load returns (nil, nil) when the file or the layout key is absent.
func (f SettingsFile) Load(ctx context.Context) (*model.LayoutState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(f.Store.Dir) == "" {
		return nil, nil
	}
	m, err := f.readAll()
	if err != nil {
		return nil, err
	}
	raw, ok := m[LayoutSettingKey]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var st model.LayoutState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", settingsFileName, LayoutSettingKey, err)
	}
	return &st, nil
}

// Save rewrites the layout key. A settings file that cannot be parsed is kept
// as settings.json.bak and replaced.
func (f SettingsFile) Save(ctx context.Context, st model.LayoutState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(f.Store.Dir) == "" {
		return nil
	}
	if err := f.Store.Ensure(); err != nil {
		return err
	}
	path := f.Path()

	m, err := f.readAll()
	if err != nil {
		if prev, rerr := os.ReadFile(path); rerr == nil && len(prev) > 0 {
			_ = atomicWriteFile(f.Store.Dir, "settings.json.bak.*.tmp", path+".bak", prev, 0o644)
		}
		m = nil
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m[LayoutSettingKey] = raw

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(f.Store.Dir, "settings.json.*.tmp", path, b, 0o644)
}
