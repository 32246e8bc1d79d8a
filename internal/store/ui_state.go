package store

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

const uiStateFileName = "ui_state.json"

// UIState stores small TUI preferences restored on relaunch. Best effort:
// callers tolerate missing or invalid data.
type UIState struct {
	Version int `json:"version"`

	FocusedTileID string `json:"focusedTileId,omitempty"`
	DrawerOpen    bool   `json:"drawerOpen,omitempty"`
}

func (s Store) LoadUIState() (*UIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &UIState{Version: 1}, nil
	}
	b, err := os.ReadFile(s.path(uiStateFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &UIState{Version: 1}, nil
		}
		return nil, err
	}
	var st UIState
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupted: treat as missing.
		return &UIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveUIState(st *UIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, "ui_state.json.*.tmp", s.path(uiStateFileName), b, 0o644)
}
