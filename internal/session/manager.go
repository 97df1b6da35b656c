package session

import (
	"context"

	"go.uber.org/zap"
)

// Manager owns session state access. The backing store is the sole owner of
// persisted state; the manager never caches it across turns.
type Manager struct {
	store Store
	log   *zap.SugaredLogger
}

func NewManager(store Store, log *zap.SugaredLogger) *Manager {
	return &Manager{
		store: store,
		log:   log,
	}
}

// Load returns the session state, or a fresh default when the session is
// unknown or its stored value cannot be read. Store failures are logged, never
// surfaced: a turn must not fail because the previous state is unreadable.
func (m *Manager) Load(ctx context.Context, sessionID string) *SessionState {
	state, err := m.store.Get(ctx, sessionID)
	if err != nil {
		m.log.Warnw("failed to load session state, starting fresh",
			"sessionId", sessionID, "error", err)
		return NewState()
	}
	if state == nil {
		return NewState()
	}

	normalize(state)
	return state
}

// Save persists the state, resetting the session's expiry window.
func (m *Manager) Save(ctx context.Context, sessionID string, state *SessionState) error {
	return m.store.Set(ctx, sessionID, state)
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

// normalize replaces nil slices from older or partial payloads so the reducers
// and JSON output always see empty sets.
func normalize(state *SessionState) {
	prefs := &state.Preferences
	if prefs.LikedBrands == nil {
		prefs.LikedBrands = []string{}
	}
	if prefs.Colors == nil {
		prefs.Colors = []string{}
	}
	if prefs.Materials == nil {
		prefs.Materials = []string{}
	}
	if prefs.LikedProductIDs == nil {
		prefs.LikedProductIDs = []string{}
	}
	if prefs.DislikedProductIDs == nil {
		prefs.DislikedProductIDs = []string{}
	}
	if prefs.SavedProductIDs == nil {
		prefs.SavedProductIDs = []string{}
	}
	if state.History == nil {
		state.History = []HistoryEntry{}
	}
}
