package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore implements Store in process memory. Values are stored as JSON so
// reads return copies with the same shape Redis would hand back.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	m.mu.RLock()
	data, ok := m.data[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse session data: %w", err)
	}
	return &state, nil
}

func (m *MemoryStore) Set(ctx context.Context, sessionID string, state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	m.mu.Lock()
	m.data[sessionID] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Put stores a raw value, bypassing serialization. Used to simulate corrupt
// session data.
func (m *MemoryStore) Put(sessionID string, data []byte) {
	m.mu.Lock()
	m.data[sessionID] = data
	m.mu.Unlock()
}
