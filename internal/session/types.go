package session

import (
	"context"
	"time"

	"github.com/stylora/stylist-intent/internal/models"
)

// PreferenceState is the per-session accumulated taste signal. It only ever
// grows (append-unique sets), except for the like/dislike exclusion rules and
// the price range, whose bounds are replaced by the most recent explicit
// constraint.
type PreferenceState struct {
	LikedBrands        []string      `json:"likedBrands"`
	Colors             []string      `json:"colors"`
	Materials          []string      `json:"materials"`
	LikedProductIDs    []string      `json:"likedProductIds"`
	DislikedProductIDs []string      `json:"dislikedProductIds"`
	SavedProductIDs    []string      `json:"savedProductIds"`
	PriceRange         models.Budget `json:"priceRange"`
}

// HistoryEntry records one completed turn.
type HistoryEntry struct {
	Timestamp          time.Time           `json:"timestamp"`
	UserMessage        string              `json:"userMessage"`
	Filters            models.QueryFilters `json:"filters"`
	ResponseProductIDs []string            `json:"responseProductIds"`
}

// SessionState is everything remembered about one session.
type SessionState struct {
	Preferences PreferenceState `json:"preferences"`
	History     []HistoryEntry  `json:"history"`
}

// NewState returns the empty default state used for unknown sessions.
func NewState() *SessionState {
	return &SessionState{
		Preferences: PreferenceState{
			LikedBrands:        []string{},
			Colors:             []string{},
			Materials:          []string{},
			LikedProductIDs:    []string{},
			DislikedProductIDs: []string{},
			SavedProductIDs:    []string{},
		},
		History: []HistoryEntry{},
	}
}

// Store defines the interface for session storage. This allows us to swap
// between Redis and an in-memory store for tests.
type Store interface {
	// Get loads a session; (nil, nil) when the session does not exist.
	Get(ctx context.Context, sessionID string) (*SessionState, error)

	// Set persists a session, resetting its expiry window.
	Set(ctx context.Context, sessionID string, state *SessionState) error

	// Close releases the underlying connection.
	Close() error
}
