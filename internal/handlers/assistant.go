package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stylora/stylist-intent/internal/catalog"
	"github.com/stylora/stylist-intent/internal/models"
	"github.com/stylora/stylist-intent/internal/query"
	"github.com/stylora/stylist-intent/internal/ranking"
	"github.com/stylora/stylist-intent/internal/respond"
	"github.com/stylora/stylist-intent/internal/session"
	"go.uber.org/zap"
)

const (
	defaultQuantity = 4
	minQuantity     = 1
	maxQuantity     = 5
)

// Assistant runs the per-turn pipeline: extract filters, match the catalog,
// rank by preference, compose the reply, and persist the evolved session.
type Assistant struct {
	catalog   *catalog.Catalog
	extractor *query.Extractor
	sessions  *session.Manager
	validate  *validator.Validate
	log       *zap.SugaredLogger
}

func NewAssistant(cat *catalog.Catalog, extractor *query.Extractor, sessions *session.Manager, log *zap.SugaredLogger) *Assistant {
	return &Assistant{
		catalog:   cat,
		extractor: extractor,
		sessions:  sessions,
		validate:  validator.New(),
		log:       log,
	}
}

// ProcessTurn handles one chat message. The session state is saved once, at
// the end; a failing turn persists nothing.
func (a *Assistant) ProcessTurn(ctx context.Context, req *models.TurnRequest) (*models.TurnResponse, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, models.NewValidationError("Message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state := a.sessions.Load(ctx, sessionID)
	result := a.extractor.Extract(ctx, req.Message)
	session.ApplyFilters(state, result.Filters)

	matching := a.catalog.Filter(result.Filters)
	if len(matching) == 0 {
		// Prefer unfiltered-but-preference-ranked results over an empty reply.
		matching = a.catalog.Products()
	}
	ranked := ranking.Rank(matching, state.Preferences)

	quantity := clampQuantity(result.Meta.Quantity)
	if quantity > len(ranked) {
		quantity = len(ranked)
	}

	topPicks := make([]models.ProductSummary, 0, quantity)
	responseIDs := make([]string, 0, quantity)
	for _, p := range ranked[:quantity] {
		topPicks = append(topPicks, models.Summarize(p))
		responseIDs = append(responseIDs, p.ID)
	}

	message := respond.Compose(result.Filters, topPicks)

	session.AppendHistory(state, session.HistoryEntry{
		Timestamp:          time.Now().UTC(),
		UserMessage:        req.Message,
		Filters:            result.Filters,
		ResponseProductIDs: responseIDs,
	})

	if err := a.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save session state: %w", err)
	}

	return &models.TurnResponse{
		SessionID:   sessionID,
		Message:     message,
		Products:    topPicks,
		Filters:     result.Filters,
		Suggestions: respond.Suggestions(result.Filters),
	}, nil
}

func clampQuantity(quantity int) int {
	if quantity <= 0 {
		quantity = defaultQuantity
	}
	if quantity < minQuantity {
		return minQuantity
	}
	if quantity > maxQuantity {
		return maxQuantity
	}
	return quantity
}

// FeedbackResponse echoes the preferences after a feedback action.
type FeedbackResponse struct {
	Success     bool                    `json:"success"`
	Preferences session.PreferenceState `json:"preferences"`
}

// ProcessFeedback applies one explicit like/dislike/save action. Invalid input
// is rejected before any state is read or written.
func (a *Assistant) ProcessFeedback(ctx context.Context, req *models.FeedbackRequest) (*FeedbackResponse, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, feedbackValidationError(err)
	}

	state := a.sessions.Load(ctx, req.SessionID)
	if err := session.ApplyFeedback(state, req.ProductID, req.Action); err != nil {
		return nil, err
	}

	if err := a.sessions.Save(ctx, req.SessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save session state: %w", err)
	}

	return &FeedbackResponse{
		Success:     true,
		Preferences: state.Preferences,
	}, nil
}

func feedbackValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			if fieldError.Tag() == "oneof" {
				return models.NewValidationError("Unsupported feedback action")
			}
		}
	}
	return models.NewValidationError("sessionId, productId and action are required")
}

// WishlistResponse lists the saved products still present in the catalog.
type WishlistResponse struct {
	Items []models.ProductSummary `json:"items"`
}

// Wishlist resolves the session's saved product ids against the catalog.
// Reading does not renew the session's expiry.
func (a *Assistant) Wishlist(ctx context.Context, sessionID string) (*WishlistResponse, error) {
	if sessionID == "" {
		return nil, models.NewValidationError("sessionId is required")
	}

	state := a.sessions.Load(ctx, sessionID)

	items := []models.ProductSummary{}
	for _, id := range state.Preferences.SavedProductIDs {
		if p, ok := a.catalog.Get(id); ok {
			items = append(items, models.Summarize(p))
		}
	}

	return &WishlistResponse{Items: items}, nil
}

// PreferencesResponse exposes the raw session state to the caller.
type PreferencesResponse struct {
	Preferences session.PreferenceState `json:"preferences"`
	History     []session.HistoryEntry  `json:"history"`
}

// Preferences returns the session's accumulated preferences and history.
func (a *Assistant) Preferences(ctx context.Context, sessionID string) (*PreferencesResponse, error) {
	if sessionID == "" {
		return nil, models.NewValidationError("sessionId is required")
	}

	state := a.sessions.Load(ctx, sessionID)

	return &PreferencesResponse{
		Preferences: state.Preferences,
		History:     state.History,
	}, nil
}
