package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylora/stylist-intent/internal/catalog"
	"github.com/stylora/stylist-intent/internal/models"
	"github.com/stylora/stylist-intent/internal/query"
	"github.com/stylora/stylist-intent/internal/session"
	"go.uber.org/zap"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Product{
		{ID: "p1", Title: "Beige Mesh Sneakers", Brand: "Aurelle", Color: "Beige", Material: "Mesh", Category: "Sneakers", Gender: "unisex", SizeOptions: []string{"UK8"}, Price: 1899, Currency: "INR"},
		{ID: "p2", Title: "White Cotton Kurta", Brand: "Vastraa", Color: "White", Material: "Cotton", Category: "Kurta", Gender: "women", SizeOptions: []string{"M", "L"}, Price: 1499, Currency: "INR"},
		{ID: "p3", Title: "Beige Canvas Sneakers", Brand: "Strydr", Color: "Beige", Material: "Cotton", Category: "Sneakers", Gender: "unisex", SizeOptions: []string{"UK7"}, Price: 1599, Currency: "INR"},
		{ID: "p4", Title: "Red Silk Kurta", Brand: "Vastraa", Color: "Red", Material: "Silk", Category: "Kurta", Gender: "women", SizeOptions: []string{"S", "M"}, Price: 2799, Currency: "INR"},
		{ID: "p5", Title: "Beige Leather Sneakers", Brand: "Marlowe", Color: "Beige", Material: "Leather", Category: "Sneakers", Gender: "men", SizeOptions: []string{"UK9"}, Price: 3499, Currency: "INR"},
	})
}

func newTestAssistant() (*Assistant, *session.MemoryStore) {
	store := session.NewMemoryStore()
	log := zap.NewNop().Sugar()
	sessions := session.NewManager(store, log)
	extractor := query.NewExtractor(nil, log)
	return NewAssistant(testCatalog(), extractor, sessions, log), store
}

func TestProcessTurnBeigeSneakersUnderBudget(t *testing.T) {
	a, _ := newTestAssistant()

	res, err := a.ProcessTurn(context.Background(), &models.TurnRequest{
		SessionID: "s1",
		Message:   "beige sneakers under ₹2000",
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", res.SessionID)
	assert.Equal(t, "beige", res.Filters.Color)
	assert.Equal(t, "sneakers", res.Filters.Category)
	require.NotNil(t, res.Filters.Budget)
	require.NotNil(t, res.Filters.Budget.Max)
	assert.Equal(t, float64(2000), *res.Filters.Budget.Max)

	// p1 and p3 match; no preference signals yet, so catalog order holds.
	require.Len(t, res.Products, 2)
	assert.Equal(t, "p1", res.Products[0].ID)
	assert.Equal(t, "p3", res.Products[1].ID)

	assert.Contains(t, res.Message.Text, "beige")
	assert.Contains(t, res.Message.Text, "sneakers")
	assert.NotEmpty(t, res.Message.FollowUp)
	assert.LessOrEqual(t, len(res.Suggestions), 3)
}

func TestProcessTurnMintsSessionID(t *testing.T) {
	a, store := newTestAssistant()

	res, err := a.ProcessTurn(context.Background(), &models.TurnRequest{Message: "kurta"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, 1, store.Len())
}

func TestProcessTurnMissingMessage(t *testing.T) {
	a, store := newTestAssistant()

	_, err := a.ProcessTurn(context.Background(), &models.TurnRequest{SessionID: "s1"})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, store.Len(), "failed turns persist nothing")
}

func TestProcessTurnFallsBackToFullCatalogOnEmptyMatch(t *testing.T) {
	a, _ := newTestAssistant()

	// "saree" is in the category vocabulary but not in this catalog.
	res, err := a.ProcessTurn(context.Background(), &models.TurnRequest{
		SessionID: "s1",
		Message:   "pink saree",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Products, "empty match must fall back to the ranked catalog")
	assert.Len(t, res.Products, 4, "default quantity")
}

func TestProcessTurnQuantityClamp(t *testing.T) {
	a, _ := newTestAssistant()

	res, err := a.ProcessTurn(context.Background(), &models.TurnRequest{
		SessionID: "s1",
		Message:   "show me 9 options",
	})
	require.NoError(t, err)
	assert.Len(t, res.Products, 5, "quantity is clamped to 5")

	res, err = a.ProcessTurn(context.Background(), &models.TurnRequest{
		SessionID: "s1",
		Message:   "2 options please",
	})
	require.NoError(t, err)
	assert.Len(t, res.Products, 2)
}

func TestProcessTurnPreferencesCarryAcrossTurns(t *testing.T) {
	a, _ := newTestAssistant()
	ctx := context.Background()

	_, err := a.ProcessTurn(ctx, &models.TurnRequest{SessionID: "s1", Message: "red kurta"})
	require.NoError(t, err)

	// Second turn has no color, but the remembered "red" must outrank the
	// catalog-ordered white kurta.
	res, err := a.ProcessTurn(ctx, &models.TurnRequest{SessionID: "s1", Message: "kurta"})
	require.NoError(t, err)

	assert.Empty(t, res.Filters.Color)
	require.NotEmpty(t, res.Products)
	assert.Equal(t, "p4", res.Products[0].ID)
}

func TestProcessTurnRecordsHistory(t *testing.T) {
	a, _ := newTestAssistant()
	ctx := context.Background()

	_, err := a.ProcessTurn(ctx, &models.TurnRequest{SessionID: "s1", Message: "beige sneakers under ₹2000"})
	require.NoError(t, err)

	prefs, err := a.Preferences(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, prefs.History, 1)
	assert.Equal(t, "beige sneakers under ₹2000", prefs.History[0].UserMessage)
	assert.Equal(t, []string{"p1", "p3"}, prefs.History[0].ResponseProductIDs)
}

func TestProcessFeedbackLikeThenDislike(t *testing.T) {
	a, _ := newTestAssistant()
	ctx := context.Background()

	res, err := a.ProcessFeedback(ctx, &models.FeedbackRequest{SessionID: "s1", ProductID: "p1", Action: "like"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"p1"}, res.Preferences.LikedProductIDs)

	res, err = a.ProcessFeedback(ctx, &models.FeedbackRequest{SessionID: "s1", ProductID: "p1", Action: "dislike"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, res.Preferences.DislikedProductIDs)
	assert.Empty(t, res.Preferences.LikedProductIDs)
}

func TestProcessFeedbackInvalidActionWritesNothing(t *testing.T) {
	a, store := newTestAssistant()

	_, err := a.ProcessFeedback(context.Background(), &models.FeedbackRequest{
		SessionID: "s1",
		ProductID: "p1",
		Action:    "bogus",
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Unsupported feedback action", validationErr.Message)
	assert.Equal(t, 0, store.Len(), "store must not be written on invalid input")
}

func TestProcessFeedbackMissingFields(t *testing.T) {
	a, _ := newTestAssistant()

	_, err := a.ProcessFeedback(context.Background(), &models.FeedbackRequest{SessionID: "s1"})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDislikedProductsAreExcludedFromResults(t *testing.T) {
	a, _ := newTestAssistant()
	ctx := context.Background()

	_, err := a.ProcessFeedback(ctx, &models.FeedbackRequest{SessionID: "s1", ProductID: "p1", Action: "dislike"})
	require.NoError(t, err)

	res, err := a.ProcessTurn(ctx, &models.TurnRequest{SessionID: "s1", Message: "beige sneakers"})
	require.NoError(t, err)

	for _, p := range res.Products {
		assert.NotEqual(t, "p1", p.ID)
	}
}

func TestWishlistResolvesSavedProducts(t *testing.T) {
	a, _ := newTestAssistant()
	ctx := context.Background()

	_, err := a.ProcessFeedback(ctx, &models.FeedbackRequest{SessionID: "s1", ProductID: "p2", Action: "save"})
	require.NoError(t, err)

	wishlist, err := a.Wishlist(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "p2", wishlist.Items[0].ID)
}

func TestWishlistRequiresSessionID(t *testing.T) {
	a, _ := newTestAssistant()

	_, err := a.Wishlist(context.Background(), "")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
