package models

// Product is one catalog entry. The catalog is loaded once at process start
// and never mutated.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Color       string   `json:"color"`
	Material    string   `json:"material"`
	Fabric      string   `json:"fabric,omitempty"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender,omitempty"` // "men", "women", "unisex" or empty
	SizeOptions []string `json:"sizeOptions"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Thumbnail   string   `json:"thumbnail"`
	ProductURL  string   `json:"productUrl"`
	Description string   `json:"description,omitempty"`
}

// Budget holds price bounds. A nil bound is unconstrained, not zero.
type Budget struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// QueryFilters is the structured intent extracted from one free-text message.
// Every field is optional; an absent field means "no constraint", never
// "match nothing".
type QueryFilters struct {
	Category string   `json:"category,omitempty"`
	Color    string   `json:"color,omitempty"`
	Material string   `json:"material,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Budget   *Budget  `json:"budget,omitempty"`
	Size     []string `json:"size,omitempty"`
}

// QueryMeta carries extraction details that are not product constraints.
type QueryMeta struct {
	Quantity int `json:"quantity,omitempty"`
}

// ProductSummary is the product shape returned to callers.
type ProductSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Color       string   `json:"color"`
	SizeOptions []string `json:"sizeOptions"`
	Material    string   `json:"material"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Thumbnail   string   `json:"thumbnail"`
	ProductURL  string   `json:"productUrl"`
	Description string   `json:"description,omitempty"`
	Fabric      string   `json:"fabric,omitempty"`
}

// Summarize converts a catalog product into its caller-facing shape.
func Summarize(p Product) ProductSummary {
	return ProductSummary{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Color:       p.Color,
		SizeOptions: p.SizeOptions,
		Material:    p.Material,
		Price:       p.Price,
		Currency:    p.Currency,
		Thumbnail:   p.Thumbnail,
		ProductURL:  p.ProductURL,
		Description: p.Description,
		Fabric:      p.Fabric,
	}
}

// AssistantMessage is the synthesized reply for one turn.
type AssistantMessage struct {
	Text     string `json:"text"`
	FollowUp string `json:"followUp,omitempty"`
}

// TurnRequest is one incoming chat message.
type TurnRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" validate:"required"`
}

// TurnResponse is the full reply for one turn.
type TurnResponse struct {
	SessionID   string           `json:"sessionId"`
	Message     AssistantMessage `json:"message"`
	Products    []ProductSummary `json:"products"`
	Filters     QueryFilters     `json:"filters"`
	Suggestions []string         `json:"suggestions"`
}

// Feedback actions accepted from callers. Anything else is invalid input.
const (
	ActionLike       = "like"
	ActionDislike    = "dislike"
	ActionSave       = "save"
	ActionRemoveSave = "remove-save"
)

// FeedbackRequest records an explicit like/dislike/save signal.
type FeedbackRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=like dislike save remove-save"`
}
