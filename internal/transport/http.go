package transport

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stylora/stylist-intent/internal/config"
	"github.com/stylora/stylist-intent/internal/handlers"
	"github.com/stylora/stylist-intent/internal/models"
	"github.com/stylora/stylist-intent/internal/payment"
	"go.uber.org/zap"
)

// HTTPServer exposes the assistant over HTTP.
type HTTPServer struct {
	app       *fiber.App
	assistant *handlers.Assistant
	payments  *payment.Client
	log       *zap.SugaredLogger
	started   time.Time
}

func NewHTTPServer(cfg *config.Config, assistant *handlers.Assistant, payments *payment.Client, log *zap.SugaredLogger) *HTTPServer {
	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	s := &HTTPServer{
		app:       app,
		assistant: assistant,
		payments:  payments,
		log:       log,
		started:   time.Now(),
	}
	s.registerRoutes()
	return s
}

func (s *HTTPServer) registerRoutes() {
	api := s.app.Group("/api")
	api.Post("/chat", s.handleChat)
	api.Post("/feedback", s.handleFeedback)
	api.Get("/wishlist", s.handleWishlist)
	api.Get("/preferences", s.handlePreferences)
	api.Post("/payment/create-order", s.handleCreateOrder)

	s.app.Get("/health", s.handleHealth)
}

// App exposes the underlying fiber app for in-process testing.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

func (s *HTTPServer) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *HTTPServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *HTTPServer) handleChat(ctx *fiber.Ctx) error {
	var req models.TurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	res, err := s.assistant.ProcessTurn(ctx.Context(), &req)
	if err != nil {
		return s.sendError(ctx, err, "Failed to process query")
	}
	return ctx.JSON(res)
}

func (s *HTTPServer) handleFeedback(ctx *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	res, err := s.assistant.ProcessFeedback(ctx.Context(), &req)
	if err != nil {
		return s.sendError(ctx, err, "Failed to update feedback")
	}
	return ctx.JSON(res)
}

func (s *HTTPServer) handleWishlist(ctx *fiber.Ctx) error {
	res, err := s.assistant.Wishlist(ctx.Context(), ctx.Query("sessionId"))
	if err != nil {
		return s.sendError(ctx, err, "Failed to fetch wishlist")
	}
	return ctx.JSON(res)
}

func (s *HTTPServer) handlePreferences(ctx *fiber.Ctx) error {
	res, err := s.assistant.Preferences(ctx.Context(), ctx.Query("sessionId"))
	if err != nil {
		return s.sendError(ctx, err, "Failed to fetch preferences")
	}
	return ctx.JSON(res)
}

func (s *HTTPServer) handleCreateOrder(ctx *fiber.Ctx) error {
	if !s.payments.Configured() {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Razorpay is not configured",
		})
	}

	var req payment.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Amount <= 0 {
		return badRequest(ctx, "amount is required")
	}

	order, err := s.payments.CreateOrder(&req)
	if err != nil {
		return s.sendError(ctx, err, "Failed to create payment order")
	}
	return ctx.JSON(fiber.Map{"order": order})
}

func (s *HTTPServer) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(s.started).Seconds(),
	})
}

// sendError maps validation errors to a 400 with their message; everything
// else is logged and reported as a generic failure so callers never see raw
// internal errors.
func (s *HTTPServer) sendError(ctx *fiber.Ctx, err error, generic string) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return badRequest(ctx, validationErr.Message)
	}

	s.log.Errorw("request failed", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": generic})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
