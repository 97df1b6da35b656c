package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/stylora/stylist-intent/internal/catalog"
	"github.com/stylora/stylist-intent/internal/config"
	"github.com/stylora/stylist-intent/internal/handlers"
	"github.com/stylora/stylist-intent/internal/payment"
	"github.com/stylora/stylist-intent/internal/query"
	"github.com/stylora/stylist-intent/internal/session"
	"github.com/stylora/stylist-intent/internal/transport"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg := config.Load()
	log.Infow("starting stylist intent service",
		"service", cfg.ServiceName, "port", cfg.Port)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalw("failed to load product catalog", "path", cfg.CatalogPath, "error", err)
	}
	log.Infow("catalog loaded", "products", cat.Len())

	store, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	defer store.Close()
	log.Info("Redis connected")

	sessions := session.NewManager(store, log)

	var parser query.LLMParser
	if cfg.OpenAIAPIKey != "" {
		openAIParser, err := query.NewOpenAIParser(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
		if err != nil {
			log.Warnw("LLM parser unavailable, using heuristics only", "error", err)
		} else {
			parser = openAIParser
			log.Infow("OpenAI parser initialized", "model", cfg.OpenAIModel)
		}
	} else {
		log.Info("OPENAI_API_KEY not set, using heuristic extraction only")
	}
	extractor := query.NewExtractor(parser, log)

	assistant := handlers.NewAssistant(cat, extractor, sessions, log)

	payments := payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, log)
	if !payments.Configured() {
		log.Info("Razorpay credentials not set, payment endpoint disabled")
	}

	server := transport.NewHTTPServer(cfg, assistant, payments, log)

	if cfg.NatsURL != "" {
		natsTransport, err := transport.NewNATSTransport(cfg, assistant, log)
		if err != nil {
			log.Fatalw("failed to initialize NATS transport", "error", err)
		}
		defer natsTransport.Close()

		if err := natsTransport.Start(); err != nil {
			log.Fatalw("failed to start NATS transport", "error", err)
		}
	}

	go func() {
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Fatalw("HTTP server stopped", "error", err)
		}
	}()
	log.Infow("HTTP server listening", "port", cfg.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("shutting down gracefully", "signal", sig.String())

	if err := server.Shutdown(); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
}
