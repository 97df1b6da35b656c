package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stylora/stylist-intent/internal/config"
	"github.com/stylora/stylist-intent/internal/handlers"
	"github.com/stylora/stylist-intent/internal/models"
	"go.uber.org/zap"
)

// NATSTransport serves the same turn contract as the HTTP surface over
// request/reply, for deployments that front the assistant with a message bus.
type NATSTransport struct {
	conn      *nats.Conn
	config    *config.Config
	assistant *handlers.Assistant
	log       *zap.SugaredLogger
}

type natsErrorResponse struct {
	Error string `json:"error"`
}

func NewNATSTransport(cfg *config.Config, assistant *handlers.Assistant, log *zap.SugaredLogger) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Infow("connected to NATS server", "url", cfg.NatsURL)

	return &NATSTransport{
		conn:      conn,
		config:    cfg,
		assistant: assistant,
		log:       log,
	}, nil
}

func (nt *NATSTransport) Start() error {
	_, err := nt.conn.Subscribe(nt.config.NatsRequestSubject, nt.handleTurnRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}

	nt.log.Infow("subscribed to subject", "subject", nt.config.NatsRequestSubject)
	return nil
}

func (nt *NATSTransport) handleTurnRequest(msg *nats.Msg) {
	var request models.TurnRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		nt.log.Warnw("error parsing turn request", "error", err)
		nt.sendErrorResponse(msg, "Invalid request format")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.NatsTimeout)
	defer cancel()

	response, err := nt.assistant.ProcessTurn(ctx, &request)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			nt.sendErrorResponse(msg, validationErr.Message)
			return
		}
		nt.log.Errorw("error processing turn", "error", err)
		nt.sendErrorResponse(msg, "Failed to process query")
		return
	}

	if err := nt.sendResponse(msg, response); err != nil {
		nt.log.Errorw("error sending response", "error", err)
	}
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.TurnResponse) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := msg.Respond(responseData); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (nt *NATSTransport) sendErrorResponse(msg *nats.Msg, message string) {
	responseData, err := json.Marshal(natsErrorResponse{Error: message})
	if err != nil {
		nt.log.Errorw("failed to marshal error response", "error", err)
		return
	}
	if err := msg.Respond(responseData); err != nil {
		nt.log.Errorw("failed to send error response", "error", err)
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		nt.log.Info("NATS connection closed")
	}
	return nil
}
