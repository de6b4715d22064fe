package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tiktok-shop/pkg/config"
	"tiktok-shop/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LedgerExchange   = "ledger"
	LedgerEventQueue = "ledger_events"
)

// Routing keys published on the ledger exchange.
const (
	WithdrawalRequested = "withdrawal.requested"
	WithdrawalApproved  = "withdrawal.approved"
	WithdrawalRejected  = "withdrawal.rejected"
	WalletAdjusted      = "wallet.adjusted"
	OrderStatusChanged  = "order.status_changed"
)

var bindingKeys = []string{"withdrawal.*", "wallet.*", "order.*"}

// Event is the JSON envelope of every message on the ledger exchange.
type Event struct {
	Type       string                 `json:"type"`
	UserID     string                 `json:"user_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewEvent(eventType, userID string, payload map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// ErrMalformed marks an event a handler can never process. Dispatch drops it instead of requeueing.
var ErrMalformed = errors.New("malformed event")

// Handler processes one event. Returning an error requeues the message unless it wraps ErrMalformed.
type Handler func(ctx context.Context, event Event) error

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		LedgerExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LedgerEventQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range bindingKeys {
		if err := channel.QueueBind(LedgerEventQueue, key, LedgerExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue to %s: %w", key, err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends event to the ledger exchange using its type as routing key.
func (c *Client) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.PublishWithContext(ctx,
		LedgerExchange, // exchange
		event.Type,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", LedgerExchange, event.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s for user %s", event.Type, event.UserID)
	return nil
}

// Consume delivers ledger events to handler until ctx is cancelled or the channel closes.
func (c *Client) Consume(ctx context.Context, handler Handler) error {
	msgs, err := c.channel.Consume(
		LedgerEventQueue, // queue
		"",               // consumer
		false,            // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", LedgerEventQueue)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			Dispatch(ctx, msg.Body, msg, handler, c.logger)
		}
	}
}

// Acknowledger is the part of amqp.Delivery that Dispatch settles.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Dispatch decodes one message body and settles it. Malformed bodies are dropped
// and handler failures are requeued. Payload numbers arrive as json.Number.
func Dispatch(ctx context.Context, body []byte, ack Acknowledger, handler Handler, log *logger.Logger) {
	var event Event
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil || event.Type == "" {
		log.Error("[RABBITMQ] Dropping malformed message: %v, body=%s", err, string(body))
		ack.Nack(false, false)
		return
	}

	if err := handler(ctx, event); err != nil {
		requeue := !errors.Is(err, ErrMalformed)
		log.Error("[RABBITMQ] Handler failed for %s (requeue=%t): %v", event.Type, requeue, err)
		ack.Nack(false, requeue)
		return
	}

	ack.Ack(false)
}
