package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/simaogato/lendflow-backend/internal/config"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"go.uber.org/zap"
)

// EventTypeLoanDisbursed identifies the event published after a disbursement commits
const EventTypeLoanDisbursed = "loan.disbursed"

// DisbursedEvent is the JSON body published for every disbursement notice
type DisbursedEvent struct {
	EventType  string                    `json:"eventType"`
	OccurredAt time.Time                 `json:"occurredAt"`
	Notice     domain.DisbursementNotice `json:"notice"`
}

// publisher is the part of *amqp.Channel the notifier uses
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQPublisher delivers disbursement notices to a topic exchange.
type RabbitMQPublisher struct {
	conn       *amqp.Connection
	channel    publisher
	exchange   string
	routingKey string
	logger     *zap.Logger
	now        func() time.Time
}

// NewRabbitMQPublisher connects to RabbitMQ and declares the exchange
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info("RabbitMQ publisher initialized",
		zap.String("exchange", cfg.Exchange),
		zap.String("routing_key", cfg.RoutingKey),
	)

	p := newRabbitMQPublisher(channel, cfg.Exchange, cfg.RoutingKey, logger)
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(channel publisher, exchange, routingKey string, logger *zap.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
		now:        time.Now,
	}
}

// NotifyDisbursement implements domain.DisbursementNotifier
func (p *RabbitMQPublisher) NotifyDisbursement(ctx context.Context, notice domain.DisbursementNotice) error {
	body, err := json.Marshal(DisbursedEvent{
		EventType:  EventTypeLoanDisbursed,
		OccurredAt: p.now().UTC(),
		Notice:     notice,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    notice.DisbursementNumber,
			Type:         EventTypeLoanDisbursed,
			Timestamp:    p.now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", notice.DisbursementNumber, err)
	}

	p.logger.Debug("published disbursement event", zap.String("disbursement_number", notice.DisbursementNumber))
	return nil
}

// Close closes the channel and the connection
func (p *RabbitMQPublisher) Close() error {
	if closer, ok := p.channel.(interface{ Close() error }); ok {
		closer.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
