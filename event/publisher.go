package event

import (
	"context"
	"fmt"
	"time"

	"go-finance-api/logger"
	"go-finance-api/metrics"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

type publishChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher announces stale views on a topic exchange. It satisfies the
// service layer's ViewInvalidator.
type Publisher struct {
	conn     *amqp091.Connection
	channel  publishChannel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(channel, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(channel publishChannel, exchange string) (*Publisher, error) {
	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{channel: channel, exchange: exchange}, nil
}

// Publish sends one views-invalidated message.
func (p *Publisher) Publish(ctx context.Context, msg *ViewsInvalidatedMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, ViewsInvalidatedRoutingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.ID.String(),
		Timestamp:    msg.Timestamp,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// InvalidateViews publishes the notification and only logs failures.
func (p *Publisher) InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) {
	msg := NewViewsInvalidatedMessage(userID, accountIDs...)
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"paths":    msg.Paths,
		"exchange": p.exchange,
	})

	if err := p.Publish(ctx, msg); err != nil {
		metrics.ViewInvalidations.WithLabelValues("amqp", "error").Inc()
		log.WithError(err).Error("Failed to publish views invalidated message")
		return
	}
	metrics.ViewInvalidations.WithLabelValues("amqp", "ok").Inc()
	log.Info("Published views invalidated message")
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
