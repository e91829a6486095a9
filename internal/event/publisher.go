// Package event доставляет доменные события из транзакционного outbox в
// брокер. Гарантия at-least-once: событие помечается доставленным только
// после успешной публикации, потребители дедуплицируют по order_id.
package event

import (
	"context"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/rentaro/lease-engine/internal/event Publisher,OutboxSource

// Publisher публикация события в брокер под ключом маршрутизации topic.
type Publisher interface {
	Publish(ctx context.Context, topic, eventID string, body []byte) error
	Close() error
}

// AMQPPublisher публикует события в topic-exchange RabbitMQ. Сообщения
// персистентные, eventID уходит в MessageId.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, dialErr := amqp.Dial(url)
	if dialErr != nil {
		return nil, errors.Wrap(dialErr, "connecting to rabbitmq")
	}
	ch, chErr := conn.Channel()
	if chErr != nil {
		_ = conn.Close()
		return nil, errors.Wrap(chErr, "opening rabbitmq channel")
	}
	if declareErr := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); declareErr != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrapf(declareErr, "declaring exchange %s", exchange)
	}
	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic, eventID string, body []byte) error {
	publishErr := p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    eventID,
		Timestamp:    time.Now(),
		Body:         body,
	})
	return errors.Wrapf(publishErr, "publishing %s", topic)
}

func (p *AMQPPublisher) Close() error {
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return errors.Wrap(chErr, "closing rabbitmq channel")
	}
	return errors.Wrap(connErr, "closing rabbitmq connection")
}
