package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/metinatakli/theater-box-office/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes events to a durable queue. The connection is opened lazily
// and reopened after the broker closes it.
type AMQPPublisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{
		url: url,
	}
}

func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, reservation domain.Reservation) error {
	body, err := json.Marshal(NewReservationCreated(reservation))
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	return p.publish(ctx, ReservationCreatedQueue, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(queue)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}

	return nil
}

func (p *AMQPPublisher) channel(queue string) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial broker: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	p.ch = ch

	return ch, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}

	return p.conn.Close()
}
