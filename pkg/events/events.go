// Package events publishes storefront domain events to RabbitMQ. The broker
// is optional at runtime: services hold a nil *Publisher when no broker is
// configured and skip publication.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

const orderQueue = "order_events"

// OrderCreated is emitted once per successful checkout.
type OrderCreated struct {
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Publisher holds the RabbitMQ connection and channel.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to RabbitMQ and declares the order queue.
func NewPublisher(cfg Config) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		orderQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", orderQueue, err)
	}

	log.Printf("event publisher connected, queue %s declared", orderQueue)

	return &Publisher{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing event publisher: %v", errs)
	}
	return nil
}

// PublishOrderCreated pushes an order.created event onto the order queue.
func (p *Publisher) PublishOrderCreated(event OrderCreated) error {
	if p.channel == nil {
		return fmt.Errorf("event channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.channel.Publish(
		"",         // default exchange
		orderQueue, // routing key: the queue name
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

// ConsumeOrderEvents delivers order events to handler until the channel
// closes. A handler error nacks the message back onto the queue.
func (p *Publisher) ConsumeOrderEvents(handler func(OrderCreated) error) error {
	if p.channel == nil {
		return fmt.Errorf("event channel is not available")
	}

	deliveries, err := p.channel.Consume(
		orderQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", orderQueue, err)
	}

	for delivery := range deliveries {
		var event OrderCreated
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			log.Printf("dropping malformed order event: %v", err)
			delivery.Nack(false, false)
			continue
		}
		if err := handler(event); err != nil {
			log.Printf("order event handler failed: %v", err)
			delivery.Nack(false, true)
			continue
		}
		delivery.Ack(false)
	}
	return nil
}
