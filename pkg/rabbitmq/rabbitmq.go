package rabbitmq

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// orderQueue receives order.submitted events for downstream consumers
// (fulfilment, email).
const orderQueue = "order_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the order
// event queue.
func NewClient(cfg Config) (*Client, error) {
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
		orderQueue, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", orderQueue, err)
	}

	log.Infof("RabbitMQ client connected, %s declared", orderQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Publish sends a persistent message. An empty exchange publishes directly
// to the order event queue.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	key := routingKey
	if exchange == "" || exchange == "order" {
		// Events route straight to the shared queue until a topology with
		// dedicated exchanges is needed.
		exchange = ""
		key = orderQueue
	}
	err := c.channel.Publish(
		exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// ConsumeOrderEvents delivers queued order events to the handler. A nil
// handler error acknowledges the message; any other error requeues it.
func (c *Client) ConsumeOrderEvents(handler func(amqp.Delivery) error) error {
	deliveries, err := c.channel.Consume(
		orderQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", orderQueue, err)
	}

	for msg := range deliveries {
		if err := handler(msg); err != nil {
			log.WithError(err).Warnf("order event %d failed, requeueing", msg.DeliveryTag)
			if nackErr := msg.Nack(false, true); nackErr != nil {
				log.WithError(nackErr).Error("failed to nack order event")
			}
			continue
		}
		if ackErr := msg.Ack(false); ackErr != nil {
			log.WithError(ackErr).Error("failed to ack order event")
		}
	}
	return nil
}

// Close shuts down the channel and connection.
func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}
