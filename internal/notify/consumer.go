// Package notify listens for "data changed" events published by the platform
// and turns them into push refreshes.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finboard/internal/config"
	"github.com/GlebRadaev/finboard/internal/refresh"
)

const reconnectDelay = 5 * time.Second

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type Refresher interface {
	Trigger(t refresh.Trigger)
}

type Consumer struct {
	url            string
	exchange       string
	queue          string
	refresher      Refresher
	reconnectDelay time.Duration
}

func New(cfg *config.Config, refresher Refresher) *Consumer {
	return &Consumer{
		url:            cfg.AMQPURL,
		exchange:       cfg.AMQPExchange,
		queue:          cfg.AMQPQueue,
		refresher:      refresher,
		reconnectDelay: reconnectDelay,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	if c.url == "" {
		zap.L().Info("AMQP URL is not set, push notifications disabled")
		return
	}
	go c.run(ctx)
}

func (c *Consumer) run(ctx context.Context) {
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			zap.L().Info("Context canceled, stopping notification consumer")
			return
		}
		zap.L().Warn("Notification consumer stopped, reconnecting", zap.Error(err), zap.Duration("delay", c.reconnectDelay))

		timer := time.NewTimer(c.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (c *Consumer) consume(ctx context.Context) error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer channel.Close()

	if err := c.setup(channel); err != nil {
		return err
	}

	deliveries, err := channel.Consume(
		c.queue, // queue
		"",      // consumer
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}
	zap.L().Info("Consuming notifications", zap.String("exchange", c.exchange), zap.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.process(delivery)
		}
	}
}

func (c *Consumer) setup(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		c.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		c.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := channel.QueueBind(c.queue, "#", c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// process acks every well-formed event, relevant or not, and drops
// malformed ones without requeueing.
func (c *Consumer) process(delivery amqp091.Delivery) {
	event, err := ParseEvent(delivery.Body)
	if err != nil {
		zap.L().Error("Failed to decode notification", zap.String("routingKey", delivery.RoutingKey), zap.Error(err))
		if err := delivery.Nack(false, false); err != nil {
			zap.L().Error("Failed to nack notification", zap.Error(err))
		}
		return
	}
	if event.Type == "" {
		event.Type = delivery.RoutingKey
	}

	if event.Refreshes() {
		zap.L().Debug("Notification received", zap.String("type", event.Type), zap.String("id", event.ID))
		c.refresher.Trigger(refresh.TriggerPush)
	}
	if err := delivery.Ack(false); err != nil {
		zap.L().Error("Failed to ack notification", zap.Error(err))
	}
}
