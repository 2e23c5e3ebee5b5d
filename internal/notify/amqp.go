package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

const exchangeName = "orders"

// AMQPDispatcher publishes order events to a topic exchange. Publish
// failures are logged and swallowed so the order flow never depends on the
// broker being up.
type AMQPDispatcher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger

	mu sync.Mutex
}

// NewAMQPDispatcher connects to the broker and declares the orders exchange.
func NewAMQPDispatcher(url string, logger *slog.Logger) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notify: dial amqp: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("notify: open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("notify: declare exchange: %w", err)
	}
	return &AMQPDispatcher{conn: conn, channel: channel, logger: logger}, nil
}

func (d *AMQPDispatcher) OrderCreated(ctx context.Context, order *model.Order) {
	d.publish(ctx, "order.created", order)
}

func (d *AMQPDispatcher) PaymentConfirmed(ctx context.Context, order *model.Order) {
	d.publish(ctx, "order.paid", order)
}

func (d *AMQPDispatcher) OrderShipped(ctx context.Context, order *model.Order) {
	d.publish(ctx, "order.shipped", order)
}

func (d *AMQPDispatcher) OrderCancelled(ctx context.Context, order *model.Order) {
	d.publish(ctx, "order.cancelled", order)
}

func (d *AMQPDispatcher) publish(_ context.Context, routingKey string, order *model.Order) {
	body, err := json.Marshal(eventFor(order))
	if err != nil {
		d.logger.Error("marshal order event", "routing_key", routingKey, "error", err)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	err = d.channel.Publish(exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		d.logger.Error("publish order event", "routing_key", routingKey, "order_id", order.ID, "error", err)
		return
	}
	d.logger.Info("order event published", "routing_key", routingKey, "order_id", order.ID)
}

// Close releases the channel and connection.
func (d *AMQPDispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.channel.Close(); err != nil {
		d.conn.Close()
		return err
	}
	return d.conn.Close()
}

var _ Dispatcher = (*AMQPDispatcher)(nil)
