package mq

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

// ExchangeName is the topic exchange the ordering process publishes row
// changes to, with routing keys of the form orders.<kind>.<category-slug>.
const ExchangeName = "orders_changes"

type Client struct {
	conn *amqp.Connection
	lg   *zap.SugaredLogger
}

func Dial(brokerURI string, lg *zap.SugaredLogger) (*Client, error) {
	conn, err := amqp.Dial(brokerURI)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn, lg: lg}, nil
}

func (c *Client) DeclareExchange() error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil)
}

func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("broker connection is closed")
	}
	return nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Subscribe opens one change-subscription: a server-named exclusive queue
// bound by category (empty category binds every department), consumed on a
// dedicated channel so Unsubscribe tears down exactly one feed.
func (c *Client) Subscribe(name, category string) (*Subscription, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	key := "orders.*.*"
	if category != "" {
		key = fmt.Sprintf("orders.*.%s", model.CategorySlug(category))
	}

	if err := ch.QueueBind(q.Name, key, ExchangeName, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}

	deliveries, err := ch.Consume(q.Name, name, true, true, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	sub := newSubscription(name, ch, c.lg)
	go sub.run(deliveries, ch.NotifyClose(make(chan *amqp.Error, 1)))

	return sub, nil
}
