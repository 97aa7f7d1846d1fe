package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

var ErrSubscriptionClosed = errors.New("subscription closed")

type Subscription struct {
	name string
	ch   *amqp.Channel
	lg   *zap.SugaredLogger

	events     chan model.ChangeEvent
	subscribed chan struct{}
	closed     chan error

	unsubOnce sync.Once
}

func newSubscription(name string, ch *amqp.Channel, lg *zap.SugaredLogger) *Subscription {
	return &Subscription{
		name:       name,
		ch:         ch,
		lg:         lg,
		events:     make(chan model.ChangeEvent, 64),
		subscribed: make(chan struct{}),
		closed:     make(chan error, 1),
	}
}

// Events delivers decoded row changes in arrival order. The channel is
// closed when the subscription dies or is released.
func (s *Subscription) Events() <-chan model.ChangeEvent {
	return s.events
}

// Subscribed is closed exactly once, when the consumer is established.
func (s *Subscription) Subscribed() <-chan struct{} {
	return s.subscribed
}

// Closed delivers the terminal reason once the feed is gone.
func (s *Subscription) Closed() <-chan error {
	return s.closed
}

func (s *Subscription) Unsubscribe() error {
	var err error

	s.unsubOnce.Do(func() {
		if cancelErr := s.ch.Cancel(s.name, false); cancelErr != nil {
			err = cancelErr
		}
		if closeErr := s.ch.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	})

	return err
}

func (s *Subscription) run(deliveries <-chan amqp.Delivery, closeCh <-chan *amqp.Error) {
	close(s.subscribed)

	for d := range deliveries {
		event, err := decodeDelivery(d)
		if err != nil {
			// Malformed payloads are dropped, the list stays as it was.
			s.lg.Warnf("subscription %s: dropping change event: %v", s.name, err)
			continue
		}

		s.events <- event
	}

	reason := error(ErrSubscriptionClosed)
	select {
	case amqpErr := <-closeCh:
		if amqpErr != nil {
			reason = amqpErr
		}
	default:
	}

	s.closed <- reason
	close(s.events)
}

// decodeDelivery maps one broker message to a ChangeEvent. The kind comes
// from the middle segment of the routing key (orders.<kind>.<category-slug>),
// the body is the affected row.
func decodeDelivery(d amqp.Delivery) (model.ChangeEvent, error) {
	var event model.ChangeEvent

	parts := strings.Split(d.RoutingKey, ".")
	if len(parts) != 3 {
		return event, fmt.Errorf("unexpected routing key %q", d.RoutingKey)
	}

	switch strings.ToLower(parts[1]) {
	case "insert":
		event.Kind = model.EventInsert
	case "update":
		event.Kind = model.EventUpdate
	case "delete":
		event.Kind = model.EventDelete
	default:
		return event, fmt.Errorf("unknown event kind %q", parts[1])
	}

	if err := json.Unmarshal(d.Body, &event.Row); err != nil {
		return event, fmt.Errorf("malformed row payload: %w", err)
	}

	if event.Row.ID == uuid.Nil {
		return event, errors.New("event without row id")
	}

	return event, nil
}
